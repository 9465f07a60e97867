//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parking-portal/internal/domain/user"
	pjwt "parking-portal/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// TokenIssuer signs tokens the way the parking API does. The portal never
// verifies the signature, so the secret only has to be stable within a test.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (i *TokenIssuer) GenerateToken(t *testing.T, email string, role user.Role, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := pjwt.Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken still parses; only the parking API would reject it.
func (i *TokenIssuer) CreateExpiredToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	return i.GenerateToken(t, email, role, -time.Minute)
}
