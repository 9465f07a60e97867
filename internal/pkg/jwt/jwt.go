package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the subset of the parking API's token claims the portal reads.
// The subject is the user's email.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Inspector reads token claims without verifying the signature; the
// signing key stays with the parking API, which remains the only authority
// on whether a token is still accepted.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
	}
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SubjectEmail prefers the explicit email claim over the subject.
func (c *Claims) SubjectEmail() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

func (c *Claims) ExpiresAtTime() *time.Time {
	if c.ExpiresAt == nil {
		return nil
	}
	t := c.ExpiresAt.Time
	return &t
}
