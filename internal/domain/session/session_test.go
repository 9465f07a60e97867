//go:build unit

package session_test

import (
	"testing"
	"time"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Run("blank token is no session", func(t *testing.T) {
		s := session.New("  ", "Amina", "amina@example.com", user.RoleAdmin)
		assert.False(t, s.IsAuthenticated())
		assert.False(t, s.IsAdmin())
		assert.Equal(t, session.Session{}, s)
	})

	t.Run("invalid role falls back to USER", func(t *testing.T) {
		s := session.New("tok", "Amina", "amina@example.com", user.Role("ROOT"))
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, user.RoleUser, s.Role())
		assert.False(t, s.IsAdmin())
	})

	t.Run("admin", func(t *testing.T) {
		s := session.New("tok", "Admin", "admin@example.com", user.RoleAdmin)
		assert.True(t, s.IsAdmin())
	})

	t.Run("values round trip", func(t *testing.T) {
		s := session.New("tok", "Amina", "amina@example.com", user.RoleAdmin)
		assert.Equal(t, s, session.FromValues(s.Values()))
	})

	t.Run("missing token ignores the other keys", func(t *testing.T) {
		s := session.FromValues(map[string]string{
			session.KeyUserName:  "Amina",
			session.KeyUserEmail: "amina@example.com",
			session.KeyRole:      "ADMIN",
		})
		assert.False(t, s.IsAuthenticated())
		assert.Empty(t, s.UserEmail())
	})

	t.Run("same user compares emails case-insensitively", func(t *testing.T) {
		a := session.New("t1", "Amina", "Amina@Example.com", user.RoleUser)
		b := session.New("t2", "Amina", "amina@example.com", user.RoleUser)
		c := session.New("t3", "Omar", "omar@example.com", user.RoleUser)
		assert.True(t, a.SameUser(b))
		assert.False(t, a.SameUser(c))
		assert.False(t, a.SameUser(session.Session{}))
	})

	t.Run("expiry is carried but does not affect authentication", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		s := session.New("tok", "Amina", "amina@example.com", user.RoleUser).WithExpiry(&past)
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, &past, s.ExpiresAt())
	})
}
