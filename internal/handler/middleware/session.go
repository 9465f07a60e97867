package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

var (
	errNoSession = errors.New("no session")
	errNotAdmin  = errors.New("session role is not ADMIN")
)

// SessionMiddleware gates routes on the stored session. It never validates
// the token itself; the parking API rejects stale ones.
type SessionMiddleware struct {
	sessions usecase.SessionReader
}

func NewSessionMiddleware(sessions usecase.SessionReader) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.load(c); !ok {
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.load(c)
		if !ok {
			return
		}
		if !s.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "Admin role required", nil)
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) load(c *gin.Context) (session.Session, bool) {
	s, err := m.sessions.Current(c.Request.Context())
	if err != nil {
		slog.Error("Session read failed", "error", err, "request_id", GetRequestID(c))
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Session store unavailable", nil)
		return session.Session{}, false
	}
	if !s.IsAuthenticated() {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "Authentication required", nil)
		return session.Session{}, false
	}
	c.Set(ctxSessionKey, s)
	return s, true
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
