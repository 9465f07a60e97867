package response

import (
	"time"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/pkg/ptr"
)

type SessionResponse struct {
	Authenticated bool    `json:"authenticated"`
	UserName      string  `json:"userName,omitempty"`
	UserEmail     string  `json:"userEmail,omitempty"`
	Role          string  `json:"role,omitempty"`
	IsAdmin       bool    `json:"isAdmin"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`
}

// FromSession never exposes the token.
func FromSession(s session.Session) SessionResponse {
	if !s.IsAuthenticated() {
		return SessionResponse{}
	}
	res := SessionResponse{
		Authenticated: true,
		UserName:      s.UserName(),
		UserEmail:     s.UserEmail(),
		Role:          s.Role().String(),
		IsAdmin:       s.IsAdmin(),
	}
	if exp := s.ExpiresAt(); exp != nil {
		res.ExpiresAt = ptr.Of(exp.Format(time.RFC3339))
	}
	return res
}
