package session

import (
	"strings"
	"time"

	"parking-portal/internal/domain/user"
)

// Persisted keys of the session record. They are read and written together.
const (
	KeyToken     = "token"
	KeyUserName  = "userName"
	KeyUserEmail = "userEmail"
	KeyRole      = "role"
)

var Keys = []string{KeyToken, KeyUserName, KeyUserEmail, KeyRole}

// Session is the client-held record of the authenticated user. The zero value is "no session".
type Session struct {
	token     string
	userName  string
	userEmail string
	role      user.Role
	expiresAt *time.Time
}

func New(token, userName, userEmail string, role user.Role) Session {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}
	}
	if !role.IsValid() {
		role = user.RoleUser
	}
	return Session{
		token:     token,
		userName:  userName,
		userEmail: strings.TrimSpace(userEmail),
		role:      role,
	}
}

// FromValues rebuilds a session from the persisted key/value record.
// A missing token yields the empty session whatever the other keys hold.
func FromValues(values map[string]string) Session {
	return New(
		values[KeyToken],
		values[KeyUserName],
		values[KeyUserEmail],
		user.RoleOrDefault(values[KeyRole]),
	)
}

func (s Session) Values() map[string]string {
	return map[string]string{
		KeyToken:     s.token,
		KeyUserName:  s.userName,
		KeyUserEmail: s.userEmail,
		KeyRole:      s.role.String(),
	}
}

// WithExpiry attaches the token's advertised expiry. Display only: an expired
// token is detected when the parking API rejects it.
func (s Session) WithExpiry(expiresAt *time.Time) Session {
	s.expiresAt = expiresAt
	return s
}

func (s Session) IsAuthenticated() bool {
	return s.token != ""
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.role == user.RoleAdmin
}

// SameUser reports whether both sessions belong to the same authenticated email.
func (s Session) SameUser(other Session) bool {
	return s.IsAuthenticated() && other.IsAuthenticated() &&
		strings.EqualFold(s.userEmail, other.userEmail)
}

func (s Session) Token() string         { return s.token }
func (s Session) UserName() string      { return s.userName }
func (s Session) UserEmail() string     { return s.userEmail }
func (s Session) Role() user.Role       { return s.role }
func (s Session) ExpiresAt() *time.Time { return s.expiresAt }
