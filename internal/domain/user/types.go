package user

import "strings"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole accepts the API's role names case-insensitively, with or without the ROLE_ prefix.
func NewRole(s string) (Role, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "ROLE_")
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleOrDefault never fails: unknown or empty roles fall back to USER.
func RoleOrDefault(s string) Role {
	role, err := NewRole(s)
	if err != nil {
		return RoleUser
	}
	return role
}
