package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidRole       = errors.New("invalid role")
	ErrPasswordTooWeak   = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch  = errors.New("password confirmation does not match")
	ErrFirstnameRequired = errors.New("firstname is required")
	ErrLastnameRequired  = errors.New("lastname is required")
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
