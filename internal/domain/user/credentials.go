package user

import "strings"

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}

type Registration struct {
	Credentials
	firstname string
	lastname  string
}

func NewRegistration(firstname, lastname, emailStr, passwordStr, confirmation string) (Registration, error) {
	firstname = strings.TrimSpace(firstname)
	if firstname == "" {
		return Registration{}, ErrFirstnameRequired
	}
	lastname = strings.TrimSpace(lastname)
	if lastname == "" {
		return Registration{}, ErrLastnameRequired
	}

	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	if passwordStr != confirmation {
		return Registration{}, ErrPasswordMismatch
	}

	return Registration{
		Credentials: creds,
		firstname:   firstname,
		lastname:    lastname,
	}, nil
}

func (r Registration) Firstname() string { return r.firstname }
func (r Registration) Lastname() string  { return r.lastname }
