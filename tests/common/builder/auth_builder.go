//go:build unit || e2e

package builder

import (
	"parking-portal/internal/domain/user"
	reqdto "parking-portal/internal/handler/dto/request"
)

type AuthBuilder struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Firstname: "Amina",
		Lastname:  "Benali",
		Email:     "amina@example.com",
		Password:  "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Firstname:       a.Firstname,
		Lastname:        a.Lastname,
		Email:           a.Email,
		Password:        a.Password,
		ConfirmPassword: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() user.Credentials {
	creds, err := user.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}

func (a *AuthBuilder) BuildRegistration() user.Registration {
	reg, err := user.NewRegistration(a.Firstname, a.Lastname, a.Email, a.Password, a.Password)
	if err != nil {
		panic(err)
	}
	return reg
}
