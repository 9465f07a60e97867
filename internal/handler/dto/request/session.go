package request

import (
	"parking-portal/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Firstname       string `json:"firstname" binding:"required"`
	Lastname        string `json:"lastname" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (user.Registration, error) {
	return user.NewRegistration(r.Firstname, r.Lastname, r.Email, r.Password, r.ConfirmPassword)
}
