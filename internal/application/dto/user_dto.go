package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// RegisterUserRequest is the input DTO for creating an account.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the input DTO for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the output DTO for a registered account. It never carries
// credential material.
type UserResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// LoginResponse is the output DTO for a successful authentication.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserFromModel maps a user aggregate to the response DTO.
func UserFromModel(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}
