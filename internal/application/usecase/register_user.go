package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

const minPasswordLength = 8

// RegisterUser is the use case for creating an account.
type RegisterUser struct {
	users port.UserRepository
}

// NewRegisterUser creates a new RegisterUser use case.
func NewRegisterUser(users port.UserRepository) *RegisterUser {
	return &RegisterUser{users: users}
}

// Execute hashes the password and persists the new user. Emails are unique;
// registering an existing email fails.
func (uc *RegisterUser) Execute(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error) {
	if len(req.Password) < minPasswordLength {
		return dto.UserResponse{}, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := model.NewUser(req.Name, req.Email, string(hash))
	if err != nil {
		return dto.UserResponse{}, err
	}

	existing, err := uc.users.FindByEmail(ctx, user.Email())
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return dto.UserResponse{}, fmt.Errorf("%w: email is already registered", model.ErrInvalidInput)
	}

	if err := uc.users.Save(ctx, user); err != nil {
		return dto.UserResponse{}, fmt.Errorf("failed to save user: %w", err)
	}

	return dto.UserFromModel(user), nil
}
