package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/pkg/auth"
)

// ErrInvalidCredentials is returned on any authentication failure. Unknown
// email and wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUser is the use case for logging in and issuing a token.
type AuthenticateUser struct {
	users port.UserRepository
	jwt   *auth.JWTService
}

// NewAuthenticateUser creates a new AuthenticateUser use case.
func NewAuthenticateUser(users port.UserRepository, jwt *auth.JWTService) *AuthenticateUser {
	return &AuthenticateUser{users: users, jwt: jwt}
}

// Execute verifies the credentials and returns a signed token on success.
func (uc *AuthenticateUser) Execute(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	if user == nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := uc.jwt.GenerateToken(user.ID(), user.Name(), []string{auth.RoleUser})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{User: dto.UserFromModel(user), Token: token}, nil
}
