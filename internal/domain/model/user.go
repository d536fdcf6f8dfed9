package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered account that gates access to the classification and
// reporting operations. Passwords are stored only as bcrypt hashes.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
}

// NewUser validates and creates a new user with an already-hashed password.
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrInvalidInput)
	}

	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    time.Now().UTC(),
	}, nil
}

// ReconstructUser rebuilds a User from persisted data (no validation).
func ReconstructUser(id uuid.UUID, name, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

// --- Accessors ---

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
