package csvstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// User file columns.
const (
	userColName         = "name"
	userColEmail        = "email"
	userColPasswordHash = "password_hash"
	userColCreatedAt    = "created_at"
)

var userHeader = []string{userColName, userColEmail, userColPasswordHash, userColCreatedAt}

// UserRepository is the CSV-backed account store. Emails are the natural key,
// matched case-insensitively.
type UserRepository struct {
	mu      sync.Mutex
	path    string
	byEmail map[string]*model.User
}

// NewUserRepository loads the user file at path. A missing file is an empty
// store; it is created on the first save.
func NewUserRepository(path string) (*UserRepository, error) {
	repo := &UserRepository{path: path, byEmail: make(map[string]*model.User)}

	t, err := readTable(path)
	if os.IsNotExist(err) {
		return repo, nil
	}
	if err != nil {
		return nil, err
	}
	if len(t.rows) == 0 {
		return repo, nil
	}
	if err := t.require(path, userColName, userColEmail, userColPasswordHash); err != nil {
		return nil, err
	}

	for _, row := range t.rows {
		createdAt, _ := time.Parse(time.RFC3339, t.get(row, userColCreatedAt))
		user := model.ReconstructUser(
			uuid.New(),
			t.get(row, userColName),
			strings.ToLower(t.get(row, userColEmail)),
			t.get(row, userColPasswordHash),
			createdAt,
		)
		repo.byEmail[user.Email()] = user
	}
	return repo, nil
}

// Save persists a new user. The email must not be registered yet.
func (r *UserRepository) Save(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email()]; exists {
		return fmt.Errorf("email %s is already registered", user.Email())
	}

	row := []string{
		user.Name(),
		user.Email(),
		user.PasswordHash(),
		user.CreatedAt().Format(time.RFC3339),
	}
	if err := appendRow(r.path, userHeader, row); err != nil {
		return err
	}

	r.byEmail[user.Email()] = user
	return nil
}

// FindByEmail retrieves a user by email, or (nil, nil) when absent.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.byEmail[strings.ToLower(strings.TrimSpace(email))], nil
}
