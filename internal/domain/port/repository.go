package port

import (
	"context"
	"errors"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/pkg/events"
)

// ErrDuplicateReport is returned when a reporter has already filed a report
// against the same app title.
var ErrDuplicateReport = errors.New("duplicate report")

// ReportRepository defines the persistence port for the append-only community
// report ledger.
type ReportRepository interface {
	// Append persists a new report and makes it visible to subsequent calls.
	// Returns ErrDuplicateReport when the (reporter, title) pair already exists.
	Append(ctx context.Context, report *model.Report) error

	// CountByTitle returns the number of reports filed against the given app
	// title, matched case-insensitively.
	CountByTitle(ctx context.Context, title string) (int, error)

	// Exists reports whether the reporter has already filed a report against
	// the given title, both matched case-insensitively.
	Exists(ctx context.Context, reporter, title string) (bool, error)

	// ListByTitle returns all reports filed against the given title.
	ListByTitle(ctx context.Context, title string) ([]*model.Report, error)
}

// LenderRegistry provides the disclosed-lender registry rows, loaded once at
// process start and read-only afterwards.
type LenderRegistry interface {
	Entries(ctx context.Context) ([]model.RegistryEntry, error)
}

// UserRepository defines the persistence port for registered users.
type UserRepository interface {
	// Save persists a new user. Fails when the email is already registered.
	Save(ctx context.Context, user *model.User) error

	// FindByEmail retrieves a user by email (case-insensitive). Returns
	// (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
