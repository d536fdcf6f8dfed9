package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/event"
	"github.com/sailakshmi-repaka/LoanShield/pkg/events"
)

// ErrInvalidInput is returned when a report is submitted with a blank title
// or reason.
var ErrInvalidInput = fmt.Errorf("invalid input")

// Report is a community complaint filed against an application. Reports are
// append-only: once accepted they are never edited or removed.
type Report struct {
	events.EventCollector

	id        uuid.UUID
	reporter  string
	appTitle  string
	reason    string
	createdAt time.Time
}

// NewReport validates and creates a new community report. Title and reason
// must be non-empty after trimming.
func NewReport(reporter, appTitle, reason string) (*Report, error) {
	reporter = strings.TrimSpace(reporter)
	appTitle = strings.TrimSpace(appTitle)
	reason = strings.TrimSpace(reason)

	if reporter == "" {
		return nil, fmt.Errorf("%w: reporter is required", ErrInvalidInput)
	}
	if appTitle == "" {
		return nil, fmt.Errorf("%w: app title is required", ErrInvalidInput)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	r := &Report{
		id:        uuid.New(),
		reporter:  reporter,
		appTitle:  appTitle,
		reason:    reason,
		createdAt: time.Now().UTC(),
	}

	r.Record(event.NewReportSubmitted(r.id, r.reporter, r.appTitle, r.reason, r.createdAt))

	return r, nil
}

// ReconstructReport rebuilds a Report from persisted data (no validation, no events).
func ReconstructReport(id uuid.UUID, reporter, appTitle, reason string, createdAt time.Time) *Report {
	return &Report{
		id:        id,
		reporter:  reporter,
		appTitle:  appTitle,
		reason:    reason,
		createdAt: createdAt,
	}
}

// MatchesTitle reports whether this record was filed against the given app
// title, compared case-insensitively.
func (r *Report) MatchesTitle(title string) bool {
	return strings.EqualFold(r.appTitle, strings.TrimSpace(title))
}

// MatchesReporter reports whether this record was filed by the given
// reporter identity, compared case-insensitively.
func (r *Report) MatchesReporter(reporter string) bool {
	return strings.EqualFold(r.reporter, strings.TrimSpace(reporter))
}

// --- Accessors ---

func (r *Report) ID() uuid.UUID        { return r.id }
func (r *Report) Reporter() string     { return r.reporter }
func (r *Report) AppTitle() string     { return r.appTitle }
func (r *Report) Reason() string       { return r.reason }
func (r *Report) CreatedAt() time.Time { return r.createdAt }
