package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/event"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/valueobject"
	"github.com/sailakshmi-repaka/LoanShield/pkg/events"
)

// AppAssessment is the aggregate root for one classification request. It
// collects the independently-computed signals for an application and, once
// Assess is called, carries the final verdict. Assessments are ephemeral:
// constructed per request and never persisted.
type AppAssessment struct {
	events.EventCollector

	id    uuid.UUID
	query string

	listing        Listing
	storeAvailable bool

	registered bool
	lenderName string
	lenderType string

	sentiment      valueobject.Sentiment
	permissionRisk valueobject.PermissionRisk
	reviewSummary  string

	reportCount     int
	alreadyReported bool

	verdict    valueobject.Verdict
	reason     string
	assessedAt time.Time
	createdAt  time.Time
}

// NewAppAssessment creates an assessment for the given user query (app name
// or store identifier). The assessment starts unscored; attach the collected
// signals, then call Assess.
func NewAppAssessment(query string) (*AppAssessment, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: application name or ID is required", ErrInvalidInput)
	}

	return &AppAssessment{
		id:        uuid.New(),
		query:     query,
		createdAt: time.Now().UTC(),
	}, nil
}

// AttachListing records the store listing metadata for the assessment.
func (a *AppAssessment) AttachListing(listing Listing) {
	a.listing = listing
	a.storeAvailable = true
}

// AttachReviewSignal records the review-derived sentiment and permission-risk
// signals. Every assessment carries exactly one of each before Assess runs;
// fetch failures are represented by the analyzer's fail-safe labels, not by
// absence.
func (a *AppAssessment) AttachReviewSignal(sentiment valueobject.Sentiment, risk valueobject.PermissionRisk, summary string) {
	a.sentiment = sentiment
	a.permissionRisk = risk
	a.reviewSummary = summary
}

// AttachRegistration records the registry-matcher outcome.
func (a *AppAssessment) AttachRegistration(registered bool, lenderName, lenderType string) {
	a.registered = registered
	a.lenderName = lenderName
	a.lenderType = lenderType
}

// AttachCommunitySignal records the report-ledger outcome for the listing title.
func (a *AppAssessment) AttachCommunitySignal(reportCount int, alreadyReported bool) {
	if reportCount < 0 {
		reportCount = 0
	}
	a.reportCount = reportCount
	a.alreadyReported = alreadyReported
}

// Assess applies the decision-engine outcome to the assessment. This is the
// terminal domain operation: it emits AssessmentCompleted, plus
// RiskyAppDetected when the community-report override forced the Risky verdict.
func (a *AppAssessment) Assess(verdict valueobject.Verdict, reason string) error {
	if verdict.IsZero() {
		return fmt.Errorf("verdict is required")
	}
	if reason == "" {
		return fmt.Errorf("verdict reason is required")
	}

	a.verdict = verdict
	a.reason = reason
	a.assessedAt = time.Now().UTC()

	a.Record(event.NewAssessmentCompleted(
		a.id, a.Title(), a.AppID(),
		a.verdict.String(), a.reason,
		a.sentiment.String(), a.permissionRisk.String(),
		a.reportCount, a.assessedAt,
	))

	if a.verdict.IsRisky() {
		a.Record(event.NewRiskyAppDetected(a.id, a.Title(), a.AppID(), a.reportCount, a.assessedAt))
	}

	return nil
}

// --- Accessors ---

func (a *AppAssessment) ID() uuid.UUID    { return a.id }
func (a *AppAssessment) Query() string    { return a.query }
func (a *AppAssessment) Listing() Listing { return a.listing }

// StoreAvailable reports whether the store listing lookup succeeded.
func (a *AppAssessment) StoreAvailable() bool { return a.storeAvailable }

// Title returns the resolved display title, falling back to the raw query
// when the store lookup failed.
func (a *AppAssessment) Title() string {
	if a.storeAvailable && a.listing.Title != "" {
		return a.listing.Title
	}
	return a.query
}

// AppID returns the resolved store identifier, falling back to the raw query.
func (a *AppAssessment) AppID() string {
	if a.storeAvailable && a.listing.AppID != "" {
		return a.listing.AppID
	}
	return a.query
}

func (a *AppAssessment) Registered() bool   { return a.registered }
func (a *AppAssessment) LenderName() string { return a.lenderName }
func (a *AppAssessment) LenderType() string { return a.lenderType }

func (a *AppAssessment) Sentiment() valueobject.Sentiment           { return a.sentiment }
func (a *AppAssessment) PermissionRisk() valueobject.PermissionRisk { return a.permissionRisk }
func (a *AppAssessment) ReviewSummary() string                      { return a.reviewSummary }

func (a *AppAssessment) ReportCount() int      { return a.reportCount }
func (a *AppAssessment) AlreadyReported() bool { return a.alreadyReported }

func (a *AppAssessment) Verdict() valueobject.Verdict { return a.verdict }
func (a *AppAssessment) Reason() string               { return a.reason }
func (a *AppAssessment) AssessedAt() time.Time        { return a.assessedAt }
func (a *AppAssessment) CreatedAt() time.Time         { return a.createdAt }
