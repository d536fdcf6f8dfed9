package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/pkg/events"
)

const (
	// EventTypeAssessmentCompleted is emitted when an app assessment finishes.
	EventTypeAssessmentCompleted = "loanshield.assessment.completed"

	// EventTypeRiskyAppDetected is emitted when an app is classified Risky.
	EventTypeRiskyAppDetected = "loanshield.risky_app.detected"

	// EventTypeReportSubmitted is emitted when a community report is accepted.
	EventTypeReportSubmitted = "loanshield.report.submitted"
)

// AssessmentCompleted is published when a classification request has produced
// a verdict for an application.
type AssessmentCompleted struct {
	events.BaseEvent

	AssessmentID uuid.UUID `json:"assessment_id"`
	AppTitle     string    `json:"app_title"`
	AppID        string    `json:"app_id"`
	Verdict      string    `json:"verdict"`
	Reason       string    `json:"reason"`
	Sentiment    string    `json:"sentiment"`
	Risk         string    `json:"permission_risk"`
	ReportCount  int       `json:"report_count"`
	AssessedAt   time.Time `json:"assessed_at"`
}

// NewAssessmentCompleted creates an AssessmentCompleted event.
func NewAssessmentCompleted(assessmentID uuid.UUID, appTitle, appID, verdict, reason, sentiment, risk string, reportCount int, assessedAt time.Time) AssessmentCompleted {
	return AssessmentCompleted{
		BaseEvent:    events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, "AppAssessment"),
		AssessmentID: assessmentID,
		AppTitle:     appTitle,
		AppID:        appID,
		Verdict:      verdict,
		Reason:       reason,
		Sentiment:    sentiment,
		Risk:         risk,
		ReportCount:  reportCount,
		AssessedAt:   assessedAt,
	}
}

// RiskyAppDetected is published when an application is forced to the Risky
// verdict by the community-report override, so downstream consumers can alert.
type RiskyAppDetected struct {
	events.BaseEvent

	AssessmentID uuid.UUID `json:"assessment_id"`
	AppTitle     string    `json:"app_title"`
	AppID        string    `json:"app_id"`
	ReportCount  int       `json:"report_count"`
	DetectedAt   time.Time `json:"detected_at"`
}

// NewRiskyAppDetected creates a RiskyAppDetected event.
func NewRiskyAppDetected(assessmentID uuid.UUID, appTitle, appID string, reportCount int, detectedAt time.Time) RiskyAppDetected {
	return RiskyAppDetected{
		BaseEvent:    events.NewBaseEvent(EventTypeRiskyAppDetected, assessmentID, "AppAssessment"),
		AssessmentID: assessmentID,
		AppTitle:     appTitle,
		AppID:        appID,
		ReportCount:  reportCount,
		DetectedAt:   detectedAt,
	}
}

// ReportSubmitted is published when a community report passes validation and
// duplicate checks and is appended to the ledger.
type ReportSubmitted struct {
	events.BaseEvent

	ReportID    uuid.UUID `json:"report_id"`
	Reporter    string    `json:"reporter"`
	AppTitle    string    `json:"app_title"`
	Reason      string    `json:"reason"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewReportSubmitted creates a ReportSubmitted event.
func NewReportSubmitted(reportID uuid.UUID, reporter, appTitle, reason string, submittedAt time.Time) ReportSubmitted {
	return ReportSubmitted{
		BaseEvent:   events.NewBaseEvent(EventTypeReportSubmitted, reportID, "Report"),
		ReportID:    reportID,
		Reporter:    reporter,
		AppTitle:    appTitle,
		Reason:      reason,
		SubmittedAt: submittedAt,
	}
}
