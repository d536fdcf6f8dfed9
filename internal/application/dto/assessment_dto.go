package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// CheckAppRequest is the input DTO for the CheckApp use case. Reporter is
// the caller's display name when authenticated; it only influences the
// already-reported caveat, never the verdict.
type CheckAppRequest struct {
	Query    string `json:"query"`
	Reporter string `json:"reporter,omitempty"`
}

// AssessmentResponse is the output DTO returned after a trust check.
type AssessmentResponse struct {
	AssessedAt      time.Time `json:"assessed_at"`
	CreatedAt       time.Time `json:"created_at"`
	ID              uuid.UUID `json:"id"`
	Query           string    `json:"query"`
	Title           string    `json:"title"`
	AppID           string    `json:"app_id"`
	Rating          string    `json:"rating"`
	Installs        string    `json:"installs"`
	ReviewCount     int       `json:"review_count"`
	Registered      bool      `json:"registered"`
	LenderName      string    `json:"lender_name,omitempty"`
	LenderType      string    `json:"lender_type,omitempty"`
	Sentiment       string    `json:"sentiment"`
	PermissionRisk  string    `json:"permission_risk"`
	ReviewSummary   string    `json:"review_summary"`
	ReportCount     int       `json:"report_count"`
	AlreadyReported bool      `json:"already_reported"`
	Verdict         string    `json:"verdict"`
	Reason          string    `json:"reason"`
}

// FromModel maps an assessment aggregate to the response DTO.
func FromModel(a *model.AppAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:              a.ID(),
		Query:           a.Query(),
		Title:           a.Title(),
		AppID:           a.AppID(),
		Rating:          a.Listing().RatingDisplay(),
		Installs:        a.Listing().InstallsDisplay(),
		ReviewCount:     a.Listing().ReviewCount,
		Registered:      a.Registered(),
		LenderName:      a.LenderName(),
		LenderType:      a.LenderType(),
		Sentiment:       a.Sentiment().String(),
		PermissionRisk:  a.PermissionRisk().String(),
		ReviewSummary:   a.ReviewSummary(),
		ReportCount:     a.ReportCount(),
		AlreadyReported: a.AlreadyReported(),
		Verdict:         a.Verdict().String(),
		Reason:          a.Reason(),
		AssessedAt:      a.AssessedAt(),
		CreatedAt:       a.CreatedAt(),
	}
}
