package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// SubmitReportRequest is the input DTO for filing a community report.
type SubmitReportRequest struct {
	Reporter string `json:"reporter"`
	AppTitle string `json:"app_title"`
	Reason   string `json:"reason"`
}

// ReportResponse is the output DTO for a single community report.
type ReportResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
	Reporter  string    `json:"reporter"`
	AppTitle  string    `json:"app_title"`
	Reason    string    `json:"reason"`
}

// GetAppReportsRequest is the input DTO for listing reports against one app.
type GetAppReportsRequest struct {
	AppTitle string `json:"app_title"`
}

// ReportFromModel maps a report aggregate to the response DTO.
func ReportFromModel(r *model.Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID(),
		Reporter:  r.Reporter(),
		AppTitle:  r.AppTitle(),
		Reason:    r.Reason(),
		CreatedAt: r.CreatedAt(),
	}
}
