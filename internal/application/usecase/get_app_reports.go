package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// GetAppReports is the use case for listing the community reports filed
// against one application title.
type GetAppReports struct {
	reports port.ReportRepository
}

// NewGetAppReports creates a new GetAppReports use case.
func NewGetAppReports(reports port.ReportRepository) *GetAppReports {
	return &GetAppReports{reports: reports}
}

// Execute returns all reports against the given title, oldest first.
func (uc *GetAppReports) Execute(ctx context.Context, req dto.GetAppReportsRequest) ([]dto.ReportResponse, error) {
	title := strings.TrimSpace(req.AppTitle)
	if title == "" {
		return nil, fmt.Errorf("%w: application title is required", model.ErrInvalidInput)
	}

	reports, err := uc.reports.ListByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, dto.ReportFromModel(r))
	}
	return responses, nil
}
