package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// SubmitReport is the use case for filing a community report against an app.
type SubmitReport struct {
	reports   port.ReportRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewSubmitReport creates a new SubmitReport use case.
func NewSubmitReport(reports port.ReportRepository, publisher port.EventPublisher, logger *slog.Logger) *SubmitReport {
	return &SubmitReport{reports: reports, publisher: publisher, logger: logger}
}

// Execute validates and appends the report to the ledger. A reporter may file
// at most one report per app title; repeats surface port.ErrDuplicateReport.
func (uc *SubmitReport) Execute(ctx context.Context, req dto.SubmitReportRequest) (dto.ReportResponse, error) {
	report, err := model.NewReport(req.Reporter, req.AppTitle, req.Reason)
	if err != nil {
		return dto.ReportResponse{}, err
	}

	if err := uc.reports.Append(ctx, report); err != nil {
		return dto.ReportResponse{}, fmt.Errorf("failed to record report: %w", err)
	}

	if evts := report.Events(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.Warn("failed to publish report events",
				slog.String("report_id", report.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return dto.ReportFromModel(report), nil
}
