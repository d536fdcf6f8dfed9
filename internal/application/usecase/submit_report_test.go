package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/application/usecase"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/pkg/testutil"
)

func validReportRequest() dto.SubmitReportRequest {
	return dto.SubmitReportRequest{
		Reporter: "asha",
		AppTitle: testutil.TestLoanAppTitle,
		Reason:   "Harassing calls after one missed payment",
	}
}

func TestSubmitReport_AppendsAndPublishes(t *testing.T) {
	reports := &mockReportRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewSubmitReport(reports, publisher, discardLogger())

	resp, err := uc.Execute(context.Background(), validReportRequest())

	require.NoError(t, err)
	assert.Equal(t, "asha", resp.Reporter)
	assert.Equal(t, testutil.TestLoanAppTitle, resp.AppTitle)
	require.Len(t, reports.appended, 1)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "loanshield.report.submitted", publisher.published[0].EventType())
}

func TestSubmitReport_InvalidInput(t *testing.T) {
	uc := usecase.NewSubmitReport(&mockReportRepository{}, &mockEventPublisher{}, discardLogger())

	tests := []struct {
		name   string
		mutate func(*dto.SubmitReportRequest)
	}{
		{"blank reporter", func(r *dto.SubmitReportRequest) { r.Reporter = "  " }},
		{"blank title", func(r *dto.SubmitReportRequest) { r.AppTitle = "" }},
		{"blank reason", func(r *dto.SubmitReportRequest) { r.Reason = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReportRequest()
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestSubmitReport_DuplicateSurfaced(t *testing.T) {
	reports := &mockReportRepository{
		appendFunc: func(_ context.Context, _ *model.Report) error {
			return port.ErrDuplicateReport
		},
	}
	uc := usecase.NewSubmitReport(reports, &mockEventPublisher{}, discardLogger())

	_, err := uc.Execute(context.Background(), validReportRequest())

	assert.ErrorIs(t, err, port.ErrDuplicateReport)
}

func TestGetAppReports_ReturnsReportsForTitle(t *testing.T) {
	stored, err := model.NewReport("asha", testutil.TestLoanAppTitle, "Threatening messages")
	require.NoError(t, err)
	reports := &mockReportRepository{
		listFunc: func(_ context.Context, title string) ([]*model.Report, error) {
			assert.Equal(t, testutil.TestLoanAppTitle, title)
			return []*model.Report{stored}, nil
		},
	}
	uc := usecase.NewGetAppReports(reports)

	resp, err := uc.Execute(context.Background(), dto.GetAppReportsRequest{AppTitle: "  " + testutil.TestLoanAppTitle + "  "})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Threatening messages", resp[0].Reason)
	assert.WithinDuration(t, time.Now().UTC(), resp[0].CreatedAt, time.Minute)
}

func TestGetAppReports_BlankTitleRejected(t *testing.T) {
	uc := usecase.NewGetAppReports(&mockReportRepository{})

	_, err := uc.Execute(context.Background(), dto.GetAppReportsRequest{AppTitle: ""})

	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
