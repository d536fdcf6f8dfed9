package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/event"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

func TestNewReport(t *testing.T) {
	t.Run("creates a report and emits ReportSubmitted", func(t *testing.T) {
		r, err := model.NewReport("priya@example.com", "FastRupee Loan", "Threatening calls after one missed payment")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "priya@example.com", r.Reporter())
		assert.Equal(t, "FastRupee Loan", r.AppTitle())
		assert.False(t, r.CreatedAt().IsZero())

		evts := r.Events()
		require.Len(t, evts, 1)
		submitted, ok := evts[0].(event.ReportSubmitted)
		require.True(t, ok)
		assert.Equal(t, r.ID(), submitted.ReportID)
		assert.Equal(t, event.EventTypeReportSubmitted, submitted.EventType())
	})

	t.Run("trims whitespace from all fields", func(t *testing.T) {
		r, err := model.NewReport("  priya@example.com ", "  FastRupee Loan ", "  harassment  ")
		require.NoError(t, err)
		assert.Equal(t, "FastRupee Loan", r.AppTitle())
		assert.Equal(t, "harassment", r.Reason())
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		cases := []struct {
			name                      string
			reporter, title, reason   string
		}{
			{"blank reporter", "  ", "FastRupee Loan", "harassment"},
			{"blank title", "priya@example.com", "   ", "harassment"},
			{"blank reason", "priya@example.com", "FastRupee Loan", "   "},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewReport(tc.reporter, tc.title, tc.reason)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
			})
		}
	})
}

func TestReport_Matching(t *testing.T) {
	r := model.ReconstructReport(uuid.New(), "Priya@Example.com", "FastRupee Loan", "harassment", time.Now().UTC())

	assert.True(t, r.MatchesTitle("fastrupee loan"))
	assert.True(t, r.MatchesTitle("  FASTRUPEE LOAN  "))
	assert.False(t, r.MatchesTitle("QuickCash Loan"))

	assert.True(t, r.MatchesReporter("priya@example.com"))
	assert.False(t, r.MatchesReporter("someone@example.com"))
}

func TestReconstructReport_NoEvents(t *testing.T) {
	r := model.ReconstructReport(uuid.New(), "priya@example.com", "FastRupee Loan", "harassment", time.Now().UTC())
	assert.Empty(t, r.Events())
}
