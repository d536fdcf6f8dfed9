package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/event"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/valueobject"
)

func testListing() model.Listing {
	return model.Listing{
		Title:             "QuickCash Loan",
		AppID:             "com.quickcash.loan",
		Rating:            4.0,
		RatingAvailable:   true,
		Installs:          "1,000,000+",
		InstallsAvailable: true,
		ReviewCount:       50,
	}
}

func TestNewAppAssessment(t *testing.T) {
	t.Run("creates an assessment for a trimmed query", func(t *testing.T) {
		a, err := model.NewAppAssessment("  QuickCash Loan  ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "QuickCash Loan", a.Query())
		assert.False(t, a.StoreAvailable())
		assert.True(t, a.Verdict().IsZero())
		assert.Empty(t, a.Events())
	})

	t.Run("rejects a blank query", func(t *testing.T) {
		_, err := model.NewAppAssessment("   ")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestAppAssessment_TitleFallsBackToQuery(t *testing.T) {
	a, err := model.NewAppAssessment("com.unknown.app")
	require.NoError(t, err)

	// Store lookup failed: nothing attached.
	assert.Equal(t, "com.unknown.app", a.Title())
	assert.Equal(t, "com.unknown.app", a.AppID())

	a.AttachListing(testListing())
	assert.Equal(t, "QuickCash Loan", a.Title())
	assert.Equal(t, "com.quickcash.loan", a.AppID())
	assert.True(t, a.StoreAvailable())
}

func TestAppAssessment_AttachCommunitySignalClampsNegative(t *testing.T) {
	a, err := model.NewAppAssessment("QuickCash Loan")
	require.NoError(t, err)

	a.AttachCommunitySignal(-3, false)
	assert.Equal(t, 0, a.ReportCount())
}

func TestAppAssessment_Assess(t *testing.T) {
	t.Run("records the verdict and emits AssessmentCompleted", func(t *testing.T) {
		a, err := model.NewAppAssessment("QuickCash Loan")
		require.NoError(t, err)
		a.AttachListing(testListing())
		a.AttachReviewSignal(valueobject.SentimentMostlyPositive, valueobject.PermissionRiskLow, "50 reviews analysed")
		a.AttachRegistration(true, "QuickCash Finance Ltd", "NBFC")
		a.AttachCommunitySignal(0, false)

		err = a.Assess(valueobject.VerdictSafe, "No major risk indicators detected.")
		require.NoError(t, err)

		assert.True(t, a.Verdict().IsSafe())
		assert.False(t, a.AssessedAt().IsZero())

		evts := a.Events()
		require.Len(t, evts, 1)
		completed, ok := evts[0].(event.AssessmentCompleted)
		require.True(t, ok)
		assert.Equal(t, a.ID(), completed.AssessmentID)
		assert.Equal(t, "Safe", completed.Verdict)
		assert.Equal(t, event.EventTypeAssessmentCompleted, completed.EventType())
	})

	t.Run("emits RiskyAppDetected for a Risky verdict", func(t *testing.T) {
		a, err := model.NewAppAssessment("QuickCash Loan")
		require.NoError(t, err)
		a.AttachListing(testListing())
		a.AttachCommunitySignal(12, false)

		err = a.Assess(valueobject.VerdictRisky, "Flagged as risky: 12 community reports filed against this app.")
		require.NoError(t, err)

		evts := a.Events()
		require.Len(t, evts, 2)
		risky, ok := evts[1].(event.RiskyAppDetected)
		require.True(t, ok)
		assert.Equal(t, 12, risky.ReportCount)
		assert.Equal(t, event.EventTypeRiskyAppDetected, risky.EventType())
	})

	t.Run("rejects a zero verdict", func(t *testing.T) {
		a, err := model.NewAppAssessment("QuickCash Loan")
		require.NoError(t, err)

		err = a.Assess(valueobject.Verdict{}, "reason")
		assert.Error(t, err)
	})

	t.Run("rejects an empty reason", func(t *testing.T) {
		a, err := model.NewAppAssessment("QuickCash Loan")
		require.NoError(t, err)

		err = a.Assess(valueobject.VerdictSafe, "")
		assert.Error(t, err)
	})
}

func TestListing_Display(t *testing.T) {
	l := testListing()
	assert.Equal(t, "4.0", l.RatingDisplay())
	assert.Equal(t, "1,000,000+", l.InstallsDisplay())

	unavailable := model.Listing{Title: "Mystery App"}
	assert.Equal(t, "N/A", unavailable.RatingDisplay())
	assert.Equal(t, "N/A", unavailable.InstallsDisplay())
}
