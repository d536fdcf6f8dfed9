package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/valueobject"
)

// VerdictInput is everything the decision engine consumes. All upstream
// signals are resolved before the engine runs; it performs no I/O.
type VerdictInput struct {
	Listing        model.Listing
	StoreAvailable bool

	Review ReviewSignal

	Registered bool
	LenderName string
	LenderType string

	ReportCount     int
	AlreadyReported bool
}

// VerdictOutcome is the engine's result: a closed-set label and a
// human-readable justification. Every input yields an outcome; the engine
// has no error path.
type VerdictOutcome struct {
	Verdict valueobject.Verdict
	Reason  string
}

// verdictRule is one step of the base decision chain. Rules are evaluated
// top to bottom with first-match-wins semantics, which makes the priority
// order an explicit, testable structure.
type verdictRule struct {
	name    string
	applies func(VerdictInput) bool
	verdict valueobject.Verdict
	reason  string
}

// loanKeywords mark a listing title as credit/loan-related.
var loanKeywords = []string{"loan", "credit", "emi", "finance", "lending"}

// minAcceptableRating is the store-rating floor below which a lending app
// draws a Caution verdict.
var minAcceptableRating = decimal.NewFromFloat(3.5)

// Community-report override thresholds.
const (
	reportRiskyThreshold   = 10
	reportCautionThreshold = 5
)

// VerdictEngine turns the collected signals for one application into a final
// verdict. The base rule chain fires first-match-wins; a separate override
// stage then applies the community-report escalations.
type VerdictEngine struct {
	rules []verdictRule
}

// NewVerdictEngine creates the engine with the standard rule chain.
func NewVerdictEngine() *VerdictEngine {
	return &VerdictEngine{
		rules: []verdictRule{
			{
				name:    "no_reviews",
				applies: func(in VerdictInput) bool { return in.Listing.ReviewCount == 0 },
				verdict: valueobject.VerdictCaution,
				reason:  "No user reviews available.",
			},
			{
				// Must precede the registry and rating checks so that
				// informational apps are never labelled Suspicious.
				name:    "not_a_loan_app",
				applies: func(in VerdictInput) bool { return !IsLoanApp(in.Listing.Title) },
				verdict: valueobject.VerdictNotLoanApp,
				reason:  "This application does not provide loan or credit-related services.",
			},
			{
				name:    "unregistered_lender",
				applies: func(in VerdictInput) bool { return !in.Registered },
				verdict: valueobject.VerdictSuspicious,
				reason:  "Loan app without registered NBFC.",
			},
			{
				name: "low_rating",
				applies: func(in VerdictInput) bool {
					return in.Listing.RatingAvailable &&
						decimal.NewFromFloat(in.Listing.Rating).LessThan(minAcceptableRating)
				},
				verdict: valueobject.VerdictCaution,
				reason:  "Low Play Store rating detected.",
			},
			{
				name:    "negative_sentiment",
				applies: func(in VerdictInput) bool { return in.Review.Sentiment.IsNegative() },
				verdict: valueobject.VerdictCaution,
				reason:  "User reviews indicate negative experiences.",
			},
			{
				name:    "permission_risk",
				applies: func(in VerdictInput) bool { return in.Review.Risk.IsElevated() },
				verdict: valueobject.VerdictCaution,
				reason:  "Permission-related risks detected.",
			},
		},
	}
}

// Decide evaluates the rule chain and override stage for one application.
func (e *VerdictEngine) Decide(in VerdictInput) VerdictOutcome {
	// A failed listing lookup short-circuits everything: without store data
	// there is nothing trustworthy to score.
	if !in.StoreAvailable {
		return e.applyOverrides(in, VerdictOutcome{
			Verdict: valueobject.VerdictSuspicious,
			Reason:  "The application could not be found on the Play Store or its data could not be retrieved.",
		})
	}

	base := VerdictOutcome{
		Verdict: valueobject.VerdictSafe,
		Reason:  "No major risk indicators detected.",
	}
	for _, rule := range e.rules {
		if rule.applies(in) {
			base = VerdictOutcome{Verdict: rule.verdict, Reason: rule.reason}
			break
		}
	}

	return e.applyOverrides(in, base)
}

// applyOverrides escalates the base verdict on community evidence. The
// already-reported caveat only ever touches the reason text.
func (e *VerdictEngine) applyOverrides(in VerdictInput, base VerdictOutcome) VerdictOutcome {
	out := base

	switch {
	case in.ReportCount >= reportRiskyThreshold:
		out = VerdictOutcome{
			Verdict: valueobject.VerdictRisky,
			Reason:  fmt.Sprintf("Flagged as risky: %d community reports filed against this app.", in.ReportCount),
		}
	case in.ReportCount >= reportCautionThreshold && base.Verdict.IsSafe():
		out = VerdictOutcome{
			Verdict: valueobject.VerdictCaution,
			Reason:  fmt.Sprintf("%s However, %d community reports have been filed against this app.", base.Reason, in.ReportCount),
		}
	}

	if in.AlreadyReported {
		out.Reason += " You have previously reported this app; please proceed with caution."
	}

	return out
}

// IsLoanApp reports whether a listing title suggests credit or loan-related
// services.
func IsLoanApp(title string) bool {
	title = strings.ToLower(title)
	for _, kw := range loanKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
