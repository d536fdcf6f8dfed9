package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/valueobject"
)

// ReviewSignal is the analyzer's output for one application: the sentiment
// and permission-risk labels plus the counts behind them.
type ReviewSignal struct {
	Sentiment      valueobject.Sentiment
	Risk           valueobject.PermissionRisk
	Total          int
	Positive       int
	Negative       int
	RiskMentions   int
	NegativeRatio  decimal.Decimal
	Summary        string
	FetchSucceeded bool
}

// SentimentClassifier classifies the overall tone of a review batch. The
// keyword implementation below can be swapped without touching the decision
// engine's contract.
type SentimentClassifier interface {
	Classify(reviews []string) SentimentResult
}

// SentimentResult carries the sentiment label and its supporting counts.
type SentimentResult struct {
	Sentiment     valueobject.Sentiment
	Total         int
	Positive      int
	Negative      int
	NegativeRatio decimal.Decimal
}

// PermissionRiskClassifier classifies how often a review batch raises
// privacy or permission concerns.
type PermissionRiskClassifier interface {
	Classify(reviews []string) (valueobject.PermissionRisk, int)
}

// ReviewAnalyzer fetches a bounded batch of reviews via the store catalog and
// scores it for sentiment and permission risk. If the fetch fails or returns
// nothing, the analyzer falls back to the risk-leaning defaults: absence of
// evidence is treated as evidence of risk, never as a neutral signal.
type ReviewAnalyzer struct {
	catalog     port.StoreCatalog
	sentiment   SentimentClassifier
	permissions PermissionRiskClassifier
	query       port.ReviewQuery
	logger      *slog.Logger
}

// NewReviewAnalyzer creates a ReviewAnalyzer bound to the given review source
// and classifiers.
func NewReviewAnalyzer(
	catalog port.StoreCatalog,
	sentiment SentimentClassifier,
	permissions PermissionRiskClassifier,
	query port.ReviewQuery,
	logger *slog.Logger,
) *ReviewAnalyzer {
	if query.Locale == "" {
		query.Locale = "en"
	}
	if query.Region == "" {
		query.Region = "in"
	}
	if query.MaxCount <= 0 {
		query.MaxCount = 150
	}
	return &ReviewAnalyzer{
		catalog:     catalog,
		sentiment:   sentiment,
		permissions: permissions,
		query:       query,
		logger:      logger,
	}
}

// Analyze fetches and scores reviews for the given app identifier. It never
// returns an error: collaborator failures and empty batches both yield the
// fail-safe signal.
func (a *ReviewAnalyzer) Analyze(ctx context.Context, appID string) ReviewSignal {
	reviews, err := a.catalog.Reviews(ctx, appID, a.query)
	if err != nil {
		a.logger.Warn("review fetch failed, applying fail-safe signal",
			slog.String("app_id", appID),
			slog.String("error", err.Error()),
		)
		return FailSafeSignal(false)
	}
	if len(reviews) == 0 {
		a.logger.Warn("review fetch returned no data, applying fail-safe signal",
			slog.String("app_id", appID),
		)
		return FailSafeSignal(true)
	}

	sentiment := a.sentiment.Classify(reviews)
	risk, riskMentions := a.permissions.Classify(reviews)

	return ReviewSignal{
		Sentiment:      sentiment.Sentiment,
		Risk:           risk,
		Total:          sentiment.Total,
		Positive:       sentiment.Positive,
		Negative:       sentiment.Negative,
		RiskMentions:   riskMentions,
		NegativeRatio:  sentiment.NegativeRatio,
		Summary: fmt.Sprintf("Analysed %d reviews: %d positive, %d negative, %d mentioning permission or privacy concerns.",
			sentiment.Total, sentiment.Positive, sentiment.Negative, riskMentions),
		FetchSucceeded: true,
	}
}

// FailSafeSignal is the risk-leaning default used when no review evidence is
// available.
func FailSafeSignal(fetchSucceeded bool) ReviewSignal {
	summary := "No review data could be retrieved; treating the app as high risk."
	if fetchSucceeded {
		summary = "No reviews available for this app; treating the app as high risk."
	}
	return ReviewSignal{
		Sentiment:      valueobject.SentimentMostlyNegative,
		Risk:           valueobject.PermissionRiskHigh,
		NegativeRatio:  decimal.Zero,
		Summary:        summary,
		FetchSucceeded: fetchSucceeded,
	}
}

// --- Keyword classifiers ---

// positiveKeywords and negativeKeywords drive the sentiment buckets. A single
// review may count toward both buckets, either, or neither.
var (
	positiveKeywords = []string{"good", "easy", "fast", "helpful", "smooth", "best"}
	negativeKeywords = []string{
		"scam", "fraud", "fake", "harassment", "privacy", "permission",
		"contacts", "sms", "threat", "abuse", "cheat",
	}
	permissionKeywords = []string{
		"permission", "privacy", "sms", "contacts",
		"location", "camera", "data misuse", "scam",
	}
)

// Sentiment classification thresholds. Both comparisons are strict: a batch
// sitting exactly on a boundary takes the milder label.
var (
	mostlyNegativeCutoff = decimal.New(25, -2) // negative/total > 0.25
	mostlyPositiveCutoff = decimal.New(5, -1)  // positive/total > 0.5
)

// KeywordSentimentClassifier scores sentiment from keyword membership ratios.
type KeywordSentimentClassifier struct{}

// NewKeywordSentimentClassifier creates the keyword-based sentiment classifier.
func NewKeywordSentimentClassifier() *KeywordSentimentClassifier {
	return &KeywordSentimentClassifier{}
}

// Classify scans each review, case-folded, for positive and negative keyword
// membership and applies the ratio rules in order.
func (c *KeywordSentimentClassifier) Classify(reviews []string) SentimentResult {
	total := len(reviews)
	if total == 0 {
		return SentimentResult{Sentiment: valueobject.SentimentMostlyNegative, NegativeRatio: decimal.Zero}
	}

	var positive, negative int
	for _, review := range reviews {
		text := strings.ToLower(review)
		if containsAny(text, positiveKeywords) {
			positive++
		}
		if containsAny(text, negativeKeywords) {
			negative++
		}
	}

	totalDec := decimal.NewFromInt(int64(total))
	negativeRatio := decimal.NewFromInt(int64(negative)).Div(totalDec)
	positiveRatio := decimal.NewFromInt(int64(positive)).Div(totalDec)

	sentiment := valueobject.SentimentMixed
	switch {
	case negativeRatio.GreaterThan(mostlyNegativeCutoff):
		sentiment = valueobject.SentimentMostlyNegative
	case positiveRatio.GreaterThan(mostlyPositiveCutoff):
		sentiment = valueobject.SentimentMostlyPositive
	}

	return SentimentResult{
		Sentiment:     sentiment,
		Total:         total,
		Positive:      positive,
		Negative:      negative,
		NegativeRatio: negativeRatio,
	}
}

// Permission-risk thresholds, strict on the upper bound of each band.
var (
	highRiskCutoff   = decimal.New(1, -1) // ratio > 0.10
	mediumRiskCutoff = decimal.New(3, -2) // ratio > 0.03
)

// KeywordPermissionClassifier scores permission risk from the share of
// reviews mentioning privacy or permission terms.
type KeywordPermissionClassifier struct{}

// NewKeywordPermissionClassifier creates the keyword-based permission-risk classifier.
func NewKeywordPermissionClassifier() *KeywordPermissionClassifier {
	return &KeywordPermissionClassifier{}
}

// Classify returns the risk label and the number of reviews with at least one
// permission-related mention.
func (c *KeywordPermissionClassifier) Classify(reviews []string) (valueobject.PermissionRisk, int) {
	total := len(reviews)
	if total == 0 {
		return valueobject.PermissionRiskHigh, 0
	}

	var mentions int
	for _, review := range reviews {
		if containsAny(strings.ToLower(review), permissionKeywords) {
			mentions++
		}
	}

	ratio := decimal.NewFromInt(int64(mentions)).Div(decimal.NewFromInt(int64(total)))
	switch {
	case ratio.GreaterThan(highRiskCutoff):
		return valueobject.PermissionRiskHigh, mentions
	case ratio.GreaterThan(mediumRiskCutoff):
		return valueobject.PermissionRiskMedium, mentions
	default:
		return valueobject.PermissionRiskLow, mentions
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
