package valueobject

import "fmt"

// Sentiment is an immutable value object classifying the overall tone of a
// review batch.
type Sentiment struct {
	value string
}

var (
	SentimentMostlyPositive = Sentiment{value: "Mostly Positive"}
	SentimentMostlyNegative = Sentiment{value: "Mostly Negative"}
	SentimentMixed          = Sentiment{value: "Mixed"}
)

// SentimentFromString reconstructs a Sentiment from its string representation.
// Legacy single-word labels from earlier data revisions are accepted.
func SentimentFromString(s string) (Sentiment, error) {
	switch s {
	case "Mostly Positive", "Positive":
		return SentimentMostlyPositive, nil
	case "Mostly Negative", "Negative":
		return SentimentMostlyNegative, nil
	case "Mixed":
		return SentimentMixed, nil
	default:
		return Sentiment{}, fmt.Errorf("invalid sentiment: %s", s)
	}
}

// String returns the string representation.
func (s Sentiment) String() string {
	return s.value
}

// IsZero returns true if the Sentiment has not been set.
func (s Sentiment) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another Sentiment.
func (s Sentiment) Equal(other Sentiment) bool {
	return s.value == other.value
}

// IsNegative returns true if the sentiment is Mostly Negative.
func (s Sentiment) IsNegative() bool {
	return s.value == "Mostly Negative"
}
