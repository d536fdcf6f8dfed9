package port

import (
	"context"
	"errors"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// ErrListingNotFound is returned by StoreCatalog when no listing matches the
// identifier or query.
var ErrListingNotFound = errors.New("listing not found")

// SearchResult is one ranked hit from a free-text store search.
type SearchResult struct {
	AppID string
	Title string
}

// ReviewQuery bounds a review fetch.
type ReviewQuery struct {
	Locale   string
	Region   string
	MaxCount int
}

// StoreCatalog is the boundary contract for the app-store collaborator:
// listing lookup, free-text search, and review retrieval. Implementations
// must impose their own timeout; callers treat any error as an unavailable
// upstream and degrade conservatively.
type StoreCatalog interface {
	// Lookup resolves an app identifier or exact query to its listing.
	// Returns ErrListingNotFound when nothing matches.
	Lookup(ctx context.Context, identifierOrQuery string) (model.Listing, error)

	// Search resolves a free-text name to ranked (app id, title) candidates.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Reviews fetches up to query.MaxCount review texts for the app.
	Reviews(ctx context.Context, appID string, query ReviewQuery) ([]string, error)
}
