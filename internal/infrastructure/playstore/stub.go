package playstore

import (
	"context"
	"strings"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// Compile-time interface check.
var _ port.StoreCatalog = (*Stub)(nil)

// Stub is a canned StoreCatalog for development and test environments. It
// serves one well-behaved loan app and reports everything else as not found.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

const (
	stubAppID = "com.quickcash.loan"
	stubTitle = "QuickCash Loan"
)

// Lookup resolves only the canned app id or title.
func (s *Stub) Lookup(_ context.Context, identifierOrQuery string) (model.Listing, error) {
	q := strings.ToLower(strings.TrimSpace(identifierOrQuery))
	if q != stubAppID && q != strings.ToLower(stubTitle) {
		return model.Listing{}, port.ErrListingNotFound
	}
	return model.Listing{
		Title:             stubTitle,
		AppID:             stubAppID,
		Rating:            4.1,
		RatingAvailable:   true,
		Installs:          "1,000,000+",
		InstallsAvailable: true,
		ReviewCount:       1500,
	}, nil
}

// Search returns the canned app when the query mentions it.
func (s *Stub) Search(_ context.Context, query string) ([]port.SearchResult, error) {
	if !strings.Contains(strings.ToLower(stubTitle), strings.ToLower(strings.TrimSpace(query))) {
		return nil, nil
	}
	return []port.SearchResult{{AppID: stubAppID, Title: stubTitle}}, nil
}

// Reviews returns a positive-leaning canned batch.
func (s *Stub) Reviews(_ context.Context, appID string, _ port.ReviewQuery) ([]string, error) {
	if appID != stubAppID {
		return nil, nil
	}
	return []string{
		"fast approval and easy to use",
		"good app, disbursal was smooth",
		"best loan app I have tried",
		"helpful support team",
		"interface could be improved",
	}, nil
}
