package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// RegistryMatch is the outcome of a disclosed-lender registry lookup.
type RegistryMatch struct {
	Registered bool
	LenderName string
	LenderType string
}

// RegistryMatcher decides whether an application corresponds to a disclosed
// lender. Matching is first-match-wins over the registry rows,
// case-insensitive and whitespace-trimmed:
//
//  1. exact match of the resolved app id against an entry's canonical id;
//  2. substring containment of an entry's canonical title within the
//     application's display title.
//
// The scan is O(registry size); registries are expected to hold hundreds of
// rows.
type RegistryMatcher struct {
	registry port.LenderRegistry
	logger   *slog.Logger
}

// NewRegistryMatcher creates a matcher over the given registry.
func NewRegistryMatcher(registry port.LenderRegistry, logger *slog.Logger) *RegistryMatcher {
	return &RegistryMatcher{registry: registry, logger: logger}
}

// Match looks up the app id and display title against the registry. Registry
// access failures degrade to an unmatched result: an app is never reported
// registered on faulty evidence.
func (m *RegistryMatcher) Match(ctx context.Context, appID, displayTitle string) RegistryMatch {
	entries, err := m.registry.Entries(ctx)
	if err != nil {
		m.logger.Warn("registry unavailable, treating app as unregistered",
			slog.String("app_id", appID),
			slog.String("error", err.Error()),
		)
		return RegistryMatch{}
	}

	appID = strings.ToLower(strings.TrimSpace(appID))
	displayTitle = strings.ToLower(strings.TrimSpace(displayTitle))

	for _, entry := range entries {
		entryID := strings.ToLower(strings.TrimSpace(entry.AppID))
		if entryID != "" && entryID == appID {
			return RegistryMatch{Registered: true, LenderName: entry.LenderName, LenderType: entry.LenderType}
		}

		entryTitle := strings.ToLower(strings.TrimSpace(entry.StoreTitle))
		if entryTitle != "" && strings.Contains(displayTitle, entryTitle) {
			return RegistryMatch{Registered: true, LenderName: entry.LenderName, LenderType: entry.LenderType}
		}
	}

	return RegistryMatch{}
}
