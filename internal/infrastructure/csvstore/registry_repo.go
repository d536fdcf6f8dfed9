package csvstore

import (
	"context"
	"log/slog"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
)

// Registry file columns.
const (
	registryColLenderName = "nbfc_name"
	registryColStoreTitle = "playstore_name"
	registryColAppID      = "app_id"
	registryColLenderType = "type"
)

// RegistryRepository serves the disclosed-lender registry from a CSV file.
// The file is loaded once at construction and never re-read; a load failure
// degrades to an empty registry so the service still starts, with every loan
// app then classified as unregistered.
type RegistryRepository struct {
	entries []model.RegistryEntry
}

// NewRegistryRepository loads the registry file at path.
func NewRegistryRepository(path string, logger *slog.Logger) *RegistryRepository {
	entries, err := loadRegistry(path)
	if err != nil {
		logger.Error("failed to load lender registry, starting with empty registry",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return &RegistryRepository{}
	}

	logger.Info("lender registry loaded",
		slog.String("path", path),
		slog.Int("entries", len(entries)),
	)
	return &RegistryRepository{entries: entries}
}

// Entries returns the registry rows in file order.
func (r *RegistryRepository) Entries(_ context.Context) ([]model.RegistryEntry, error) {
	return r.entries, nil
}

func loadRegistry(path string) ([]model.RegistryEntry, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if len(t.rows) == 0 {
		return nil, nil
	}
	if err := t.require(path, registryColLenderName, registryColAppID); err != nil {
		return nil, err
	}

	entries := make([]model.RegistryEntry, 0, len(t.rows))
	for _, row := range t.rows {
		entries = append(entries, model.RegistryEntry{
			LenderName: t.get(row, registryColLenderName),
			StoreTitle: t.get(row, registryColStoreTitle),
			AppID:      t.get(row, registryColAppID),
			LenderType: t.get(row, registryColLenderType),
		})
	}
	return entries, nil
}
