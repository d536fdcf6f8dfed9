package model

// RegistryEntry is one row of the disclosed-lender registry: a vetted lender
// and the store listing it operates. Loaded once at process start and
// read-only afterwards.
type RegistryEntry struct {
	LenderName string
	StoreTitle string
	AppID      string
	LenderType string
}
