// Package testutil holds fixture values shared across test packages.
package testutil

// Canonical lending-app fixture used by service, use case and handler tests.
const (
	TestLoanAppTitle = "QuickCash Loan"
	TestLoanAppID    = "com.quickcash.loan"
	TestLenderName   = "QuickCash Finance Ltd"
	TestLenderType   = "NBFC"
)
