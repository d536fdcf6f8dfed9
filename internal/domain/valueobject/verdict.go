package valueobject

import "fmt"

// Verdict is an immutable value object representing the final classification
// of an application.
type Verdict struct {
	value string
}

var (
	VerdictSafe       = Verdict{value: "Safe"}
	VerdictCaution    = Verdict{value: "Caution"}
	VerdictSuspicious = Verdict{value: "Suspicious"}
	VerdictRisky      = Verdict{value: "Risky"}
	VerdictNotLoanApp = Verdict{value: "Not a Loan App"}
)

// VerdictFromString reconstructs a Verdict from its string representation.
func VerdictFromString(s string) (Verdict, error) {
	switch s {
	case "Safe":
		return VerdictSafe, nil
	case "Caution":
		return VerdictCaution, nil
	case "Suspicious":
		return VerdictSuspicious, nil
	case "Risky":
		return VerdictRisky, nil
	case "Not a Loan App":
		return VerdictNotLoanApp, nil
	default:
		return Verdict{}, fmt.Errorf("invalid verdict: %s", s)
	}
}

// String returns the string representation.
func (v Verdict) String() string {
	return v.value
}

// IsZero returns true if the Verdict has not been set.
func (v Verdict) IsZero() bool {
	return v.value == ""
}

// Equal checks equality with another Verdict.
func (v Verdict) Equal(other Verdict) bool {
	return v.value == other.value
}

// IsSafe returns true if the verdict is Safe.
func (v Verdict) IsSafe() bool {
	return v.value == "Safe"
}

// IsRisky returns true if the verdict is Risky.
func (v Verdict) IsRisky() bool {
	return v.value == "Risky"
}
