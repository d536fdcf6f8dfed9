package valueobject

import "fmt"

// PermissionRisk is an immutable value object classifying how often a review
// batch raises privacy or permission concerns.
type PermissionRisk struct {
	value string
}

var (
	PermissionRiskLow    = PermissionRisk{value: "Low Risk"}
	PermissionRiskMedium = PermissionRisk{value: "Medium Risk"}
	PermissionRiskHigh   = PermissionRisk{value: "High Risk"}
)

// PermissionRiskFromString reconstructs a PermissionRisk from its string representation.
func PermissionRiskFromString(s string) (PermissionRisk, error) {
	switch s {
	case "Low Risk":
		return PermissionRiskLow, nil
	case "Medium Risk":
		return PermissionRiskMedium, nil
	case "High Risk":
		return PermissionRiskHigh, nil
	default:
		return PermissionRisk{}, fmt.Errorf("invalid permission risk: %s", s)
	}
}

// String returns the string representation.
func (p PermissionRisk) String() string {
	return p.value
}

// IsZero returns true if the PermissionRisk has not been set.
func (p PermissionRisk) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another PermissionRisk.
func (p PermissionRisk) Equal(other PermissionRisk) bool {
	return p.value == other.value
}

// IsElevated returns true for Medium Risk or High Risk.
func (p PermissionRisk) IsElevated() bool {
	return p.value == "Medium Risk" || p.value == "High Risk"
}
