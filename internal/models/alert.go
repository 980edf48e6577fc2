package models

// Alert types.
const (
	AlertTypeKm   = "km"
	AlertTypeTime = "time"
)

// Alert severities, highest priority first.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// Alert is a maintenance warning derived for one truck and one rule. It is
// computed on every request and never persisted. Exactly one of the
// remaining/overdue field pairs is set, matching AlertType.
type Alert struct {
	TruckID         string       `json:"truckId"`
	MaintenanceType string       `json:"maintenanceType"`
	AlertType       string       `json:"alertType"` // "km" or "time"
	Severity        string       `json:"severity"`  // "critical", "high", "medium"
	Overdue         bool         `json:"overdue,omitempty"`
	RemainingKm     *float64     `json:"remainingKm,omitempty"`
	OverdueKm       *float64     `json:"overdueKm,omitempty"`
	RemainingMonths *int         `json:"remainingMonths,omitempty"`
	OverdueMonths   *int         `json:"overdueMonths,omitempty"`
	Message         string       `json:"message"`
	Truck           TruckSummary `json:"truck"`
}
