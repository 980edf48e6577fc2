package alerts

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fleetdesk/fleet-backend/internal/models"
)

// Alert thresholds. A distance alert opens when the truck is within
// dueSoonKmWindow of the rule interval and escalates to high severity within
// highKmWindow. A time alert opens when one month or less remains.
const (
	dueSoonKmWindow     = 1000.0
	highKmWindow        = 500.0
	dueSoonMonthsWindow = 1
)

// Evaluate decides whether a truck needs an alert for one maintenance rule,
// given the most recent maintenance log for that rule's type (nil when the
// truck has never been serviced for it). It returns at most one alert: the
// distance check runs first and, when it fires, the time check is skipped.
func Evaluate(truck models.Truck, rule models.MaintenanceRule, last *models.MaintenanceLog) *models.Alert {
	return EvaluateAt(truck, rule, last, time.Now())
}

// EvaluateAt is Evaluate with an explicit reference time for the elapsed-month
// calculation.
func EvaluateAt(truck models.Truck, rule models.MaintenanceRule, last *models.MaintenanceLog, now time.Time) *models.Alert {
	if alert := evaluateDistance(truck, rule, last); alert != nil {
		return alert
	}
	return evaluateTime(truck, rule, last, now)
}

func evaluateDistance(truck models.Truck, rule models.MaintenanceRule, last *models.MaintenanceLog) *models.Alert {
	if rule.EveryKm <= 0 {
		return nil
	}

	lastKm := 0.0
	if last != nil {
		lastKm = last.Km
	}
	remaining := rule.EveryKm - (truck.CurrentKm - lastKm)

	switch {
	case remaining <= 0:
		overdue := -remaining
		return &models.Alert{
			TruckID:         truck.ID.Hex(),
			MaintenanceType: rule.Type,
			AlertType:       models.AlertTypeKm,
			Severity:        models.SeverityCritical,
			Overdue:         true,
			OverdueKm:       &overdue,
			Message:         fmt.Sprintf("%s maintenance is overdue by %s km!", rule.Type, formatKm(overdue)),
			Truck:           truck.Summary(),
		}
	case remaining <= dueSoonKmWindow:
		severity := models.SeverityMedium
		if remaining <= highKmWindow {
			severity = models.SeverityHigh
		}
		left := remaining
		return &models.Alert{
			TruckID:         truck.ID.Hex(),
			MaintenanceType: rule.Type,
			AlertType:       models.AlertTypeKm,
			Severity:        severity,
			RemainingKm:     &left,
			Message:         fmt.Sprintf("%s maintenance needed in %s km", rule.Type, formatKm(remaining)),
			Truck:           truck.Summary(),
		}
	default:
		return nil
	}
}

func evaluateTime(truck models.Truck, rule models.MaintenanceRule, last *models.MaintenanceLog, now time.Time) *models.Alert {
	if rule.EveryMonths <= 0 {
		return nil
	}

	lastDate := truck.CreatedAt
	if last != nil {
		lastDate = last.Date
	}
	remaining := rule.EveryMonths - monthsBetween(lastDate, now)

	switch {
	case remaining <= 0:
		overdue := -remaining
		return &models.Alert{
			TruckID:         truck.ID.Hex(),
			MaintenanceType: rule.Type,
			AlertType:       models.AlertTypeTime,
			Severity:        models.SeverityCritical,
			Overdue:         true,
			OverdueMonths:   &overdue,
			Message:         fmt.Sprintf("%s maintenance is overdue by %d month(s)!", rule.Type, overdue),
			Truck:           truck.Summary(),
		}
	case remaining <= dueSoonMonthsWindow:
		left := remaining
		return &models.Alert{
			TruckID:         truck.ID.Hex(),
			MaintenanceType: rule.Type,
			AlertType:       models.AlertTypeTime,
			Severity:        models.SeverityMedium,
			RemainingMonths: &left,
			Message:         fmt.Sprintf("%s maintenance needed in %d month(s)", rule.Type, remaining),
			Truck:           truck.Summary(),
		}
	default:
		return nil
	}
}

// monthsBetween counts whole calendar months elapsed from one date to
// another. A partial month does not count: the month only increments once the
// day-of-month of the start date has been reached. Spans that end before they
// start count as zero.
func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// formatKm renders a kilometer value without a trailing ".0" for whole
// numbers, matching how odometer readings appear elsewhere in the API.
func formatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
