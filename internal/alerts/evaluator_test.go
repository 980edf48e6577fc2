package alerts

import (
	"testing"
	"time"

	"github.com/fleetdesk/fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testTruck(currentKm float64, createdAt time.Time) models.Truck {
	return models.Truck{
		ID:                 primitive.NewObjectID(),
		RegistrationNumber: "34 ABC 123",
		Brand:              "Volvo",
		Model:              "FH16",
		CurrentKm:          currentKm,
		Status:             models.TruckAvailable,
		CreatedAt:          createdAt,
	}
}

func TestEvaluate_DistanceThresholds(t *testing.T) {
	rule := models.MaintenanceRule{Type: models.MaintenanceOil, EveryKm: 10000}

	tests := []struct {
		name          string
		currentKm     float64
		wantAlert     bool
		wantSeverity  string
		wantOverdue   bool
		wantRemaining float64
		wantOverdueKm float64
	}{
		{"far from due", 8999, false, "", false, 0, 0},
		{"exactly at window edge", 9000, true, models.SeverityMedium, false, 1000, 0},
		{"inside medium window", 9200, true, models.SeverityMedium, false, 800, 0},
		{"exactly at high edge", 9500, true, models.SeverityHigh, false, 500, 0},
		{"inside high window", 9800, true, models.SeverityHigh, false, 200, 0},
		{"exactly due", 10000, true, models.SeverityCritical, true, 0, 0},
		{"one km overdue", 10001, true, models.SeverityCritical, true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truck := testTruck(tt.currentKm, time.Now())
			alert := Evaluate(truck, rule, nil)

			if !tt.wantAlert {
				assert.Nil(t, alert)
				return
			}
			assert.NotNil(t, alert)
			assert.Equal(t, models.AlertTypeKm, alert.AlertType)
			assert.Equal(t, tt.wantSeverity, alert.Severity)
			assert.Equal(t, tt.wantOverdue, alert.Overdue)
			if tt.wantOverdue {
				assert.NotNil(t, alert.OverdueKm)
				assert.Equal(t, tt.wantOverdueKm, *alert.OverdueKm)
				assert.Nil(t, alert.RemainingKm)
			} else {
				assert.NotNil(t, alert.RemainingKm)
				assert.Equal(t, tt.wantRemaining, *alert.RemainingKm)
				assert.Nil(t, alert.OverdueKm)
			}
		})
	}
}

func TestEvaluate_LastLogMovesBaseline(t *testing.T) {
	rule := models.MaintenanceRule{Type: models.MaintenanceTires, EveryKm: 10000}
	truck := testTruck(29600, time.Now())
	last := &models.MaintenanceLog{Type: models.MaintenanceTires, Km: 20000, Date: time.Now()}

	alert := Evaluate(truck, rule, last)

	assert.NotNil(t, alert)
	assert.Equal(t, models.SeverityHigh, alert.Severity)
	assert.Equal(t, 400.0, *alert.RemainingKm)
	assert.Equal(t, "tires maintenance needed in 400 km", alert.Message)
}

func TestEvaluate_DistanceTakesPriorityOverTime(t *testing.T) {
	// Both branches would fire on their own; only the distance alert may
	// come out.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rule := models.MaintenanceRule{Type: models.MaintenanceEngine, EveryKm: 10000, EveryMonths: 3}
	truck := testTruck(10500, now.AddDate(0, -4, 0))

	alert := EvaluateAt(truck, rule, nil, now)

	assert.NotNil(t, alert)
	assert.Equal(t, models.AlertTypeKm, alert.AlertType)
	assert.True(t, alert.Overdue)
	assert.Equal(t, 500.0, *alert.OverdueKm)
	assert.Nil(t, alert.OverdueMonths)
}

func TestEvaluateAt_NoHistoryFallsBackToCreatedAt(t *testing.T) {
	// Truck created 4 months ago, never serviced, 3-month oil rule: one
	// month overdue.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rule := models.MaintenanceRule{Type: models.MaintenanceOil, EveryMonths: 3}
	truck := testTruck(1000, now.AddDate(0, -4, 0))

	alert := EvaluateAt(truck, rule, nil, now)

	assert.NotNil(t, alert)
	assert.Equal(t, models.AlertTypeTime, alert.AlertType)
	assert.Equal(t, models.SeverityCritical, alert.Severity)
	assert.True(t, alert.Overdue)
	assert.Equal(t, 1, *alert.OverdueMonths)
	assert.Equal(t, "oil maintenance is overdue by 1 month(s)!", alert.Message)
}

func TestEvaluateAt_TimeDueSoon(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rule := models.MaintenanceRule{Type: models.MaintenanceGeneral, EveryMonths: 6}
	truck := testTruck(1000, now.AddDate(0, -5, 0))

	alert := EvaluateAt(truck, rule, nil, now)

	assert.NotNil(t, alert)
	assert.Equal(t, models.SeverityMedium, alert.Severity)
	assert.False(t, alert.Overdue)
	assert.Equal(t, 1, *alert.RemainingMonths)
	assert.Equal(t, "general maintenance needed in 1 month(s)", alert.Message)
}

func TestEvaluateAt_TimeUsesLastLogDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rule := models.MaintenanceRule{Type: models.MaintenanceOil, EveryMonths: 3}
	// Truck is old but was serviced recently.
	truck := testTruck(1000, now.AddDate(-2, 0, 0))
	last := &models.MaintenanceLog{Type: models.MaintenanceOil, Date: now.AddDate(0, -1, 0)}

	alert := EvaluateAt(truck, rule, last, now)

	assert.Nil(t, alert)
}

func TestEvaluate_RuleWithoutIntervals(t *testing.T) {
	truck := testTruck(50000, time.Now().AddDate(-1, 0, 0))
	alert := Evaluate(truck, models.MaintenanceRule{Type: models.MaintenanceGeneral}, nil)
	assert.Nil(t, alert)
}

func TestEvaluate_FractionalKmInMessage(t *testing.T) {
	rule := models.MaintenanceRule{Type: models.MaintenanceOil, EveryKm: 10000}
	truck := testTruck(9749.5, time.Now())

	alert := Evaluate(truck, rule, nil)

	assert.NotNil(t, alert)
	assert.Equal(t, "oil maintenance needed in 250.5 km", alert.Message)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same instant", date(2025, 3, 15), date(2025, 3, 15), 0},
		{"partial month", date(2025, 3, 15), date(2025, 4, 14), 0},
		{"exactly one month", date(2025, 3, 15), date(2025, 4, 15), 1},
		{"across year boundary", date(2024, 11, 10), date(2025, 2, 10), 3},
		{"month-end start not yet reached", date(2025, 1, 31), date(2025, 2, 28), 0},
		{"month-end start passed", date(2025, 1, 31), date(2025, 3, 31), 2},
		{"to before from clamps to zero", date(2025, 5, 1), date(2025, 4, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsBetween(tt.from, tt.to))
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
