package alerts

import (
	"context"
	"fmt"
	"sort"

	"github.com/fleetdesk/fleet-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryLookup is the read interface the aggregator needs from storage: the
// most recent maintenance log for a (truck, type) pair, nil when none exists.
type HistoryLookup interface {
	LatestForTruck(ctx context.Context, truckID primitive.ObjectID, maintenanceType string) (*models.MaintenanceLog, error)
}

// Build runs the evaluator over every truck × rule pair and collects the
// alerts that fired, in truck-major then rule-major order. Any failed history
// lookup aborts the whole build; empty trucks or rules yield an empty list.
func Build(ctx context.Context, trucks []models.Truck, rules []models.MaintenanceRule, history HistoryLookup) ([]models.Alert, error) {
	var collected []models.Alert
	for _, truck := range trucks {
		for _, rule := range rules {
			if rule.EveryKm <= 0 && rule.EveryMonths <= 0 {
				continue
			}
			last, err := history.LatestForTruck(ctx, truck.ID, rule.Type)
			if err != nil {
				return nil, fmt.Errorf("maintenance history lookup for truck %s: %w", truck.ID.Hex(), err)
			}
			if alert := Evaluate(truck, rule, last); alert != nil {
				collected = append(collected, *alert)
			}
		}
	}
	return collected, nil
}

var severityRank = map[string]int{
	models.SeverityCritical: 0,
	models.SeverityHigh:     1,
	models.SeverityMedium:   2,
}

func rank(severity string) int {
	if r, ok := severityRank[severity]; ok {
		return r
	}
	return len(severityRank)
}

// SortBySeverity orders alerts critical, high, medium, preserving the
// relative order within each severity. Unknown severities sort last.
func SortBySeverity(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return rank(alerts[i].Severity) < rank(alerts[j].Severity)
	})
}
