package handlers

import (
	"net/http"

	"github.com/fleetdesk/fleet-backend/internal/alerts"
	"github.com/fleetdesk/fleet-backend/internal/db"
	"github.com/fleetdesk/fleet-backend/internal/middleware"
	"github.com/fleetdesk/fleet-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlertHandler serves the maintenance alert feeds for admins and drivers.
type AlertHandler struct {
	trucks db.TruckCollection
	trips  db.TripCollection
	rules  db.RuleCollection
	logs   db.MaintenanceLogCollection
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(trucks db.TruckCollection, trips db.TripCollection, rules db.RuleCollection, logs db.MaintenanceLogCollection) *AlertHandler {
	return &AlertHandler{
		trucks: trucks,
		trips:  trips,
		rules:  rules,
		logs:   logs,
	}
}

type alertReport struct {
	TotalAlerts int            `json:"totalAlerts"`
	Alerts      []models.Alert `json:"alerts"`
}

type driverAlertReport struct {
	HasAssignedTrip bool           `json:"hasAssignedTrip"`
	TotalAlerts     int            `json:"totalAlerts"`
	Alerts          []models.Alert `json:"alerts"`
}

// AdminMaintenanceAlerts evaluates every truck in the fleet against the full
// rule set. Alerts come back in evaluation order (truck-major, rule-major).
func (h *AlertHandler) AdminMaintenanceAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rules, err := h.rules.ListRules(r.Context())
	if err != nil {
		http.Error(w, "Failed to load maintenance rules", http.StatusInternalServerError)
		return
	}

	trucks, err := h.trucks.ListTrucks(r.Context())
	if err != nil {
		http.Error(w, "Failed to load trucks", http.StatusInternalServerError)
		return
	}

	alertList, err := alerts.Build(r.Context(), trucks, rules, h.logs)
	if err != nil {
		http.Error(w, "Failed to compute maintenance alerts", http.StatusInternalServerError)
		return
	}
	if alertList == nil {
		alertList = []models.Alert{}
	}

	writeData(w, http.StatusOK, alertReport{
		TotalAlerts: len(alertList),
		Alerts:      alertList,
	})
}

// DriverTruckAlerts evaluates only the trucks behind the calling driver's
// pending and running trips, deduplicated, and orders the alerts by severity.
// A driver with no such trips short-circuits without touching rules or
// history.
func (h *AlertHandler) DriverTruckAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	driverID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	trips, err := h.trips.FindActiveTripsByDriver(r.Context(), driverID)
	if err != nil {
		http.Error(w, "Failed to load trips", http.StatusInternalServerError)
		return
	}

	if len(trips) == 0 {
		writeData(w, http.StatusOK, driverAlertReport{
			HasAssignedTrip: false,
			Alerts:          []models.Alert{},
		})
		return
	}

	// Trips arrive ordered by planned date; keep the first occurrence of
	// each truck.
	seen := make(map[primitive.ObjectID]bool)
	var truckIDs []primitive.ObjectID
	for _, trip := range trips {
		if !seen[trip.TruckID] {
			seen[trip.TruckID] = true
			truckIDs = append(truckIDs, trip.TruckID)
		}
	}

	found, err := h.trucks.FindTrucksByIDs(r.Context(), truckIDs)
	if err != nil {
		http.Error(w, "Failed to load trucks", http.StatusInternalServerError)
		return
	}

	// Restore trip order; $in does not preserve it.
	byID := make(map[primitive.ObjectID]models.Truck, len(found))
	for _, truck := range found {
		byID[truck.ID] = truck
	}
	trucks := make([]models.Truck, 0, len(truckIDs))
	for _, id := range truckIDs {
		if truck, ok := byID[id]; ok {
			trucks = append(trucks, truck)
		}
	}

	rules, err := h.rules.ListRules(r.Context())
	if err != nil {
		http.Error(w, "Failed to load maintenance rules", http.StatusInternalServerError)
		return
	}

	alertList, err := alerts.Build(r.Context(), trucks, rules, h.logs)
	if err != nil {
		http.Error(w, "Failed to compute maintenance alerts", http.StatusInternalServerError)
		return
	}
	alerts.SortBySeverity(alertList)
	if alertList == nil {
		alertList = []models.Alert{}
	}

	writeData(w, http.StatusOK, driverAlertReport{
		HasAssignedTrip: true,
		TotalAlerts:     len(alertList),
		Alerts:          alertList,
	})
}
