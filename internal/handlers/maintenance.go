package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fleetdesk/fleet-backend/internal/db"
	"github.com/fleetdesk/fleet-backend/internal/models"
)

var (
	errInvalidMaintenanceType = errors.New("invalid maintenance type")
	errNegativeInterval       = errors.New("intervals must be positive")
	errNoInterval             = errors.New("rule must set every_km or every_months")
)

// MaintenanceHandler handles maintenance rule and log requests.
type MaintenanceHandler struct {
	rules db.RuleCollection
	logs  db.MaintenanceLogCollection
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(rules db.RuleCollection, logs db.MaintenanceLogCollection) *MaintenanceHandler {
	return &MaintenanceHandler{rules: rules, logs: logs}
}

// Rules dispatches /api/v1/maintenance-rules: list on GET, create on POST.
func (h *MaintenanceHandler) Rules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rules, err := h.rules.ListRules(r.Context())
		if err != nil {
			http.Error(w, "Failed to load maintenance rules", http.StatusInternalServerError)
			return
		}
		if rules == nil {
			rules = []models.MaintenanceRule{}
		}
		writeData(w, http.StatusOK, rules)
	case http.MethodPost:
		h.createRule(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// RuleByID dispatches /api/v1/maintenance-rules/{id}: update, delete.
func (h *MaintenanceHandler) RuleByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var rule models.MaintenanceRule
		if err := json.Unmarshal(body, &rule); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validateRule(rule); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.rules.UpdateRule(r.Context(), id, rule); err != nil {
			http.Error(w, "Failed to update rule", http.StatusInternalServerError)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"message": "Rule updated successfully"})
	case http.MethodDelete:
		if err := h.rules.DeleteRule(r.Context(), id); err != nil {
			http.Error(w, "Failed to delete rule", http.StatusInternalServerError)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"message": "Rule deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MaintenanceHandler) createRule(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var rule models.MaintenanceRule
	if err := json.Unmarshal(body, &rule); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := validateRule(rule); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.rules.InsertRule(r.Context(), rule); err != nil {
		http.Error(w, "Failed to create rule", http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, map[string]string{"message": "Rule created successfully"})
}

func validateRule(rule models.MaintenanceRule) error {
	if !models.IsValidMaintenanceType(rule.Type) {
		return errInvalidMaintenanceType
	}
	if rule.EveryKm < 0 || rule.EveryMonths < 0 {
		return errNegativeInterval
	}
	if rule.EveryKm == 0 && rule.EveryMonths == 0 {
		return errNoInterval
	}
	return nil
}

// Logs dispatches /api/v1/maintenance-logs: list on GET (filtered by
// truck_id), create on POST.
func (h *MaintenanceHandler) Logs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		truckID := r.URL.Query().Get("truck_id")
		if truckID == "" {
			http.Error(w, "truck_id query parameter is required", http.StatusBadRequest)
			return
		}
		logs, err := h.logs.FindLogsByTruck(r.Context(), truckID)
		if err != nil {
			http.Error(w, "Failed to load maintenance logs", http.StatusInternalServerError)
			return
		}
		if logs == nil {
			logs = []models.MaintenanceLog{}
		}
		writeData(w, http.StatusOK, logs)
	case http.MethodPost:
		h.createLog(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MaintenanceHandler) createLog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var log models.MaintenanceLog
	if err := json.Unmarshal(body, &log); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if !models.IsValidMaintenanceType(log.Type) {
		http.Error(w, "Invalid maintenance type", http.StatusBadRequest)
		return
	}
	if log.TruckID.IsZero() {
		http.Error(w, "truck_id is required", http.StatusBadRequest)
		return
	}
	if log.Date.IsZero() {
		log.Date = time.Now()
	}

	if err := h.logs.InsertLog(r.Context(), log); err != nil {
		http.Error(w, "Failed to create maintenance log", http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, map[string]string{"message": "Maintenance log created successfully"})
}
