package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fleetdesk/fleet-backend/internal/db"
	"github.com/fleetdesk/fleet-backend/internal/middleware"
	"github.com/fleetdesk/fleet-backend/internal/models"
)

// TripHandler handles trip CRUD requests.
type TripHandler struct {
	trips db.TripCollection
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips db.TripCollection) *TripHandler {
	return &TripHandler{trips: trips}
}

// Trips dispatches /api/v1/trips: list on GET, create on POST.
func (h *TripHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		trips, err := h.trips.ListTrips(r.Context())
		if err != nil {
			http.Error(w, "Failed to load trips", http.StatusInternalServerError)
			return
		}
		if trips == nil {
			trips = []models.Trip{}
		}
		writeData(w, http.StatusOK, trips)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TripByID dispatches /api/v1/trips/{id}: get, delete.
func (h *TripHandler) TripByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		trip, err := h.trips.FindTripByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		writeData(w, http.StatusOK, trip)
	case http.MethodDelete:
		if err := h.trips.DeleteTrip(r.Context(), id); err != nil {
			http.Error(w, "Failed to delete trip", http.StatusInternalServerError)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TripStatus handles PUT /api/v1/trips/{id}/status. Drivers may only move
// their own trips.
func (h *TripHandler) TripStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var statusReq struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &statusReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidTripStatus(statusReq.Status) {
		http.Error(w, "Invalid trip status", http.StatusBadRequest)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if claims.Role == models.RoleDriver {
		trip, err := h.trips.FindTripByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		if trip.DriverID.Hex() != claims.UserID {
			http.Error(w, "Insufficient permissions", http.StatusForbidden)
			return
		}
	}

	if err := h.trips.UpdateTripStatus(r.Context(), id, statusReq.Status); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Trip status updated successfully"})
}

func (h *TripHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := json.Unmarshal(body, &trip); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if trip.TruckID.IsZero() || trip.DriverID.IsZero() {
		http.Error(w, "truck_id and driver_id are required", http.StatusBadRequest)
		return
	}
	if trip.Status == "" {
		trip.Status = models.TripToDo
	}
	if !models.IsValidTripStatus(trip.Status) {
		http.Error(w, "Invalid trip status", http.StatusBadRequest)
		return
	}

	if err := h.trips.InsertTrip(r.Context(), trip); err != nil {
		http.Error(w, "Failed to create trip", http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, map[string]string{"message": "Trip created successfully"})
}
