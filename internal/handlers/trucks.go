package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fleetdesk/fleet-backend/internal/db"
	"github.com/fleetdesk/fleet-backend/internal/models"
)

// TruckHandler handles truck CRUD requests.
type TruckHandler struct {
	trucks db.TruckCollection
}

// NewTruckHandler creates a new truck handler
func NewTruckHandler(trucks db.TruckCollection) *TruckHandler {
	return &TruckHandler{trucks: trucks}
}

// Trucks dispatches /api/v1/trucks: list on GET, create on POST.
func (h *TruckHandler) Trucks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TruckByID dispatches /api/v1/trucks/{id}: get, update, delete.
func (h *TruckHandler) TruckByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		truck, err := h.trucks.FindTruckByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Truck not found", http.StatusNotFound)
			return
		}
		writeData(w, http.StatusOK, truck)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		if err := h.trucks.DeleteTruck(r.Context(), id); err != nil {
			http.Error(w, "Truck not found", http.StatusNotFound)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"message": "Truck deleted successfully"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TruckHandler) list(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.trucks.ListTrucks(r.Context())
	if err != nil {
		http.Error(w, "Failed to load trucks", http.StatusInternalServerError)
		return
	}
	if trucks == nil {
		trucks = []models.Truck{}
	}
	writeData(w, http.StatusOK, trucks)
}

func (h *TruckHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var truck models.Truck
	if err := json.Unmarshal(body, &truck); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(truck.RegistrationNumber) == "" {
		http.Error(w, "Registration number is required", http.StatusBadRequest)
		return
	}
	if truck.CurrentKm < 0 {
		http.Error(w, "Current km must not be negative", http.StatusBadRequest)
		return
	}
	if truck.Status == "" {
		truck.Status = models.TruckAvailable
	}

	if err := h.trucks.InsertTruck(r.Context(), truck); err != nil {
		http.Error(w, "Failed to create truck", http.StatusInternalServerError)
		return
	}
	writeData(w, http.StatusCreated, map[string]string{"message": "Truck created successfully"})
}

func (h *TruckHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var truck models.Truck
	if err := json.Unmarshal(body, &truck); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.trucks.UpdateTruck(r.Context(), id, truck); err != nil {
		http.Error(w, "Truck not found", http.StatusNotFound)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Truck updated successfully"})
}
