package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetdesk/fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTruckHandler_List(t *testing.T) {
	trucks := new(MockTruckCollection)
	handler := NewTruckHandler(trucks)

	trucks.On("ListTrucks", mock.Anything).Return([]models.Truck{
		{ID: primitive.NewObjectID(), RegistrationNumber: "34 ABC 123", CreatedAt: time.Now()},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/trucks", nil)
	w := httptest.NewRecorder()
	handler.Trucks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Truck
	decodeData(t, w, &got)
	assert.Len(t, got, 1)
}

func TestTruckHandler_Create(t *testing.T) {
	t.Run("valid truck", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		trucks.On("InsertTruck", mock.Anything, mock.Anything).Return(nil)

		body := []byte(`{"registration_number":"34 ABC 123","brand":"Volvo","model":"FH16","current_km":120000}`)
		req := httptest.NewRequest("POST", "/api/v1/trucks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Trucks(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		trucks.AssertExpectations(t)
	})

	t.Run("missing registration", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		body := []byte(`{"brand":"Volvo"}`)
		req := httptest.NewRequest("POST", "/api/v1/trucks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Trucks(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		trucks.AssertNotCalled(t, "InsertTruck", mock.Anything, mock.Anything)
	})

	t.Run("negative odometer", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		body := []byte(`{"registration_number":"34 ABC 123","current_km":-5}`)
		req := httptest.NewRequest("POST", "/api/v1/trucks", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Trucks(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTruckHandler_TruckByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		truck := &models.Truck{ID: primitive.NewObjectID(), RegistrationNumber: "06 TRK 100"}
		trucks.On("FindTruckByID", mock.Anything, truck.ID.Hex()).Return(truck, nil)

		req := httptest.NewRequest("GET", "/api/v1/trucks/"+truck.ID.Hex(), nil)
		req.SetPathValue("id", truck.ID.Hex())
		w := httptest.NewRecorder()
		handler.TruckByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.Truck
		decodeData(t, w, &got)
		assert.Equal(t, truck.RegistrationNumber, got.RegistrationNumber)
	})

	t.Run("not found", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		trucks.On("FindTruckByID", mock.Anything, "missing").Return(nil, errors.New("truck not found"))

		req := httptest.NewRequest("GET", "/api/v1/trucks/missing", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()
		handler.TruckByID(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		trucks := new(MockTruckCollection)
		handler := NewTruckHandler(trucks)

		trucks.On("DeleteTruck", mock.Anything, "abc").Return(nil)

		req := httptest.NewRequest("DELETE", "/api/v1/trucks/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		handler.TruckByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
