package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Maintenance types.
const (
	MaintenanceOil     = "oil"
	MaintenanceTires   = "tires"
	MaintenanceEngine  = "engine"
	MaintenanceGeneral = "general"
)

// IsValidMaintenanceType checks if a maintenance type is one of the known categories.
func IsValidMaintenanceType(t string) bool {
	switch t {
	case MaintenanceOil, MaintenanceTires, MaintenanceEngine, MaintenanceGeneral:
		return true
	default:
		return false
	}
}

// MaintenanceRule defines how often a maintenance type must be performed,
// by distance, by elapsed time, or both. A zero interval means "not set";
// at least one must be set (enforced at creation).
type MaintenanceRule struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type        string             `json:"type" bson:"type"` // "oil", "tires", "engine", "general"
	EveryKm     float64            `json:"every_km" bson:"every_km"`         // interval in kilometers, 0 = not set
	EveryMonths int                `json:"every_months" bson:"every_months"` // interval in months, 0 = not set
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// MaintenanceLog records a completed maintenance service on a truck.
type MaintenanceLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TruckID     primitive.ObjectID `json:"truck_id" bson:"truck_id"`
	Type        string             `json:"type" bson:"type"`
	Km          float64            `json:"km" bson:"km"` // odometer at service time, 0 = not tracked
	Date        time.Time          `json:"date" bson:"date"`
	TripID      primitive.ObjectID `json:"trip_id,omitempty" bson:"trip_id,omitempty"`
	Description string             `json:"description" bson:"description"`
	Cost        float64            `json:"cost" bson:"cost"` // in USD
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
