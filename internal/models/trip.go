package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Trip statuses.
const (
	TripToDo       = "to_do"
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
	TripCancelled  = "cancelled"
)

// Trip represents a planned or running haul assigned to a driver and a truck.
type Trip struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TruckID       primitive.ObjectID `json:"truck_id" bson:"truck_id"`
	DriverID      primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	StartLocation string             `json:"start_location" bson:"start_location"`
	EndLocation   string             `json:"end_location" bson:"end_location"`
	PlannedDate   time.Time          `json:"planned_date" bson:"planned_date"`
	DistanceKm    float64            `json:"distance_km" bson:"distance_km"` // in kilometers
	Status        string             `json:"status" bson:"status"`           // "to_do", "in_progress", "completed", "cancelled"
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsValidTripStatus checks if a trip status is one of the known states.
func IsValidTripStatus(status string) bool {
	switch status {
	case TripToDo, TripInProgress, TripCompleted, TripCancelled:
		return true
	default:
		return false
	}
}
