package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Truck statuses.
const (
	TruckAvailable   = "available"
	TruckOnTrip      = "on_trip"
	TruckMaintenance = "maintenance"
)

// Truck represents a fleet truck.
type Truck struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationNumber string             `bson:"registration_number" json:"registration_number"`
	Brand              string             `bson:"brand" json:"brand"`
	Model              string             `bson:"model" json:"model"`
	CurrentKm          float64            `bson:"current_km" json:"current_km"` // odometer, in kilometers
	Status             string             `bson:"status" json:"status"`         // "available", "on_trip", "maintenance"
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// TruckSummary is the truck projection embedded in alert payloads.
type TruckSummary struct {
	ID                 primitive.ObjectID `json:"_id"`
	RegistrationNumber string             `json:"registrationNumber"`
	Brand              string             `json:"brand"`
	Model              string             `json:"model"`
	CurrentKm          float64            `json:"currentKm"`
	Status             string             `json:"status"`
}

// Summary returns the projection of a truck carried inside an alert.
func (t Truck) Summary() TruckSummary {
	return TruckSummary{
		ID:                 t.ID,
		RegistrationNumber: t.RegistrationNumber,
		Brand:              t.Brand,
		Model:              t.Model,
		CurrentKm:          t.CurrentKm,
		Status:             t.Status,
	}
}
