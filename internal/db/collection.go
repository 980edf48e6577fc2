package db

import (
	"context"

	"github.com/fleetdesk/fleet-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TruckCollection defines the interface for truck data operations.
type TruckCollection interface {
	InsertTruck(ctx context.Context, truck models.Truck) error
	ListTrucks(ctx context.Context) ([]models.Truck, error)
	FindTruckByID(ctx context.Context, id string) (*models.Truck, error)
	FindTrucksByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Truck, error)
	UpdateTruck(ctx context.Context, id string, truck models.Truck) error
	UpdateTruckKm(ctx context.Context, id string, km float64) error
	DeleteTruck(ctx context.Context, id string) error
}

// RuleCollection defines the interface for maintenance rule operations.
type RuleCollection interface {
	InsertRule(ctx context.Context, rule models.MaintenanceRule) error
	ListRules(ctx context.Context) ([]models.MaintenanceRule, error)
	UpdateRule(ctx context.Context, id string, rule models.MaintenanceRule) error
	DeleteRule(ctx context.Context, id string) error
}

// MaintenanceLogCollection defines the interface for maintenance log operations.
type MaintenanceLogCollection interface {
	InsertLog(ctx context.Context, log models.MaintenanceLog) error
	FindLogsByTruck(ctx context.Context, truckID string) ([]models.MaintenanceLog, error)
	// LatestForTruck returns the most recent log by date for a (truck, type)
	// pair, or nil when the truck has no logged service of that type.
	LatestForTruck(ctx context.Context, truckID primitive.ObjectID, maintenanceType string) (*models.MaintenanceLog, error)
}

// TripCollection defines the interface for trip data operations.
type TripCollection interface {
	InsertTrip(ctx context.Context, trip models.Trip) error
	ListTrips(ctx context.Context) ([]models.Trip, error)
	FindTripByID(ctx context.Context, id string) (*models.Trip, error)
	// FindActiveTripsByDriver returns the driver's trips with status "to_do"
	// or "in_progress", ordered by planned date ascending.
	FindActiveTripsByDriver(ctx context.Context, driverID primitive.ObjectID) ([]models.Trip, error)
	UpdateTripStatus(ctx context.Context, id string, status string) error
	DeleteTrip(ctx context.Context, id string) error
}
