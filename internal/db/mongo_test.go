package db

import (
	"context"
	"os"
	"testing"

	"github.com/fleetdesk/fleet-backend/internal/models"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestInsertTruck_NilCollection(t *testing.T) {
	coll := &MongoTruckCollection{Collection: nil}
	err := coll.InsertTruck(context.Background(), models.Truck{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestListTrucks_NilCollection(t *testing.T) {
	coll := &MongoTruckCollection{Collection: nil}
	trucks, err := coll.ListTrucks(context.Background())
	if err == nil {
		t.Error("expected error when collection is nil")
	}
	if trucks != nil {
		t.Error("expected nil result on error")
	}
}

func TestFindTruckByID_InvalidID(t *testing.T) {
	coll := &MongoTruckCollection{Collection: nil}
	_, err := coll.FindTruckByID(context.Background(), "not-a-hex-id")
	if err == nil {
		t.Error("expected error for invalid object ID")
	}
}

func TestFindTrucksByIDs_EmptySet(t *testing.T) {
	coll := &MongoTruckCollection{Collection: nil}
	trucks, err := coll.FindTrucksByIDs(context.Background(), nil)
	if err != nil {
		t.Errorf("expected no error for empty ID set, got %v", err)
	}
	if trucks != nil {
		t.Errorf("expected no trucks for empty ID set, got %v", trucks)
	}
}

func TestUpdateTruckKm_InvalidID(t *testing.T) {
	coll := &MongoTruckCollection{Collection: nil}
	err := coll.UpdateTruckKm(context.Background(), "bad", 1000)
	if err == nil {
		t.Error("expected error for invalid object ID")
	}
}

func TestFindLogsByTruck_InvalidID(t *testing.T) {
	coll := &MongoMaintenanceLogCollection{Collection: nil}
	_, err := coll.FindLogsByTruck(context.Background(), "bad")
	if err == nil {
		t.Error("expected error for invalid object ID")
	}
}
