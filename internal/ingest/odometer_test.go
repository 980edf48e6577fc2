package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetdesk/fleet-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubTrucks records odometer updates against a single known truck.
type stubTrucks struct {
	truck   *models.Truck
	findErr error
	updated []float64
}

func (s *stubTrucks) InsertTruck(ctx context.Context, truck models.Truck) error { return nil }
func (s *stubTrucks) ListTrucks(ctx context.Context) ([]models.Truck, error)    { return nil, nil }
func (s *stubTrucks) FindTrucksByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Truck, error) {
	return nil, nil
}
func (s *stubTrucks) UpdateTruck(ctx context.Context, id string, truck models.Truck) error {
	return nil
}
func (s *stubTrucks) DeleteTruck(ctx context.Context, id string) error { return nil }

func (s *stubTrucks) FindTruckByID(ctx context.Context, id string) (*models.Truck, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.truck, nil
}

func (s *stubTrucks) UpdateTruckKm(ctx context.Context, id string, km float64) error {
	s.updated = append(s.updated, km)
	return nil
}

func TestHandlePayload_UpdatesOdometer(t *testing.T) {
	trucks := &stubTrucks{truck: &models.Truck{ID: primitive.NewObjectID(), CurrentKm: 120000}}
	ingest := &OdometerIngest{trucks: trucks}

	ingest.handlePayload(context.Background(), []byte(`{"truck_id":"64b2f8f1a2c4d5e6f7a8b9c0","km":120450.5}`))

	assert.Equal(t, []float64{120450.5}, trucks.updated)
}

func TestHandlePayload_DropsRegressiveReading(t *testing.T) {
	trucks := &stubTrucks{truck: &models.Truck{ID: primitive.NewObjectID(), CurrentKm: 120000}}
	ingest := &OdometerIngest{trucks: trucks}

	ingest.handlePayload(context.Background(), []byte(`{"truck_id":"64b2f8f1a2c4d5e6f7a8b9c0","km":90000}`))

	assert.Empty(t, trucks.updated, "a backwards odometer reading must not be written")
}

func TestHandlePayload_IgnoresGarbage(t *testing.T) {
	trucks := &stubTrucks{truck: &models.Truck{CurrentKm: 0}}
	ingest := &OdometerIngest{trucks: trucks}

	ingest.handlePayload(context.Background(), []byte(`not json`))
	ingest.handlePayload(context.Background(), []byte(`{"km":100}`))
	ingest.handlePayload(context.Background(), []byte(`{"truck_id":"abc","km":-1}`))

	assert.Empty(t, trucks.updated)
}

func TestHandlePayload_UnknownTruck(t *testing.T) {
	trucks := &stubTrucks{findErr: errors.New("truck not found")}
	ingest := &OdometerIngest{trucks: trucks}

	ingest.handlePayload(context.Background(), []byte(`{"truck_id":"64b2f8f1a2c4d5e6f7a8b9c0","km":100}`))

	assert.Empty(t, trucks.updated)
}
