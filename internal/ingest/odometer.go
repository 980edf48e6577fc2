package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/fleetdesk/fleet-backend/internal/db"
	log "github.com/sirupsen/logrus"
)

// OdometerReading is the payload trucks publish on fleet/<truckID>/odometer.
type OdometerReading struct {
	TruckID string  `json:"truck_id"`
	Km      float64 `json:"km"`
}

// OdometerIngest subscribes to odometer readings over MQTT and keeps
// trucks.current_km up to date. Readings that would move an odometer
// backwards are dropped.
type OdometerIngest struct {
	trucks db.TruckCollection
	client mqtt.Client
	topic  string
}

// NewOdometerIngest creates an ingest bound to the given broker and topic.
func NewOdometerIngest(brokerURL, clientID, topic string, trucks db.TruckCollection) *OdometerIngest {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)
	return &OdometerIngest{
		trucks: trucks,
		client: mqtt.NewClient(opts),
		topic:  topic,
	}
}

// Start connects to the broker and subscribes to the odometer topic.
func (i *OdometerIngest) Start() error {
	if token := i.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	if token := i.client.Subscribe(i.topic, 1, i.onMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", i.topic, token.Error())
	}
	log.WithField("topic", i.topic).Info("odometer ingest subscribed")
	return nil
}

// Stop disconnects from the broker.
func (i *OdometerIngest) Stop() {
	i.client.Disconnect(250)
}

func (i *OdometerIngest) onMessage(_ mqtt.Client, msg mqtt.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	i.handlePayload(ctx, msg.Payload())
}

func (i *OdometerIngest) handlePayload(ctx context.Context, payload []byte) {
	var reading OdometerReading
	if err := json.Unmarshal(payload, &reading); err != nil {
		log.WithError(err).Warn("invalid odometer payload")
		return
	}
	if reading.TruckID == "" || reading.Km < 0 {
		log.WithField("truck_id", reading.TruckID).Warn("odometer reading missing truck or negative km")
		return
	}

	truck, err := i.trucks.FindTruckByID(ctx, reading.TruckID)
	if err != nil {
		log.WithError(err).WithField("truck_id", reading.TruckID).Warn("odometer reading for unknown truck")
		return
	}

	// Odometers only go forward.
	if reading.Km < truck.CurrentKm {
		log.WithFields(log.Fields{
			"truck_id": reading.TruckID,
			"current":  truck.CurrentKm,
			"reading":  reading.Km,
		}).Warn("dropping regressive odometer reading")
		return
	}

	if err := i.trucks.UpdateTruckKm(ctx, reading.TruckID, reading.Km); err != nil {
		log.WithError(err).WithField("truck_id", reading.TruckID).Error("failed to update truck km")
	}
}
