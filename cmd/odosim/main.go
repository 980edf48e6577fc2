package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// odometerReading mirrors the payload the ingest side expects on
// fleet/<truckID>/odometer.
type odometerReading struct {
	TruckID string  `json:"truck_id"`
	Km      float64 `json:"km"`
}

type truckState struct {
	id string
	km float64
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	brokerURL := getEnv("MQTT_BROKER_URL", "tcp://localhost:1883")
	interval := 5 * time.Second
	if v := os.Getenv("PUBLISH_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Second
		}
	}

	ids := strings.Split(getEnv("TRUCK_IDS", ""), ",")
	var trucks []*truckState
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		trucks = append(trucks, &truckState{id: id, km: rand.Float64() * 100000})
	}
	if len(trucks) == 0 {
		log.Fatal("TRUCK_IDS must list at least one truck ObjectID")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(getEnv("MQTT_CLIENT_ID", "fleet-odosim")).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.WithFields(log.Fields{
		"broker":   brokerURL,
		"trucks":   len(trucks),
		"interval": interval,
	}).Info("Odometer simulator started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		for _, t := range trucks {
			// Trucks travel somewhere between 1 and 40 km per tick.
			t.km += 1 + rand.Float64()*39

			payload, err := json.Marshal(odometerReading{TruckID: t.id, Km: t.km})
			if err != nil {
				log.Errorf("Marshal reading for %s: %v", t.id, err)
				continue
			}

			topic := "fleet/" + t.id + "/odometer"
			if token := client.Publish(topic, 1, false, payload); token.Wait() && token.Error() != nil {
				log.Errorf("Publish to %s: %v", topic, token.Error())
				continue
			}
			log.WithFields(log.Fields{
				"truck_id": t.id,
				"km":       t.km,
			}).Debug("Published odometer reading")
		}
	}
}
