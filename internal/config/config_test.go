package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("MONGO_DB")
	os.Unsetenv("RATE_LIMIT_REQUESTS")
	os.Unsetenv("MQTT_BROKER_URL")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "fleet", cfg.MongoDB)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Empty(t, cfg.MQTTBrokerURL)
	assert.Equal(t, "fleet/+/odometer", cfg.MQTTTopic)
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("RATE_LIMIT_REQUESTS", "5")
	os.Setenv("MQTT_BROKER_URL", "tcp://broker:1883")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("RATE_LIMIT_REQUESTS")
		os.Unsetenv("MQTT_BROKER_URL")
	}()

	cfg := Load()

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTTBrokerURL)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	os.Setenv("RATE_LIMIT_WINDOW_SECONDS", "not-a-number")
	defer os.Unsetenv("RATE_LIMIT_WINDOW_SECONDS")

	cfg := Load()
	assert.Equal(t, 60, cfg.RateLimitWindowS)
}
