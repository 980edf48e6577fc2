package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleet-backend/internal/auth"
	"github.com/fleetdesk/fleet-backend/internal/config"
	"github.com/fleetdesk/fleet-backend/internal/db"
	"github.com/fleetdesk/fleet-backend/internal/handlers"
	"github.com/fleetdesk/fleet-backend/internal/ingest"
	"github.com/fleetdesk/fleet-backend/internal/middleware"
	"github.com/fleetdesk/fleet-backend/internal/models"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Load()

	client, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Warnf("Mongo disconnect: %v", err)
		}
	}()
	log.Info("Connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	trucks := &db.MongoTruckCollection{Collection: database.Collection("trucks")}
	trips := &db.MongoTripCollection{Collection: database.Collection("trips")}
	rules := &db.MongoRuleCollection{Collection: database.Collection("maintenance_rules")}
	logs := &db.MongoMaintenanceLogCollection{Collection: database.Collection("maintenance_logs")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to initialise auth service: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	truckHandler := handlers.NewTruckHandler(trucks)
	tripHandler := handlers.NewTripHandler(trips)
	maintHandler := handlers.NewMaintenanceHandler(rules, logs)
	alertHandler := handlers.NewAlertHandler(trucks, trips, rules, logs)

	authMW := middleware.NewAuthMiddleware(authService)
	admin := authMW.RequireRole(models.RoleAdmin)
	driver := authMW.RequireRole(models.RoleDriver)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/auth/profile", authHandler.GetProfile)

	mux.HandleFunc("GET /api/v1/trucks", truckHandler.Trucks)
	mux.Handle("POST /api/v1/trucks", admin(http.HandlerFunc(truckHandler.Trucks)))
	mux.HandleFunc("GET /api/v1/trucks/{id}", truckHandler.TruckByID)
	mux.Handle("PUT /api/v1/trucks/{id}", admin(http.HandlerFunc(truckHandler.TruckByID)))
	mux.Handle("DELETE /api/v1/trucks/{id}", admin(http.HandlerFunc(truckHandler.TruckByID)))

	mux.HandleFunc("GET /api/v1/trips", tripHandler.Trips)
	mux.Handle("POST /api/v1/trips", admin(http.HandlerFunc(tripHandler.Trips)))
	mux.HandleFunc("GET /api/v1/trips/{id}", tripHandler.TripByID)
	mux.Handle("DELETE /api/v1/trips/{id}", admin(http.HandlerFunc(tripHandler.TripByID)))
	mux.Handle("PUT /api/v1/trips/{id}/status",
		authMW.RequirePermission("update_trip_status")(http.HandlerFunc(tripHandler.TripStatus)))

	mux.HandleFunc("GET /api/v1/maintenance-rules", maintHandler.Rules)
	mux.Handle("POST /api/v1/maintenance-rules", admin(http.HandlerFunc(maintHandler.Rules)))
	mux.Handle("PUT /api/v1/maintenance-rules/{id}", admin(http.HandlerFunc(maintHandler.RuleByID)))
	mux.Handle("DELETE /api/v1/maintenance-rules/{id}", admin(http.HandlerFunc(maintHandler.RuleByID)))

	mux.HandleFunc("GET /api/v1/maintenance-logs", maintHandler.Logs)
	mux.Handle("POST /api/v1/maintenance-logs",
		authMW.RequirePermission("create_maintenance_log")(http.HandlerFunc(maintHandler.Logs)))

	mux.Handle("GET /api/v1/admin/maintenance-alerts", admin(http.HandlerFunc(alertHandler.AdminMaintenanceAlerts)))
	mux.Handle("GET /api/v1/driver/my-truck-alerts", driver(http.HandlerFunc(alertHandler.DriverTruckAlerts)))

	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := middleware.RequestLogger(
		rateLimiter.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindowS)(
			authMW.Authenticate(mux)))

	if cfg.MQTTBrokerURL != "" {
		odometer := ingest.NewOdometerIngest(cfg.MQTTBrokerURL, cfg.MQTTClientID, cfg.MQTTTopic, trucks)
		if err := odometer.Start(); err != nil {
			log.Fatalf("Failed to start odometer ingest: %v", err)
		}
		defer odometer.Stop()
		log.WithField("topic", cfg.MQTTTopic).Info("Odometer ingest subscribed")
	}

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown: %v", err)
	}
}
