// Package main is the entry point for the busradar server.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/busradar/busradar/internal/api"
	"github.com/busradar/busradar/internal/arrivals"
	"github.com/busradar/busradar/internal/config"
	"github.com/busradar/busradar/internal/transitapi"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	client := transitapi.NewClient(cfg.TransitBaseURL, cfg.TransitAPIKey, cfg.HTTPTimeout)
	aggregator := arrivals.New(client)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(aggregator, client),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("busradar server starting", "port", cfg.Port, "env", cfg.Env)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
