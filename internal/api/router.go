package api

import (
	"net/http"
	"time"

	"github.com/busradar/busradar/internal/api/handlers"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(aggregator handlers.ArrivalsProvider, stops handlers.StopsProvider) http.Handler {
	mux := http.NewServeMux()

	rootHandler := handlers.NewRootHandler()
	healthHandler := handlers.NewHealthHandler()
	arrivalsHandler := handlers.NewArrivalsHandler(aggregator)
	stopsHandler := handlers.NewStopsHandler(stops)

	mux.HandleFunc("GET /{$}", rootHandler.Index)
	mux.HandleFunc("GET /api/bus-arrivals", arrivalsHandler.GetBusArrivals)
	mux.HandleFunc("GET /api/nearby-stops", stopsHandler.GetNearbyStops)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	return Chain(mux,
		Recovery,
		Logging,
		CORS,
		Timeout(30*time.Second),
	)
}
