package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Index lists the available endpoints.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"api":     "busradar",
		"version": "1.0",
		"endpoints": map[string]string{
			"/":                 "API documentation (this page)",
			"/api/bus-arrivals": "GET - Get bus arrivals (params: lat, lon)",
			"/api/nearby-stops": "GET - Get nearby stops (params: lat, lon)",
			"/api/health":       "GET - Health check",
		},
		"example": "/api/bus-arrivals?lat=39.257768&lon=-76.698649",
	})
}
