// Package handlers contains HTTP request handlers
package handlers

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"
)

// Error codes surfaced to API clients.
const (
	ErrCodeStopsNotFound = "STOPS_NOT_FOUND"
	ErrCodeMissingParams = "MISSING_PARAMETERS"
	ErrCodeInvalidParams = "INVALID_PARAMETERS"
)

// envelope is the uniform response body for the API endpoints.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// location echoes the requested coordinate back in responses.
type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func newEnvelope(success bool, message string, data any) envelope {
	return envelope{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeClientError(w http.ResponseWriter, message, code string) {
	env := newEnvelope(false, message, nil)
	env.Error = code
	writeJSON(w, http.StatusBadRequest, env)
}

// parseCoordinates extracts the required lat/lon query parameters. On
// failure it writes the 400 response itself and reports ok=false.
func parseCoordinates(w http.ResponseWriter, r *http.Request) (lat, lon float64, ok bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	if latStr == "" || lonStr == "" {
		writeClientError(w, "Missing required parameters: lat and lon", ErrCodeMissingParams)
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil || !isFinite(lat) || !isFinite(lon) {
		writeClientError(w, "Invalid latitude or longitude values", ErrCodeInvalidParams)
		return 0, 0, false
	}

	return lat, lon, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
