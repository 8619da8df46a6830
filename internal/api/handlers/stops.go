package handlers

import (
	"fmt"
	"net/http"
)

type StopsHandler struct {
	stops StopsProvider
}

func NewStopsHandler(stops StopsProvider) *StopsHandler {
	return &StopsHandler{stops: stops}
}

// GetNearbyStops returns the raw upstream stops for a coordinate, without
// departure times.
//
// GET /api/nearby-stops?lat=39.257768&lon=-76.698649
func (h *StopsHandler) GetNearbyStops(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoordinates(w, r)
	if !ok {
		return
	}

	stopsData, err := h.stops.NearbyStops(r.Context(), lat, lon)
	if err != nil || len(stopsData.Stops) == 0 {
		env := newEnvelope(false, "No stops found or error retrieving stops", nil)
		env.Error = ErrCodeStopsNotFound
		writeJSON(w, http.StatusNotFound, env)
		return
	}

	message := fmt.Sprintf("Found %d nearby stops", len(stopsData.Stops))
	writeJSON(w, http.StatusOK, newEnvelope(true, message, stopsData))
}
