package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/busradar/busradar/internal/arrivals"
)

type ArrivalsHandler struct {
	aggregator ArrivalsProvider
}

func NewArrivalsHandler(aggregator ArrivalsProvider) *ArrivalsHandler {
	return &ArrivalsHandler{aggregator: aggregator}
}

// arrivalsData is the data payload of the bus-arrivals endpoint.
type arrivalsData struct {
	Location   location           `json:"location"`
	StopsCount int                `json:"stops_count"`
	Arrivals   []arrivals.Arrival `json:"arrivals"`
}

// GetBusArrivals returns every upcoming departure near a coordinate.
//
// GET /api/bus-arrivals?lat=39.257768&lon=-76.698649
func (h *ArrivalsHandler) GetBusArrivals(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := parseCoordinates(w, r)
	if !ok {
		return
	}

	loc := location{Latitude: lat, Longitude: lon}

	result, err := h.aggregator.GetBusArrivalTimes(r.Context(), lat, lon)
	if err != nil {
		if !errors.Is(err, arrivals.ErrNoStops) {
			slog.Warn("arrival aggregation failed", "error", err)
		}
		env := newEnvelope(false, "No stops found or error retrieving stops", arrivalsData{
			Location: loc,
			Arrivals: []arrivals.Arrival{},
		})
		env.Error = ErrCodeStopsNotFound
		writeJSON(w, http.StatusNotFound, env)
		return
	}

	list := result.Arrivals
	if list == nil {
		list = []arrivals.Arrival{}
	}

	writeJSON(w, http.StatusOK, newEnvelope(true, result.Message, arrivalsData{
		Location:   loc,
		StopsCount: result.StopsCount,
		Arrivals:   list,
	}))
}
