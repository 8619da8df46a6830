package handlers

import (
	"context"

	"github.com/busradar/busradar/internal/arrivals"
	"github.com/busradar/busradar/internal/transitapi"
)

// ArrivalsProvider abstracts the arrival aggregator for testability.
type ArrivalsProvider interface {
	GetBusArrivalTimes(ctx context.Context, lat, lon float64) (*arrivals.Result, error)
}

// StopsProvider abstracts the raw nearby-stops lookup.
type StopsProvider interface {
	NearbyStops(ctx context.Context, lat, lon float64) (*transitapi.StopsResponse, error)
}
