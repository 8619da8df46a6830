// Package arrivals flattens nested Transit API departure data into a single
// list of upcoming arrivals sorted by minutes until departure.
package arrivals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/busradar/busradar/internal/transitapi"
)

// ErrNoStops reports that the nearby stops lookup failed or found nothing.
var ErrNoStops = errors.New("no stops found or error retrieving stops")

// Fallbacks for upstream records missing naming fields.
const (
	unknownRoute     = "Unknown Route"
	unknownDirection = "Unknown Direction"
)

// Arrival is one upcoming departure at a nearby stop.
type Arrival struct {
	StopName           string  `json:"stop_name"`
	GlobalStopID       string  `json:"global_stop_id"`
	RouteName          string  `json:"route_name"`
	RouteShortName     string  `json:"route_short_name"`
	Direction          string  `json:"direction"`
	ArrivalInMinutes   int64   `json:"arrival_in_minutes"`
	IsRealTime         bool    `json:"is_real_time"`
	DistanceMeters     float64 `json:"distance_meters"`
	DepartureTimestamp int64   `json:"departure_timestamp"`
	ScheduledTime      string  `json:"scheduled_time"`
}

// Result is the outcome of one aggregation run.
type Result struct {
	StopsCount int       `json:"stops_count"`
	Arrivals   []Arrival `json:"arrivals"`
	Message    string    `json:"-"`
}

// TransitClient is the upstream surface the aggregator depends on.
type TransitClient interface {
	NearbyStops(ctx context.Context, lat, lon float64) (*transitapi.StopsResponse, error)
	StopDepartures(ctx context.Context, globalStopID string) (*transitapi.DeparturesResponse, error)
}

// Aggregator fetches nearby stops and their departures and flattens them.
type Aggregator struct {
	client TransitClient
	now    func() time.Time
}

// New creates an aggregator backed by the given client.
func New(client TransitClient) *Aggregator {
	return &Aggregator{
		client: client,
		now:    time.Now,
	}
}

// GetBusArrivalTimes returns every upcoming departure from the stops near a
// coordinate, sorted ascending by minutes until arrival. A failed or empty
// nearby-stops lookup yields ErrNoStops; a failed per-stop departures lookup
// only drops that stop's arrivals.
func (a *Aggregator) GetBusArrivalTimes(ctx context.Context, lat, lon float64) (*Result, error) {
	stopsData, err := a.client.NearbyStops(ctx, lat, lon)
	if err != nil || len(stopsData.Stops) == 0 {
		return nil, ErrNoStops
	}

	var all []Arrival
	for _, stop := range stopsData.Stops {
		departures, err := a.client.StopDepartures(ctx, stop.GlobalStopID)
		if err != nil || departures.RouteDepartures == nil {
			slog.Debug("skipping stop", "global_stop_id", stop.GlobalStopID, "error", err)
			continue
		}
		all = append(all, a.flatten(stop, departures.RouteDepartures)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ArrivalInMinutes < all[j].ArrivalInMinutes
	})

	return &Result{
		StopsCount: len(stopsData.Stops),
		Arrivals:   all,
		Message:    fmt.Sprintf("Found %d upcoming departures from %d nearby stops", len(all), len(stopsData.Stops)),
	}, nil
}

// flatten walks one stop's route -> itinerary -> schedule item tree and
// emits an Arrival per schedule item carrying a departure time.
func (a *Aggregator) flatten(stop transitapi.Stop, routes []transitapi.RouteDeparture) []Arrival {
	var out []Arrival
	for _, route := range routes {
		routeName := route.RouteLongName
		if routeName == "" {
			routeName = unknownRoute
		}

		for _, itinerary := range route.Itineraries {
			direction := itinerary.DirectionHeadsign
			if direction == "" {
				direction = unknownDirection
			}

			for _, item := range itinerary.ScheduleItems {
				departure := item.DepartureTime
				if departure == nil {
					departure = item.ScheduledDepartureTime
				}
				if departure == nil {
					continue
				}

				out = append(out, Arrival{
					StopName:           stop.StopName,
					GlobalStopID:       stop.GlobalStopID,
					RouteName:          routeName,
					RouteShortName:     route.RouteShortName,
					Direction:          direction,
					ArrivalInMinutes:   a.minutesFromNow(*departure),
					IsRealTime:         item.IsRealTime,
					DistanceMeters:     stop.Distance,
					DepartureTimestamp: *departure,
					ScheduledTime:      time.Unix(*departure, 0).Format("03:04 PM"),
				})
			}
		}
	}
	return out
}

// minutesFromNow converts an epoch-seconds timestamp to whole minutes from
// now, clamped at zero for departures already in the past.
func (a *Aggregator) minutesFromNow(timestamp int64) int64 {
	seconds := timestamp - a.now().Unix()
	if seconds < 0 {
		return 0
	}
	return seconds / 60
}
