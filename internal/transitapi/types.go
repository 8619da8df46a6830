package transitapi

// Stop is a transit stop as returned by the nearby_stops endpoint. Fields the
// aggregator does not need are still decoded so the raw stops endpoint can
// pass them through.
type Stop struct {
	StopName     string  `json:"stop_name"`
	GlobalStopID string  `json:"global_stop_id"`
	Distance     float64 `json:"distance"`
	StopLat      float64 `json:"stop_lat,omitempty"`
	StopLon      float64 `json:"stop_lon,omitempty"`
	RouteType    int     `json:"route_type,omitempty"`
	ParentStopID string  `json:"parent_station_global_stop_id,omitempty"`
}

// StopsResponse is the nearby_stops payload.
type StopsResponse struct {
	Stops []Stop `json:"stops"`
}

// ScheduleItem is one scheduled or real-time departure event. Both time
// fields are epoch seconds; either may be absent.
type ScheduleItem struct {
	DepartureTime          *int64 `json:"departure_time"`
	ScheduledDepartureTime *int64 `json:"scheduled_departure_time"`
	IsRealTime             bool   `json:"is_real_time"`
}

// Itinerary is one direction of travel for a route at a stop.
type Itinerary struct {
	DirectionHeadsign string         `json:"direction_headsign"`
	ScheduleItems     []ScheduleItem `json:"schedule_items"`
}

// RouteDeparture groups a route's upcoming itineraries at a stop.
type RouteDeparture struct {
	RouteLongName  string      `json:"route_long_name"`
	RouteShortName string      `json:"route_short_name"`
	Itineraries    []Itinerary `json:"itineraries"`
}

// DeparturesResponse is the stop_departures payload.
type DeparturesResponse struct {
	RouteDepartures []RouteDeparture `json:"route_departures"`
}
