// Package transitapi is a thin client for the Transit public API.
package transitapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client calls the Transit public API, authenticated with a static key sent
// in the apiKey header.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given base URL and key. Every request
// is bounded by timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NearbyStops returns the stops close to a coordinate, nearest first as the
// upstream orders them.
func (c *Client) NearbyStops(ctx context.Context, lat, lon float64) (*StopsResponse, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var result StopsResponse
	if err := c.get(ctx, "/nearby_stops", params, &result); err != nil {
		return nil, fmt.Errorf("fetching nearby stops: %w", err)
	}
	return &result, nil
}

// StopDepartures returns the upcoming route departures for one stop.
func (c *Client) StopDepartures(ctx context.Context, globalStopID string) (*DeparturesResponse, error) {
	params := url.Values{}
	params.Set("global_stop_id", globalStopID)

	var result DeparturesResponse
	if err := c.get(ctx, "/stop_departures", params, &result); err != nil {
		return nil, fmt.Errorf("fetching departures for %s: %w", globalStopID, err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("apiKey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transit API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
