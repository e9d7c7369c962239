// Package geo resolves the user's approximate location from their public
// IP address. It is the fallback path when no zone is configured; failure
// here must never block the clock, so callers degrade to a default zone.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Location holds the coordinates and place names detected from the IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// Place returns the lowercased free-text place description used for zone
// keyword matching, e.g. "johor bahru johor malaysia".
func (l *Location) Place() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	Timezone   string  `json:"timezone"`
}

// geoAPIURL is the geolocation API endpoint. It is a variable (not a
// constant) so that tests can override it with an httptest server URL.
var geoAPIURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,regionName,country,timezone"

// detectTimeout bounds the whole detection call. Location lookup runs once
// at startup; a stall here would otherwise leave the UI stuck on
// "detecting location".
const detectTimeout = 5 * time.Second

// Detect determines the user's location from their public IP using
// ip-api.com, a free service requiring no API key. The call is bounded by
// detectTimeout on top of whatever deadline ctx already carries.
func Detect(ctx context.Context) (*Location, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geoAPIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building geolocation request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Region:    result.RegionName,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}, nil
}
