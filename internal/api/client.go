// Package api implements a client for the JAKIM e-solat prayer timetable
// API (https://www.e-solat.gov.my).
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.e-solat.gov.my/index.php"

// Client communicates with the e-solat takwim API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API endpoint. Defaults to the e-solat service.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// FetchMonth fetches the current month's takwim for the given JAKIM zone
// code, e.g. "JHR02". The response carries one Row per day of the month.
func (c *Client) FetchMonth(ctx context.Context, zone string) (*Response, error) {
	params := url.Values{}
	params.Set("r", "esolatApi/takwimsolat")
	params.Set("period", "month")
	params.Set("zone", zone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building takwim request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("takwim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("takwim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode takwim response: %w", err)
	}

	// The API reports "OK!" in-band; anything else is a refusal.
	if !strings.HasPrefix(strings.ToUpper(apiResp.Status), "OK") {
		return nil, fmt.Errorf("takwim API error: status=%q zone=%q", apiResp.Status, zone)
	}
	if len(apiResp.PrayerTime) == 0 {
		return nil, fmt.Errorf("takwim API returned no rows for zone %q", zone)
	}

	return &apiResp, nil
}
