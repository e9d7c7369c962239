package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orig := geoAPIURL
	geoAPIURL = server.URL
	t.Cleanup(func() { geoAPIURL = orig })
}

func TestDetect_Success(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := ipAPIResponse{
			Status:     "success",
			Lat:        1.4927,
			Lon:        103.7414,
			City:       "Johor Bahru",
			RegionName: "Johor",
			Country:    "Malaysia",
			Timezone:   "Asia/Kuala_Lumpur",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	loc, err := Detect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Latitude != 1.4927 || loc.Longitude != 103.7414 {
		t.Errorf("coordinates = (%v, %v), want (1.4927, 103.7414)", loc.Latitude, loc.Longitude)
	}
	if loc.Timezone != "Asia/Kuala_Lumpur" {
		t.Errorf("Timezone = %q, want %q", loc.Timezone, "Asia/Kuala_Lumpur")
	}
	if got, want := loc.Place(), "johor bahru johor malaysia"; got != want {
		t.Errorf("Place() = %q, want %q", got, want)
	}
}

func TestDetect_APIFailureStatus(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "fail", Message: "reserved range"})
	})

	if _, err := Detect(context.Background()); err == nil {
		t.Fatal("expected error on fail status")
	}
}

func TestDetect_HTTPError(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	if _, err := Detect(context.Background()); err == nil {
		t.Fatal("expected error on HTTP 429")
	}
}

func TestDetect_RespectsContextDeadline(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "success"})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Detect(ctx)
	if err == nil {
		t.Fatal("expected error when deadline passes")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Detect took %v, deadline not honored", elapsed)
	}
}

func TestLocation_Place_SkipsEmptyParts(t *testing.T) {
	loc := &Location{City: "", Region: "Sarawak", Country: "Malaysia"}
	if got, want := loc.Place(), "sarawak malaysia"; got != want {
		t.Errorf("Place() = %q, want %q", got, want)
	}
}
