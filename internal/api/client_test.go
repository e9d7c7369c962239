package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// sampleMonth builds a minimal two-day takwim response.
func sampleMonth() Response {
	return Response{
		Status:     "OK!",
		PeriodType: "month",
		Zone:       "JHR02",
		PrayerTime: []Row{
			{
				Hijri: "1447-09-25", Date: "14-Mar-2026", Day: "Saturday",
				Imsak: "05:20:00", Fajr: "05:30:00", Syuruk: "06:45:00",
				Dhuhr: "13:15:00", Asr: "16:30:00", Maghrib: "19:20:00", Isha: "20:35:00",
			},
			{
				Hijri: "1447-09-26", Date: "15-Mar-2026", Day: "Sunday",
				Imsak: "05:19:00", Fajr: "05:29:00", Syuruk: "06:44:00",
				Dhuhr: "13:15:00", Asr: "16:30:00", Maghrib: "19:20:00", Isha: "20:35:00",
			},
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient()
	c.BaseURL = server.URL
	return c
}

func TestFetchMonth_Success(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sampleMonth())
	})

	resp, err := c.FetchMonth(context.Background(), "JHR02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Zone != "JHR02" {
		t.Errorf("Zone = %q, want %q", resp.Zone, "JHR02")
	}
	if len(resp.PrayerTime) != 2 {
		t.Fatalf("got %d rows, want 2", len(resp.PrayerTime))
	}
	if resp.PrayerTime[0].Fajr != "05:30:00" {
		t.Errorf("Fajr = %q, want %q", resp.PrayerTime[0].Fajr, "05:30:00")
	}

	for _, part := range []string{"r=esolatApi%2Ftakwimsolat", "period=month", "zone=JHR02"} {
		if !strings.Contains(gotQuery, part) {
			t.Errorf("query %q missing %q", gotQuery, part)
		}
	}
}

func TestFetchMonth_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusBadGateway)
	})

	if _, err := c.FetchMonth(context.Background(), "JHR02"); err == nil {
		t.Fatal("expected error on HTTP 502")
	}
}

func TestFetchMonth_BadStatusField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Status: "ERROR: invalid zone", PrayerTime: []Row{{}}})
	})

	if _, err := c.FetchMonth(context.Background(), "XXX99"); err == nil {
		t.Fatal("expected error on non-OK API status")
	}
}

func TestFetchMonth_EmptyRows(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Status: "OK!"})
	})

	if _, err := c.FetchMonth(context.Background(), "JHR02"); err == nil {
		t.Fatal("expected error when the month has no rows")
	}
}

func TestFetchMonth_MalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	})

	if _, err := c.FetchMonth(context.Background(), "JHR02"); err == nil {
		t.Fatal("expected error on non-JSON body")
	}
}

func TestFetchMonth_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(sampleMonth())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.FetchMonth(ctx, "JHR02"); err == nil {
		t.Fatal("expected error when context deadline passes")
	}
}
