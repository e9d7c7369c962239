package api

import (
	"fmt"
	"time"
)

// Response is the top-level e-solat takwimsolat response for one zone.
type Response struct {
	PrayerTime []Row  `json:"prayerTime"`
	Status     string `json:"status"` // "OK!" on success
	ServerTime string `json:"serverTime"`
	PeriodType string `json:"periodType"`
	Lang       string `json:"lang"`
	Zone       string `json:"zone"`
	Bearing    string `json:"bearing"` // qibla bearing, HTML-encoded
}

// Row is one day's entry in the monthly takwim. Times arrive as
// "HH:MM:SS" strings; normalization happens downstream.
type Row struct {
	Hijri   string `json:"hijri"` // e.g. "1447-09-25"
	Date    string `json:"date"`  // e.g. "14-Mac-2026" or "14-Mar-2026"
	Day     string `json:"day"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Syuruk  string `json:"syuruk"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// rowDateLayout is the DD-MMM-YYYY form used in takwim rows.
const rowDateLayout = "02-Jan-2006"

// malayMonths maps the Malay month abbreviations the API sometimes uses to
// their English equivalents so time.Parse can handle both.
var malayMonths = map[string]string{
	"Mac": "Mar", "Mei": "May", "Ogos": "Aug", "Okt": "Oct", "Dis": "Dec",
}

// parseRowDate parses a takwim row date, accepting both English and Malay
// month abbreviations.
func parseRowDate(raw string, loc *time.Location) (time.Time, error) {
	s := raw
	if len(s) >= 11 {
		mon := s[3 : len(s)-5]
		if en, ok := malayMonths[mon]; ok {
			s = s[:3] + en + s[len(s)-5:]
		}
	}
	d, err := time.ParseInLocation(rowDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid takwim date %q: %w", raw, err)
	}
	return d, nil
}

// TodayRow finds the row covering the given day, or an error when the
// month's data has no entry for it. Callers must treat that as "no data for
// today" — the engine never invents defaults.
func (r *Response) TodayRow(date time.Time) (*Row, error) {
	want := date.Format(rowDateLayout)
	for i := range r.PrayerTime {
		row := &r.PrayerTime[i]
		if row.Date == want {
			return row, nil
		}
		// Tolerate Malay month names in the row.
		if d, err := parseRowDate(row.Date, date.Location()); err == nil &&
			d.Year() == date.Year() && d.Month() == date.Month() && d.Day() == date.Day() {
			return row, nil
		}
	}
	return nil, fmt.Errorf("no prayer times for %s in zone %s", want, r.Zone)
}
