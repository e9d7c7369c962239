// Package schedule implements the prayer-schedule resolution core: the
// canonical daily prayer sequence, time-of-day normalization, the day's
// schedule, and the pure resolution of "current" and "next" prayer against
// a wall-clock instant.
package schedule

import (
	"strings"
	"time"
)

// PrayerName identifies one entry in the canonical daily sequence.
type PrayerName int

// The canonical daily sequence, in chronological order. The order matters:
// it drives both display order and the rollover boundary (after Isyak the
// next prayer is tomorrow's Subuh). Imsak and Syuruk are markers, not
// prayer obligations, which is why rollover targets Subuh rather than Imsak.
const (
	Imsak PrayerName = iota
	Subuh
	Syuruk
	Zohor
	Asar
	Maghrib
	Isyak

	numPrayers
)

var prayerNames = [numPrayers]string{
	Imsak:   "Imsak",
	Subuh:   "Subuh",
	Syuruk:  "Syuruk",
	Zohor:   "Zohor",
	Asar:    "Asar",
	Maghrib: "Maghrib",
	Isyak:   "Isyak",
}

// String returns the Malay display name, e.g. "Subuh".
func (p PrayerName) String() string {
	if p < 0 || p >= numPrayers {
		return "Unknown"
	}
	return prayerNames[p]
}

// Names returns every prayer/marker in canonical daily order.
func Names() []PrayerName {
	return []PrayerName{Imsak, Subuh, Syuruk, Zohor, Asar, Maghrib, Isyak}
}

// TimeOfDay is a wall-clock time within a day. The zero value means
// "unavailable" — the provider gave no usable time for that entry.
// Construct via ParseTimeOfDay or At.
type TimeOfDay struct {
	hour   int
	minute int
	set    bool
}

// At builds a valid TimeOfDay. Out-of-range values yield unavailable.
func At(hour, minute int) TimeOfDay {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}
	}
	return TimeOfDay{hour: hour, minute: minute, set: true}
}

// Unavailable reports whether no usable time was provided.
func (t TimeOfDay) Unavailable() bool { return !t.set }

// Clock returns the (hour, minute) pair. Both are 0 when unavailable.
func (t TimeOfDay) Clock() (hour, minute int) { return t.hour, t.minute }

// String renders "HH:MM", or "--:--" when unavailable.
func (t TimeOfDay) String() string {
	if !t.set {
		return "--:--"
	}
	return twoDigits(t.hour) + ":" + twoDigits(t.minute)
}

// On combines the time-of-day with a calendar date, in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, 0, 0, date.Location())
}

func twoDigits(n int) string {
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}

// ParseTimeOfDay normalizes a provider time string. Accepted shapes:
//
//	"HH:MM"       colon-separated 24-hour
//	"HH:MM:SS"    seconds are discarded
//	"HHMM"        unseparated 4-digit form; shorter digit runs are
//	              left-padded to 4, so "530" means 05:30
//
// Anything else — empty input included — yields the unavailable sentinel.
// Never returns an error and never panics; a malformed field must not take
// down resolution.
func ParseTimeOfDay(raw string) TimeOfDay {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TimeOfDay{}
	}
	// Some providers append a suffix like " (+08)"; keep the leading token.
	if i := strings.IndexByte(s, ' '); i != -1 {
		s = s[:i]
	}

	var hh, mm string
	if strings.ContainsRune(s, ':') {
		parts := strings.Split(s, ":")
		if len(parts) < 2 {
			return TimeOfDay{}
		}
		hh, mm = parts[0], parts[1]
	} else {
		if !allDigits(s) || len(s) > 4 {
			return TimeOfDay{}
		}
		for len(s) < 4 {
			s = "0" + s
		}
		hh, mm = s[:2], s[2:4]
	}

	h, ok1 := parseTwo(hh)
	m, ok2 := parseTwo(mm)
	if !ok1 || !ok2 {
		return TimeOfDay{}
	}
	return At(h, m)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// parseTwo parses a 1-2 digit numeric field.
func parseTwo(s string) (int, bool) {
	if !allDigits(s) || len(s) > 2 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Row is one day's raw provider time strings, already keyed by canonical
// name. Mapping provider field names (fajr, dhuhr, isha, ...) onto these is
// the caller's adapter concern.
type Row struct {
	Imsak   string
	Subuh   string
	Syuruk  string
	Zohor   string
	Asar    string
	Maghrib string
	Isyak   string
}

// DailySchedule holds one resolved day of prayer times for a zone. It is
// immutable once built; refreshes replace the whole value.
type DailySchedule struct {
	Date  time.Time // midnight at the start of the covered day, local
	Zone  string
	Hijri string // provider's hijri date string, passed through verbatim

	times [numPrayers]TimeOfDay
}

// FromRow normalizes a raw provider row into a DailySchedule for the given
// day. Malformed or missing fields become unavailable entries; they never
// fail the whole day.
func FromRow(date time.Time, zone, hijri string, row Row) *DailySchedule {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	s := &DailySchedule{Date: day, Zone: zone, Hijri: hijri}
	s.times[Imsak] = ParseTimeOfDay(row.Imsak)
	s.times[Subuh] = ParseTimeOfDay(row.Subuh)
	s.times[Syuruk] = ParseTimeOfDay(row.Syuruk)
	s.times[Zohor] = ParseTimeOfDay(row.Zohor)
	s.times[Asar] = ParseTimeOfDay(row.Asar)
	s.times[Maghrib] = ParseTimeOfDay(row.Maghrib)
	s.times[Isyak] = ParseTimeOfDay(row.Isyak)
	return s
}

// Time returns the stored time-of-day for a prayer.
func (s *DailySchedule) Time(p PrayerName) TimeOfDay {
	if p < 0 || p >= numPrayers {
		return TimeOfDay{}
	}
	return s.times[p]
}

// InstantOf returns the absolute instant of a prayer on the schedule's day.
// ok is false when the entry is unavailable.
func (s *DailySchedule) InstantOf(p PrayerName) (at time.Time, ok bool) {
	t := s.Time(p)
	if t.Unavailable() {
		return time.Time{}, false
	}
	return t.On(s.Date), true
}

// empty reports whether every entry is unavailable.
func (s *DailySchedule) empty() bool {
	for _, t := range s.times {
		if !t.Unavailable() {
			return false
		}
	}
	return true
}
