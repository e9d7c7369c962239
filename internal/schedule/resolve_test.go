package schedule

import (
	"errors"
	"testing"
	"time"
)

// sampleDay builds the reference schedule used throughout these tests:
// Imsak 05:20, Subuh 05:30, Syuruk 06:45, Zohor 13:15, Asar 16:30,
// Maghrib 19:20, Isyak 20:35 — all on 2026-03-14 UTC.
func sampleDay(t *testing.T) *DailySchedule {
	t.Helper()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return FromRow(date, "JHR02", "1447-09-25", Row{
		Imsak:   "05:20",
		Subuh:   "05:30",
		Syuruk:  "06:45",
		Zohor:   "13:15",
		Asar:    "16:30",
		Maghrib: "19:20",
		Isyak:   "20:35",
	})
}

func clock(t *testing.T, hour, min, sec int) time.Time {
	t.Helper()
	return time.Date(2026, 3, 14, hour, min, sec, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// ResolveCurrent
// ---------------------------------------------------------------------------

func TestResolveCurrent(t *testing.T) {
	s := sampleDay(t)

	tests := []struct {
		name string
		now  time.Time
		want PrayerName
	}{
		{"before first prayer defaults to isyak", clock(t, 3, 0, 0), Isyak},
		{"just before imsak", clock(t, 5, 19, 59), Isyak},
		{"at imsak exactly", clock(t, 5, 20, 0), Imsak},
		{"between subuh and syuruk", clock(t, 6, 0, 0), Subuh},
		{"mid day", clock(t, 14, 0, 0), Zohor},
		{"after asar", clock(t, 17, 0, 0), Asar},
		{"past isyak", clock(t, 21, 0, 0), Isyak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCurrent(s, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveCurrent at %s = %s, want %s", tt.now.Format("15:04:05"), got, tt.want)
			}
		})
	}
}

func TestResolveCurrent_TieBreakLaterWins(t *testing.T) {
	// Maghrib and Isyak at the identical minute: the later entry in
	// canonical order wins.
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s := FromRow(date, "JHR02", "", Row{
		Subuh: "05:30", Maghrib: "19:20", Isyak: "19:20",
	})

	got, err := ResolveCurrent(s, clock(t, 19, 20, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Isyak {
		t.Errorf("tie at 19:20 = %s, want Isyak", got)
	}
}

func TestResolveCurrent_SkipsUnavailable(t *testing.T) {
	// Zohor missing: at 14:00 the current prayer is still Syuruk's
	// predecessor track, i.e. the last available passed entry.
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s := FromRow(date, "JHR02", "", Row{
		Subuh: "05:30", Syuruk: "06:45", Asar: "16:30", Isyak: "20:35",
	})

	got, err := ResolveCurrent(s, clock(t, 14, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Syuruk {
		t.Errorf("ResolveCurrent with Zohor missing = %s, want Syuruk", got)
	}
}

func TestResolveCurrent_NoSchedule(t *testing.T) {
	if _, err := ResolveCurrent(nil, time.Now()); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("nil schedule error = %v, want ErrNoSchedule", err)
	}

	empty := FromRow(time.Now(), "JHR02", "", Row{})
	if _, err := ResolveCurrent(empty, time.Now()); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("all-unavailable schedule error = %v, want ErrNoSchedule", err)
	}
}

// ---------------------------------------------------------------------------
// ResolveNext
// ---------------------------------------------------------------------------

func TestResolveNext(t *testing.T) {
	s := sampleDay(t)

	tests := []struct {
		name         string
		now          time.Time
		wantName     PrayerName
		wantAt       time.Time
		wantTomorrow bool
	}{
		{
			"before first prayer",
			clock(t, 3, 0, 0),
			Imsak, clock(t, 5, 20, 0), false,
		},
		{
			"mid day",
			clock(t, 14, 0, 0),
			Asar, clock(t, 16, 30, 0), false,
		},
		{
			"one second before maghrib",
			clock(t, 19, 19, 59),
			Maghrib, clock(t, 19, 20, 0), false,
		},
		{
			"rollover past isyak",
			clock(t, 21, 0, 0),
			Subuh, clock(t, 5, 30, 0).AddDate(0, 0, 1), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveNext(s, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %s, want %s", got.Name, tt.wantName)
			}
			if !got.At.Equal(tt.wantAt) {
				t.Errorf("At = %v, want %v", got.At, tt.wantAt)
			}
			if got.Tomorrow != tt.wantTomorrow {
				t.Errorf("Tomorrow = %v, want %v", got.Tomorrow, tt.wantTomorrow)
			}
		})
	}
}

func TestResolveNext_EqualityMeansPassed(t *testing.T) {
	// At the exact boundary instant the prayer is current, not next.
	s := sampleDay(t)
	now := clock(t, 13, 15, 0)

	next, err := ResolveNext(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != Asar {
		t.Errorf("next at exactly Zohor = %s, want Asar", next.Name)
	}

	cur, err := ResolveCurrent(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur != Zohor {
		t.Errorf("current at exactly Zohor = %s, want Zohor", cur)
	}
}

func TestResolveNext_SubSecondTruncation(t *testing.T) {
	// 13:14:59.700 floors to 13:14:59; Zohor at 13:15 is still upcoming.
	s := sampleDay(t)
	now := time.Date(2026, 3, 14, 13, 14, 59, 700_000_000, time.UTC)

	next, err := ResolveNext(s, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != Zohor {
		t.Errorf("next = %s, want Zohor", next.Name)
	}
}

func TestResolveNext_SkipsUnavailable(t *testing.T) {
	// Syuruk missing: at 05:25 (before Subuh) the next is still Subuh; at
	// 06:00 (after Subuh) it skips straight to Zohor without failing.
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s := FromRow(date, "JHR02", "", Row{
		Imsak: "05:20", Subuh: "05:30", Zohor: "13:15",
		Asar: "16:30", Maghrib: "19:20", Isyak: "20:35",
	})

	next, err := ResolveNext(s, clock(t, 5, 25, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != Subuh {
		t.Errorf("next at 05:25 = %s, want Subuh", next.Name)
	}

	next, err = ResolveNext(s, clock(t, 6, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Name != Zohor {
		t.Errorf("next at 06:00 = %s, want Zohor", next.Name)
	}
}

func TestResolveNext_RolloverWithoutSubuh(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s := FromRow(date, "JHR02", "", Row{
		Zohor: "13:15", Asar: "16:30", Maghrib: "19:20", Isyak: "20:35",
	})

	_, err := ResolveNext(s, clock(t, 21, 0, 0))
	if !errors.Is(err, ErrNoSubuh) {
		t.Errorf("rollover without Subuh error = %v, want ErrNoSubuh", err)
	}
}

func TestResolveNext_NoSchedule(t *testing.T) {
	if _, err := ResolveNext(nil, time.Now()); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("nil schedule error = %v, want ErrNoSchedule", err)
	}
}

// ---------------------------------------------------------------------------
// Idempotence
// ---------------------------------------------------------------------------

func TestResolve_Idempotent(t *testing.T) {
	s := sampleDay(t)
	instants := []time.Time{
		clock(t, 3, 0, 0), clock(t, 5, 30, 0), clock(t, 14, 0, 0), clock(t, 23, 59, 59),
	}

	for _, now := range instants {
		c1, err1 := ResolveCurrent(s, now)
		c2, err2 := ResolveCurrent(s, now)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors at %v: %v, %v", now, err1, err2)
		}
		if c1 != c2 {
			t.Errorf("ResolveCurrent not idempotent at %v: %v vs %v", now, c1, c2)
		}

		n1, err1 := ResolveNext(s, now)
		n2, err2 := ResolveNext(s, now)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors at %v: %v, %v", now, err1, err2)
		}
		if n1.Name != n2.Name || !n1.At.Equal(n2.At) || n1.Tomorrow != n2.Tomorrow {
			t.Errorf("ResolveNext not idempotent at %v: %+v vs %+v", now, n1, n2)
		}
	}
}
