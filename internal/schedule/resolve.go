package schedule

import (
	"errors"
	"time"
)

// Resolution failures. ErrNoSchedule means there is nothing to resolve
// against at all; ErrNoSubuh means the day resolved fine until rollover was
// needed and Subuh — the rollover target — is missing. Callers must keep
// them distinct: the first is total data loss, the second partial.
var (
	ErrNoSchedule = errors.New("no prayer schedule loaded")
	ErrNoSubuh    = errors.New("subuh unavailable, cannot roll over to tomorrow")
)

// Next describes the upcoming prayer resolved against some instant.
type Next struct {
	Name     PrayerName
	At       time.Time
	Tomorrow bool
}

// ResolveCurrent returns the prayer considered active at now: the last
// entry in canonical order whose instant is <= now. Unavailable entries are
// skipped without resetting the scan. Before the day's first prayer the
// answer is Isyak — the display keeps showing last night's Isyak as the
// most recently completed obligation, never "none". On an exact tie the
// later entry wins, because the scan keeps overwriting the last one passed.
//
// Pure and idempotent: same (schedule, now) in, same answer out.
func ResolveCurrent(s *DailySchedule, now time.Time) (PrayerName, error) {
	if s == nil || s.empty() {
		return Isyak, ErrNoSchedule
	}
	now = now.Truncate(time.Second)

	current := Isyak
	for _, p := range Names() {
		at, ok := s.InstantOf(p)
		if !ok {
			continue
		}
		if !at.After(now) {
			current = p
		}
	}
	return current, nil
}

// ResolveNext returns the first prayer, scanning the canonical order from
// Imsak, whose instant is strictly after now. Unavailable entries are never
// selected and never compared. When every available entry has passed, the
// answer is tomorrow's Subuh (Tomorrow=true); if Subuh itself is
// unavailable at that point, the day cannot roll over and ErrNoSubuh is
// returned rather than a fabricated time.
//
// Comparison is at whole-second resolution, and equality counts as passed:
// at the exact boundary instant a prayer is current, not next.
//
// Deliberately independent of ResolveCurrent — the two scans answer
// different questions ("most recent obligation" vs "strictly upcoming,
// markers included") and share no cursor.
func ResolveNext(s *DailySchedule, now time.Time) (Next, error) {
	if s == nil || s.empty() {
		return Next{}, ErrNoSchedule
	}
	now = now.Truncate(time.Second)

	for _, p := range Names() {
		at, ok := s.InstantOf(p)
		if !ok {
			continue
		}
		if at.After(now) {
			return Next{Name: p, At: at, Tomorrow: false}, nil
		}
	}

	// Past Isyak: tomorrow's Subuh at today's Subuh time-of-day.
	at, ok := s.InstantOf(Subuh)
	if !ok {
		return Next{}, ErrNoSubuh
	}
	return Next{Name: Subuh, At: at.AddDate(0, 0, 1), Tomorrow: true}, nil
}
