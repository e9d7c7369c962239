package schedule

import "sync/atomic"

// Store holds the current DailySchedule. It has a single writer (the
// refresh path) and many readers (the per-second tick). Set replaces the
// schedule wholesale; a reader observes either the old or the new schedule,
// never a mix of both. The pointer swap keeps that guarantee even though
// the tick and the refresh run on separate goroutines.
type Store struct {
	cur atomic.Pointer[DailySchedule]
}

// NewStore returns an empty store. Get returns nil until the first Set.
func NewStore() *Store {
	return &Store{}
}

// Set atomically replaces the stored schedule. A nil schedule is ignored;
// a failed refresh must keep the last-known-good day rather than clear it.
func (s *Store) Set(d *DailySchedule) {
	if d == nil {
		return
	}
	s.cur.Store(d)
}

// Get returns the current schedule, or nil when none has been loaded yet.
func (s *Store) Get() *DailySchedule {
	return s.cur.Load()
}
