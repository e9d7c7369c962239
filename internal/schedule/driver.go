package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Frame is one tick's worth of derived display state. It is recomputed
// every second and owned by the tick that produced it; nothing retains it.
type Frame struct {
	Now      time.Time
	Schedule *DailySchedule // nil until the first successful refresh

	// Valid only when Resolved is true.
	Current   PrayerName
	Next      Next
	Countdown Countdown

	// Resolved is false when resolution failed; sinks must render sentinel
	// values (dashes) instead of stale or fabricated ones. Err carries the
	// failure (ErrNoSchedule or ErrNoSubuh).
	Resolved bool
	Err      error
}

// Sink receives one Frame per tick. Update must not block; it runs on the
// tick goroutine.
type Sink interface {
	Update(Frame)
}

// RefreshFunc fetches a fresh DailySchedule for the current day. It is
// invoked once at startup and then on the refresh interval.
type RefreshFunc func(ctx context.Context) (*DailySchedule, error)

// Driver owns the two recurring timers of the widget: the 1-second tick
// that re-resolves current/next prayer and emits a Frame, and the periodic
// schedule refresh that replaces the store's schedule wholesale. The two
// loops never coordinate beyond the store's atomic replacement, and the
// tick starts immediately — the clock must never look frozen while the
// first fetch is still in flight.
type Driver struct {
	store   *Store
	sink    Sink
	refresh RefreshFunc
	log     zerolog.Logger

	tickEvery    time.Duration
	refreshEvery time.Duration
	now          func() time.Time // swapped out in tests

	// Cached rollover target. Re-resolved when the schedule pointer
	// changes or when the target instant is reached.
	lastSched *DailySchedule
	next      Next
	haveNext  bool

	stopOnce sync.Once
	stop     chan struct{}
	done     sync.WaitGroup
}

// NewDriver wires a driver over the given store and sink. refresh may be
// nil when the caller populates the store itself (tests do this).
func NewDriver(store *Store, sink Sink, refresh RefreshFunc, log zerolog.Logger) *Driver {
	return &Driver{
		store:        store,
		sink:         sink,
		refresh:      refresh,
		log:          log,
		tickEvery:    time.Second,
		refreshEvery: time.Hour,
		now:          time.Now,
		stop:         make(chan struct{}),
	}
}

// SetRefreshInterval overrides the hourly refresh cadence. Must be called
// before Start.
func (d *Driver) SetRefreshInterval(every time.Duration) {
	if every > 0 {
		d.refreshEvery = every
	}
}

// Start launches the tick loop and the refresh loop. It returns
// immediately; the first frame is emitted before the first refresh
// completes. ctx bounds the refresh fetches only — the loops run until
// Stop.
func (d *Driver) Start(ctx context.Context) {
	d.done.Add(1)
	go d.tickLoop()

	if d.refresh != nil {
		d.done.Add(1)
		go d.refreshLoop(ctx)
	}
}

// Stop halts both loops and waits for them to exit. Safe to call more than
// once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
	d.done.Wait()
}

func (d *Driver) tickLoop() {
	defer d.done.Done()

	// First frame right away, then every tick.
	d.tick()

	t := time.NewTicker(d.tickEvery)
	defer t.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-t.C:
			d.tick()
		}
	}
}

// tick resolves one frame against the current wall clock and hands it to
// the sink. It performs no I/O and never lets a failure escape: a
// resolution error becomes an unresolved frame, and the loop keeps going.
func (d *Driver) tick() {
	now := d.now()
	sched := d.store.Get()

	// A replaced schedule invalidates the cached rollover target.
	if sched != d.lastSched {
		d.lastSched = sched
		d.haveNext = false
	}
	// Target reached: re-resolve against the same instant so the new
	// countdown appears in this very frame, with no dead 00:00:00 tick in
	// between. ResolveNext is pure, so resolving twice in one tick is safe.
	if d.haveNext && !d.next.At.After(now.Truncate(time.Second)) {
		d.haveNext = false
	}

	if !d.haveNext {
		next, err := ResolveNext(sched, now)
		if err != nil {
			d.logResolveErr(err)
			d.emit(Frame{Now: now, Schedule: sched, Err: err})
			return
		}
		d.next = next
		d.haveNext = true
	}

	current, err := ResolveCurrent(sched, now)
	if err != nil {
		d.logResolveErr(err)
		d.emit(Frame{Now: now, Schedule: sched, Err: err})
		return
	}

	d.emit(Frame{
		Now:       now,
		Schedule:  sched,
		Current:   current,
		Next:      d.next,
		Countdown: Until(d.next.At, now),
		Resolved:  true,
	})
}

// emit delivers a frame, containing any sink panic. An escaping panic here
// would kill the tick loop and silently freeze every later frame.
func (d *Driver) emit(f Frame) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("display sink panicked")
		}
	}()
	d.sink.Update(f)
}

func (d *Driver) logResolveErr(err error) {
	switch err {
	case ErrNoSchedule:
		d.log.Debug().Msg("no schedule yet, showing sentinel frame")
	case ErrNoSubuh:
		d.log.Warn().Msg("subuh missing from schedule, rollover impossible")
	default:
		d.log.Warn().Err(err).Msg("prayer resolution failed")
	}
}

func (d *Driver) refreshLoop(ctx context.Context) {
	defer d.done.Done()

	d.doRefresh(ctx)

	t := time.NewTicker(d.refreshEvery)
	defer t.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-t.C:
			d.doRefresh(ctx)
		}
	}
}

// doRefresh replaces the stored schedule on success. On failure the store
// keeps the last-known-good day; the tick keeps serving it and the failure
// is only logged.
func (d *Driver) doRefresh(ctx context.Context) {
	sched, err := d.refresh(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("schedule refresh failed, keeping previous day")
		return
	}
	d.store.Set(sched)
	d.log.Debug().
		Str("zone", sched.Zone).
		Str("date", sched.Date.Format("2006-01-02")).
		Msg("schedule refreshed")
}
