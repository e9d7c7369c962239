package schedule

import (
	"fmt"
	"time"
)

// Countdown is the H/MM/SS decomposition of the time remaining until an
// instant.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

// Until decomposes at-now into whole hours, minutes and seconds. The
// contract is floor, not round: a remainder below one second truncates to
// the lower second, so 1h0m0.9s displays as 1:00:00 until the second truly
// elapses. Negative durations clamp to zero.
func Until(at, now time.Time) Countdown {
	d := at.Sub(now)
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return Countdown{
		Hours:   secs / 3600,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

// String renders "HH:MM:SS" with zero-padded fields.
func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// TotalSeconds returns the countdown collapsed back to seconds.
func (c Countdown) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}
