package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amirulhakim/waktu-solat/internal/schedule"
)

// clearHome clears the screen and moves the cursor home between redraws.
const clearHome = "\033[2J\033[H"

// sentinel shown whenever resolution has nothing to say yet.
const sentinel = "--:--:--"

// Watch renders the live widget: clock, the day's prayer list with the
// current prayer highlighted, and the countdown to the next prayer. It
// implements schedule.Sink and redraws the whole frame each tick.
type Watch struct {
	mu         sync.Mutex
	out        io.Writer
	twelveHour bool
}

// NewWatch creates a watch renderer writing to out. twelveHour selects the
// clock format ("3:04:05 PM" vs "15:04:05").
func NewWatch(out io.Writer, twelveHour bool) *Watch {
	return &Watch{out: out, twelveHour: twelveHour}
}

// Update implements schedule.Sink.
func (w *Watch) Update(f schedule.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	io.WriteString(w.out, w.render(f))
}

func (w *Watch) render(f schedule.Frame) string {
	var sb strings.Builder

	if Enabled() {
		sb.WriteString(clearHome)
	}
	sb.WriteString("\n")

	// Header: title, zone, dates.
	title := "Waktu Solat"
	if f.Schedule != nil {
		title += "  ·  " + f.Schedule.Zone
	}
	sb.WriteString("  " + Bold(title) + "\n")

	dateLine := f.Now.Format("Mon, 2 Jan 2006")
	if f.Schedule != nil && f.Schedule.Hijri != "" {
		dateLine += "  ·  " + f.Schedule.Hijri + "H"
	}
	sb.WriteString("  " + Dim(dateLine) + "\n\n")

	// Live clock. Runs from the very first tick, with or without data.
	sb.WriteString("  " + Accent(f.Now.Format(w.clockLayout())) + "\n\n")

	sb.WriteString(w.renderPrayers(f))
	sb.WriteString("\n")
	sb.WriteString(w.renderNext(f))

	return sb.String()
}

// renderPrayers lists the seven daily entries, highlighting the current
// prayer when resolution succeeded.
func (w *Watch) renderPrayers(f schedule.Frame) string {
	table := NewTable("Waktu", "Jam")
	active := -1

	for i, p := range schedule.Names() {
		timeStr := "--:--"
		if f.Schedule != nil {
			t := f.Schedule.Time(p)
			if !t.Unavailable() {
				timeStr = w.formatTime(t)
			}
		}
		table.AddRow(p.String(), timeStr)
		if f.Resolved && p == f.Current {
			active = i
		}
	}

	table.SetActiveRow(active)
	return table.Render()
}

// renderNext shows the rollover label and countdown. Unresolved frames get
// explicit dashes — never stale or invented values.
func (w *Watch) renderNext(f schedule.Frame) string {
	if !f.Resolved {
		return "  " + Dim("Waktu Solat Seterusnya") + "\n" +
			"  " + Gray("--") + "   " + Gray(sentinel) + "\n"
	}

	label := "Waktu Solat Seterusnya"
	if f.Next.Tomorrow {
		label += " (Esok)"
	}

	return "  " + Dim(label) + "\n" +
		"  " + Bold(f.Next.Name.String()) + "   " + Accent(f.Countdown.String()) + "\n"
}

func (w *Watch) clockLayout() string {
	if w.twelveHour {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

// formatTime renders a time-of-day in the configured clock style.
func (w *Watch) formatTime(t schedule.TimeOfDay) string {
	h, m := t.Clock()
	if !w.twelveHour {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, ampm)
}
