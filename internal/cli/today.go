package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amirulhakim/waktu-solat/internal/api"
	"github.com/amirulhakim/waktu-solat/internal/display"
	"github.com/amirulhakim/waktu-solat/internal/schedule"
	"github.com/spf13/cobra"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's prayer schedule",
		Long:  "Display all of today's prayer times for your zone, with the current prayer highlighted.",
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	now := time.Now()
	zone := resolveZone(ctx, cfg)

	sched, err := fetchToday(ctx, api.NewClient(), zone.Code, now)
	if err != nil {
		return fmt.Errorf("fetching today's schedule: %w", err)
	}

	current, err := schedule.ResolveCurrent(sched, now)
	if err != nil {
		return fmt.Errorf("resolving schedule: %w", err)
	}

	// Header.
	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Waktu Solat  ·  "+zone.Code+"  ·  "+zone.State))
	dateLine := now.Format("Mon, 2 Jan 2006")
	if sched.Hijri != "" {
		dateLine += "  ·  " + sched.Hijri + "H"
	}
	fmt.Printf("  %s\n\n", display.Dim(dateLine))

	// Prayer table with the current prayer highlighted.
	table := display.NewTable("Waktu", "Jam")
	for i, p := range schedule.Names() {
		table.AddRow(p.String(), formatClock(sched.Time(p), cfg.TwelveHour()))
		if p == current {
			table.SetActiveRow(i)
		}
	}
	fmt.Print(table.Render())

	// Next prayer with remaining time, when it still resolves.
	next, err := schedule.ResolveNext(sched, now)
	if err != nil {
		log.Warn().Err(err).Msg("next prayer unresolved")
		fmt.Printf("\n  %s %s\n\n", display.Dim("Seterusnya:"), display.Gray("--"))
		return nil
	}

	label := next.Name.String()
	if next.Tomorrow {
		label += " (esok)"
	}
	fmt.Printf("\n  %s %s %s\n\n",
		display.Dim("Seterusnya:"),
		display.Bold(label),
		display.Accent("dalam "+schedule.Until(next.At, now).String()))

	return nil
}

// formatClock renders a time-of-day per the configured clock style, with
// dashes for unavailable entries.
func formatClock(t schedule.TimeOfDay, twelveHour bool) string {
	if t.Unavailable() {
		return "--:--"
	}
	if !twelveHour {
		return t.String()
	}
	h, m := t.Clock()
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
