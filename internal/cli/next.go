package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/amirulhakim/waktu-solat/internal/api"
	"github.com/amirulhakim/waktu-solat/internal/display"
	"github.com/amirulhakim/waktu-solat/internal/schedule"
	"github.com/spf13/cobra"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with time remaining",
		Long:  "Display the next upcoming prayer and the countdown to it.\nSuitable for status bars; use --json for machine-readable output.",
		RunE:  runNext,
	}
}

// nextOutput is the --json shape for the next command.
type nextOutput struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	At        string `json:"at"` // RFC 3339 instant
	Tomorrow  bool   `json:"tomorrow"`
	Remaining string `json:"remaining"` // HH:MM:SS
	Zone      string `json:"zone"`
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	now := time.Now()
	zone := resolveZone(ctx, cfg)

	sched, err := fetchToday(ctx, api.NewClient(), zone.Code, now)
	if err != nil {
		return fmt.Errorf("fetching today's schedule: %w", err)
	}

	next, err := schedule.ResolveNext(sched, now)
	if err != nil {
		return fmt.Errorf("resolving next prayer: %w", err)
	}

	remaining := schedule.Until(next.At, now)

	if FlagJSON {
		out := nextOutput{
			Name:      next.Name.String(),
			Time:      formatClock(sched.Time(next.Name), cfg.TwelveHour()),
			At:        next.At.Format(time.RFC3339),
			Tomorrow:  next.Tomorrow,
			Remaining: remaining.String(),
			Zone:      zone.Code,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	label := next.Name.String()
	if next.Tomorrow {
		label += " (esok)"
	}
	fmt.Printf("%s %s (%s)\n",
		display.Bold(label),
		formatClock(sched.Time(next.Name), cfg.TwelveHour()),
		display.Accent("dalam "+remaining.String()))

	return nil
}
