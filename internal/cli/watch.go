package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirulhakim/waktu-solat/internal/api"
	"github.com/amirulhakim/waktu-solat/internal/display"
	"github.com/amirulhakim/waktu-solat/internal/schedule"
	"github.com/spf13/cobra"
)

var flagRefreshEvery time.Duration

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live prayer-time display",
		Long: "Run the full-screen widget: a live clock, today's prayer times with\n" +
			"the current prayer highlighted, and a per-second countdown to the next\n" +
			"prayer. The schedule refreshes hourly; Ctrl-C exits.",
		RunE: runWatch,
	}

	cmd.Flags().DurationVar(&flagRefreshEvery, "refresh", time.Hour, "Schedule refresh interval")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := schedule.NewStore()
	sink := display.NewWatch(os.Stdout, cfg.TwelveHour())
	client := api.NewClient()

	// The whole startup chain — geolocate, match zone, fetch — lives
	// inside the first refresh, on the refresh goroutine. The tick starts
	// at once, so the clock is live while this is still in flight. The
	// zone is resolved once and pinned; only the takwim re-fetches.
	var zoneCode string
	refresh := func(ctx context.Context) (*schedule.DailySchedule, error) {
		if zoneCode == "" {
			zoneCode = resolveZone(ctx, cfg).Code
		}
		return fetchToday(ctx, client, zoneCode, time.Now())
	}

	driver := schedule.NewDriver(store, sink, refresh, log)
	driver.SetRefreshInterval(flagRefreshEvery)
	driver.Start(ctx)

	<-ctx.Done()
	driver.Stop()
	return nil
}
