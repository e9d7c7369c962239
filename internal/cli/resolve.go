package cli

import (
	"context"
	"time"

	"github.com/amirulhakim/waktu-solat/internal/api"
	"github.com/amirulhakim/waktu-solat/internal/config"
	"github.com/amirulhakim/waktu-solat/internal/geo"
	"github.com/amirulhakim/waktu-solat/internal/schedule"
	"github.com/amirulhakim/waktu-solat/internal/zones"
)

// resolveZone determines the effective JAKIM zone. Priority: explicit
// flag/config zone > geolocation keyword match > configured default. Every
// failure falls through to the next step — a missing location must never
// block the clock.
func resolveZone(ctx context.Context, cfg *config.Config) zones.Zone {
	if cfg.Zone != "" {
		if z, ok := zones.Lookup(cfg.Zone); ok {
			return z
		}
		log.Warn().Str("zone", cfg.Zone).Msg("configured zone unknown, falling back to detection")
	}

	loc, err := geo.Detect(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("location detection failed, using default zone")
	} else if z, ok := zones.Match(loc.Place()); ok {
		log.Debug().Str("place", loc.Place()).Str("zone", z.Code).Msg("zone matched from location")
		return z
	} else {
		log.Warn().Str("place", loc.Place()).Msg("location matched no zone, using default zone")
	}

	if z, ok := zones.Lookup(cfg.DefaultZoneOrFallback()); ok {
		return z
	}
	z, _ := zones.Lookup(zones.DefaultCode)
	return z
}

// fetchToday fetches the month's takwim for a zone and adapts today's row
// into a DailySchedule. A month without today's row is an error, not a
// schedule of invented defaults.
func fetchToday(ctx context.Context, client *api.Client, zoneCode string, now time.Time) (*schedule.DailySchedule, error) {
	resp, err := client.FetchMonth(ctx, zoneCode)
	if err != nil {
		return nil, err
	}
	row, err := resp.TodayRow(now)
	if err != nil {
		return nil, err
	}
	return scheduleFromRow(now, zoneCode, row), nil
}

// scheduleFromRow maps the e-solat field names onto the canonical prayer
// names. This is the only place the provider's naming leaks in.
func scheduleFromRow(date time.Time, zone string, row *api.Row) *schedule.DailySchedule {
	return schedule.FromRow(date, zone, row.Hijri, schedule.Row{
		Imsak:   row.Imsak,
		Subuh:   row.Fajr,
		Syuruk:  row.Syuruk,
		Zohor:   row.Dhuhr,
		Asar:    row.Asr,
		Maghrib: row.Maghrib,
		Isyak:   row.Isha,
	})
}
