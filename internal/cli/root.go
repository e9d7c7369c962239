package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/amirulhakim/waktu-solat/internal/config"
	"github.com/amirulhakim/waktu-solat/internal/display"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across all subcommands.
var (
	FlagZone        string
	FlagDefaultZone string
	FlagTimeFormat  string
	FlagTheme       string
	FlagJSON        bool
	FlagVerbose     bool
)

// loadedConfig holds the config loaded during PersistentPreRunE.
// Available to all subcommand handlers.
var loadedConfig *config.Config

// log is the process logger, configured in PersistentPreRunE.
var log = zerolog.Nop()

// NewRootCmd creates the root command for the waktu-solat CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "waktu-solat",
		Short:   "Malaysian prayer times for the terminal",
		Long:    "Prayer times for Malaysian JAKIM zones, powered by the e-solat API.\nResolves your zone from your location when none is configured.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = newLogger(FlagVerbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			loadedConfig = cfg

			display.SetTheme(display.Theme(effectiveConfig(cmd).Theme))
			return nil
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagZone, "zone", "", "JAKIM zone code, e.g. JHR02 (skips location detection)")
	pf.StringVar(&FlagDefaultZone, "default-zone", "", "Zone used when location detection fails")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.StringVar(&FlagTheme, "theme", "", "Color theme: auto, dark, light, or mono")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newZonesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// newLogger builds the process logger. Diagnostics go to stderr so they
// never corrupt the rendered display on stdout.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// effectiveConfig returns the merged configuration, applying the priority:
// CLI flags > config file > environment > defaults. Uses cobra's Changed()
// to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		empty := config.Config{}
		cfg = &empty
	}

	defaults := config.Defaults()

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "zone") {
		cfg.Zone = FlagZone
	}
	if flagWasSet(flags, root, "default-zone") {
		cfg.DefaultZone = FlagDefaultZone
	}
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if flagWasSet(flags, root, "theme") {
		cfg.Theme = FlagTheme
	}

	if cfg.DefaultZone == "" {
		cfg.DefaultZone = defaults.DefaultZone
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaults.TimeFormat
	}
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}

	return cfg
}

// flagWasSet checks whether a flag was explicitly set on either the local
// or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
