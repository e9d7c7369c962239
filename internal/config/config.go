// Package config provides persistent configuration for the waktu-solat
// CLI.
//
// Configuration is stored as JSON at ~/.config/waktu-solat/config.json
// (XDG-compliant). Resolution priority is: CLI flags > config file >
// environment > defaults. The environment keys exist so kiosk deployments
// can pin a zone through a .env file without touching the config file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amirulhakim/waktu-solat/internal/zones"
)

const (
	configDirName  = "waktu-solat"
	configFileName = "config.json"
)

// Environment fallback keys.
const (
	EnvZone        = "WAKTUSOLAT_ZONE"
	EnvDefaultZone = "WAKTUSOLAT_DEFAULT_ZONE"
	EnvTimeFormat  = "WAKTUSOLAT_TIME_FORMAT"
	EnvTheme       = "WAKTUSOLAT_THEME"
)

// ValidKeys lists all config keys settable via `config set`.
var ValidKeys = []string{"zone", "default_zone", "time_format", "theme"}

// validThemes mirrors the display package's theme names. Kept local so the
// config layer stays a leaf below the rendering code.
var validThemes = map[string]bool{"auto": true, "dark": true, "light": true, "mono": true}

// Config holds all user-configurable settings. Zero values mean "not set"
// (auto-detect or fall back).
type Config struct {
	// Zone pins the JAKIM zone code, skipping geolocation entirely.
	Zone string `json:"zone,omitempty"`
	// DefaultZone is used when geolocation and keyword matching both
	// fail. Falls back to zones.DefaultCode when empty.
	DefaultZone string `json:"default_zone,omitempty"`
	TimeFormat  string `json:"time_format,omitempty"` // "12h" or "24h"
	Theme       string `json:"theme,omitempty"`       // auto, dark, light, mono
}

// Defaults returns a Config with default values applied.
func Defaults() Config {
	return Config{
		DefaultZone: zones.DefaultCode,
		TimeFormat:  "12h", // the widgets display 12-hour clocks
		Theme:       "auto",
	}
}

// Dir returns the config directory, respecting $XDG_CONFIG_HOME.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file and applies environment fallbacks for any
// field the file leaves unset. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific file path, then fills unset
// fields from the environment.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fine, all fields unset
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv fills unset fields from the environment.
func (c *Config) applyEnv() {
	if c.Zone == "" {
		c.Zone = os.Getenv(EnvZone)
	}
	if c.DefaultZone == "" {
		c.DefaultZone = os.Getenv(EnvDefaultZone)
	}
	if c.TimeFormat == "" {
		c.TimeFormat = os.Getenv(EnvTimeFormat)
	}
	if c.Theme == "" {
		c.Theme = os.Getenv(EnvTheme)
	}
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset deletes the config file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return ResetAt(path)
}

// ResetAt deletes the config file at a specific path.
func ResetAt(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// Set validates and assigns a config key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "zone":
		z, ok := zones.Lookup(value)
		if !ok {
			return fmt.Errorf("unknown zone code %q; run `waktu-solat zones` for the list", value)
		}
		c.Zone = z.Code
	case "default_zone":
		z, ok := zones.Lookup(value)
		if !ok {
			return fmt.Errorf("unknown zone code %q; run `waktu-solat zones` for the list", value)
		}
		c.DefaultZone = z.Code
	case "time_format":
		if value != "12h" && value != "24h" {
			return fmt.Errorf("invalid time_format %q: must be \"12h\" or \"24h\"", value)
		}
		c.TimeFormat = value
	case "theme":
		if !validThemes[value] {
			return fmt.Errorf("invalid theme %q: must be auto, dark, light, or mono", value)
		}
		c.Theme = value
	default:
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

// Get returns the string value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "zone":
		return c.Zone, nil
	case "default_zone":
		return c.DefaultZone, nil
	case "time_format":
		return c.TimeFormat, nil
	case "theme":
		return c.Theme, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// DefaultZoneOrFallback returns the configured default zone, or the
// built-in fallback when unset.
func (c *Config) DefaultZoneOrFallback() string {
	if c.DefaultZone != "" {
		return c.DefaultZone
	}
	return zones.DefaultCode
}

// TwelveHour reports whether times display in 12-hour form.
func (c *Config) TwelveHour() bool {
	return c.TimeFormat != "24h"
}
