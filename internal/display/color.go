// Package display renders the widget's terminal output: color handling,
// aligned tables, and the live watch frame.
//
// Color uses raw ANSI escape codes — no cgo, no termbox. It respects the
// NO_COLOR convention (https://no-color.org/) and disables itself when
// stdout is piped or redirected.
package display

import (
	"fmt"
	"os"
)

// ANSI escape codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
	fgGray = "\033[90m"
)

// Theme selects the highlight palette. "mono" disables color entirely;
// "auto" follows terminal detection with the dark palette.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeMono  Theme = "mono"
)

// ValidTheme reports whether s names a known theme.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeAuto, ThemeDark, ThemeLight, ThemeMono:
		return true
	}
	return false
}

var (
	enabled     bool
	accentColor = cyan
)

func init() {
	enabled = detectColor()
}

// detectColor decides the initial color state from the environment.
func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// FORCE_COLOR is honored for tests.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is connected to a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetTheme applies a theme, overriding auto-detection where the theme
// demands it. The theme is the one UI preference that persists in the
// config file.
func SetTheme(t Theme) {
	switch t {
	case ThemeMono:
		enabled = false
	case ThemeDark:
		enabled = detectColor()
		accentColor = cyan
	case ThemeLight:
		enabled = detectColor()
		accentColor = blue
	default: // ThemeAuto
		enabled = detectColor()
		accentColor = cyan
	}
}

// SetEnabled overrides the detected color state. Used by tests and by
// --no-color style flags.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether color output is currently active.
func Enabled() bool {
	return enabled
}

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return wrap(bold, text) }

// Dim returns text rendered in dim/faint.
func Dim(text string) string { return wrap(dim, text) }

// Green returns text rendered in green.
func Green(text string) string { return wrap(green, text) }

// Yellow returns text rendered in yellow.
func Yellow(text string) string { return wrap(yellow, text) }

// Gray returns text rendered in gray (bright black).
func Gray(text string) string { return wrap(fgGray, text) }

// Accent returns text in the theme's accent color plus bold. Used for the
// current-prayer highlight and the countdown.
func Accent(text string) string {
	if !enabled {
		return text
	}
	return bold + accentColor + text + reset
}

// Accentf formats and accents a string.
func Accentf(format string, a ...interface{}) string {
	return Accent(fmt.Sprintf(format, a...))
}
