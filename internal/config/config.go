// Package config defines process configuration and its loading.
//
// Precedence, low to high: built-in defaults, an optional YAML file, then
// environment variables with the CHRONOSVG_ prefix.
package config

import (
	"chronosvg/internal/input"
	"chronosvg/internal/timeline"
)

// Config contains every recognized setting. Layout keys default to the
// standard chart geometry; overriding them changes coordinates but never the
// document structure.
type Config struct {
	// Output is the destination SVG path. Empty means derive it from the
	// events filename.
	Output string `koanf:"output"`

	// DarkMode swaps the five semantic palette colors as a unit.
	DarkMode bool `koanf:"dark_mode"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WrapWidth is the character column event text wraps to.
	WrapWidth int `koanf:"wrap_width"`

	// LineHeight is the pixel height of one wrapped text line.
	LineHeight int `koanf:"line_height"`

	// EventPad and EventGap control vertical spacing within a day group.
	EventPad int `koanf:"event_pad"`
	EventGap int `koanf:"event_gap"`

	// LeftMargin and SlotWidth place the day slots; WidthPerDay and
	// MinWidth size the canvas.
	LeftMargin  int `koanf:"left_margin"`
	SlotWidth   int `koanf:"slot_width"`
	WidthPerDay int `koanf:"width_per_day"`
	MinWidth    int `koanf:"min_width"`

	// BaselineY, BaselineInset, and BottomMargin shape the main axis.
	BaselineY     int `koanf:"baseline_y"`
	BaselineInset int `koanf:"baseline_inset"`
	BottomMargin  int `koanf:"bottom_margin"`

	// ICSWindowDays bounds recurrence expansion when loading .ics input.
	ICSWindowDays int `koanf:"ics_window_days"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	l := timeline.DefaultLayout()
	return &Config{
		LogLevel:      "info",
		WrapWidth:     l.WrapWidth,
		LineHeight:    l.LineHeight,
		EventPad:      l.EventPad,
		EventGap:      l.EventGap,
		LeftMargin:    l.LeftMargin,
		SlotWidth:     l.SlotWidth,
		WidthPerDay:   l.WidthPerDay,
		MinWidth:      l.MinWidth,
		BaselineY:     l.BaselineY,
		BaselineInset: l.BaselineInset,
		BottomMargin:  l.BottomMargin,
		ICSWindowDays: 365,
	}
}

// Layout assembles the chart geometry from the configured values.
func (c *Config) Layout() timeline.Layout {
	return timeline.Layout{
		WrapWidth:     c.WrapWidth,
		LineHeight:    c.LineHeight,
		EventPad:      c.EventPad,
		EventGap:      c.EventGap,
		LeftMargin:    c.LeftMargin,
		SlotWidth:     c.SlotWidth,
		WidthPerDay:   c.WidthPerDay,
		MinWidth:      c.MinWidth,
		BaselineY:     c.BaselineY,
		BaselineInset: c.BaselineInset,
		BottomMargin:  c.BottomMargin,
	}
}

// InputOptions assembles the input decoder settings.
func (c *Config) InputOptions() input.Options {
	return input.Options{
		ICS: input.ICSOptions{WindowDays: c.ICSWindowDays},
	}
}
