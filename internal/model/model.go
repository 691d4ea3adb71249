// Package model defines the event value types shared between the input
// adapters and the timeline pipeline. All values are transient: they are
// constructed for one generation call and never persisted.
package model

import "time"

// Event is a raw timeline entry as supplied by a caller or decoded from an
// input file. Date must be in YYYY-MM-DD form; Time is a free-form label.
// Text may contain embedded newlines, which the renderer treats as manual
// paragraph breaks.
type Event struct {
	Date string `yaml:"date"`
	Time string `yaml:"time"`
	Text string `yaml:"text"`
}

// Record is a validated event. When carries the parsed calendar date used
// for chronological ordering; Date keeps the original text verbatim so the
// rendered label matches the input byte for byte.
type Record struct {
	When time.Time
	Date string
	Time string
	Text string
}
