// Package timeline turns dated event records into a static SVG timeline.
//
// The pipeline is a single forward pass with no shared state between calls:
// normalize → sort/group → wrap → measure → position → render. Each distinct
// date becomes a fixed-width horizontal slot on a shared baseline; the events
// of that day stack vertically under the slot's anchor. Text sizing is a
// character-count approximation, never glyph measurement, and the vertical
// layout depends on that exact line-count heuristic.
package timeline

import "chronosvg/internal/model"

// Layout describes the fixed geometry of a generated chart. Zero values are
// not useful; start from DefaultLayout and override selectively.
type Layout struct {
	WrapWidth     int // characters per wrapped text line
	LineHeight    int // pixels per text line
	EventPad      int // fixed padding added to every event's height
	EventGap      int // vertical gap between consecutive events in a group
	LeftMargin    int // x position of the first day slot
	SlotWidth     int // horizontal advance between day slots
	WidthPerDay   int // width allotted per distinct day when sizing the canvas
	MinWidth      int // canvas width floor
	BaselineY     int // y of the main timeline line, also the height floor
	BaselineInset int // horizontal inset of the baseline from the canvas edges
	BottomMargin  int // space reserved under the tallest day group
}

// DefaultLayout returns the standard chart geometry.
func DefaultLayout() Layout {
	return Layout{
		WrapWidth:     14,
		LineHeight:    15,
		EventPad:      10,
		EventGap:      10,
		LeftMargin:    80,
		SlotWidth:     160,
		WidthPerDay:   180,
		MinWidth:      1100,
		BaselineY:     100,
		BaselineInset: 50,
		BottomMargin:  50,
	}
}

// DayGroup is the ordered set of records sharing one calendar date. Group
// order is chronological; record order within a group preserves the order
// the events were supplied in.
type DayGroup struct {
	Date    string
	Records []model.Record
}

// PlacedEvent is one event after measurement: its wrapped text lines and its
// vertical offset inside the day group's container.
type PlacedEvent struct {
	Time  string
	Lines []string
	Y     int
}

// PlacedGroup is one day group after layout. X is the slot's horizontal
// position on the canvas; Height is the total vertical extent of the stacked
// events, which the dashed connector spans.
type PlacedGroup struct {
	Date   string
	X      int
	Height int
	Events []PlacedEvent
}

// Document is a fully computed layout, ready to render. It carries every
// coordinate the renderer needs so rendering itself makes no decisions.
type Document struct {
	Width  int
	Height int
	Layout Layout
	Groups []PlacedGroup
}
