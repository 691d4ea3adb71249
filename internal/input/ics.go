package input

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"chronosvg/internal/model"
	"chronosvg/internal/timeline"
)

const (
	defaultICSWindowDays  = 365
	defaultMaxOccurrences = 1000
	timeLabelFormat       = "15:04"
)

// ICSOptions bounds recurrence expansion. Recurring events are expanded from
// their DTSTART over WindowDays, capped at MaxOccurrences instances each, so
// an unbounded RRULE cannot blow up the chart.
type ICSOptions struct {
	WindowDays     int
	MaxOccurrences int
}

func (o ICSOptions) withDefaults() ICSOptions {
	if o.WindowDays <= 0 {
		o.WindowDays = defaultICSWindowDays
	}
	if o.MaxOccurrences <= 0 {
		o.MaxOccurrences = defaultMaxOccurrences
	}
	return o
}

// DecodeICS parses an iCalendar payload into event records. Each VEVENT
// contributes one record per occurrence: the date and time come from the
// (possibly recurring) start, the text from SUMMARY with DESCRIPTION as a
// second paragraph. VEVENTs that cannot be interpreted are logged and
// skipped; the rest of the feed still loads.
func DecodeICS(r io.Reader, opts ICSOptions) ([]model.Event, error) {
	opts = opts.withDefaults()

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	var events []model.Event
	for _, ve := range cal.Events() {
		expanded, err := expandVEvent(ve, opts)
		if err != nil {
			slog.Warn("skipping unusable vevent", "err", err)
			continue
		}
		events = append(events, expanded...)
	}
	return events, nil
}

func expandVEvent(ve *ical.VEvent, opts ICSOptions) ([]model.Event, error) {
	allDay := isAllDay(ve)

	var start time.Time
	var err error
	if allDay {
		start, err = ve.GetAllDayStartAt()
	} else {
		start, err = ve.GetStartAt()
	}
	if err != nil {
		return nil, fmt.Errorf("vevent start: %w", err)
	}

	text := propertyValue(ve, ical.ComponentPropertySummary)
	if desc := propertyValue(ve, ical.ComponentPropertyDescription); desc != "" {
		if text != "" {
			text += "\n"
		}
		text += desc
	}

	starts := []time.Time{start}
	if raw := propertyValue(ve, ical.ComponentPropertyRrule); raw != "" {
		starts, err = expandRecurrence(raw, start, opts)
		if err != nil {
			return nil, err
		}
	}

	events := make([]model.Event, 0, len(starts))
	for _, s := range starts {
		label := s.Format(timeLabelFormat)
		if allDay {
			label = ""
		}
		events = append(events, model.Event{
			Date: s.Format(timeline.DateFormat),
			Time: label,
			Text: text,
		})
	}
	return events, nil
}

func expandRecurrence(raw string, start time.Time, opts ICSOptions) ([]time.Time, error) {
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("parse rrule %q: %w", raw, err)
	}
	r.DTStart(start)

	end := start.AddDate(0, 0, opts.WindowDays)
	occurrences := r.Between(start, end, true)
	if len(occurrences) > opts.MaxOccurrences {
		slog.Warn("truncating recurrence expansion",
			"rrule", raw, "cap", opts.MaxOccurrences)
		occurrences = occurrences[:opts.MaxOccurrences]
	}
	return occurrences, nil
}

// isAllDay reports whether DTSTART is a date-only value (VALUE=DATE or no
// time component).
func isAllDay(ve *ical.VEvent) bool {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return false
	}
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(prop.Value, "T")
}

func propertyValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}
