package timeline

import (
	"log/slog"
	"time"

	"chronosvg/internal/model"
)

// DateFormat is the only accepted date layout: 4-digit year, 2-digit month,
// 2-digit day, dash-separated.
const DateFormat = "2006-01-02"

// Normalize validates raw events against DateFormat. Records whose date does
// not parse are logged and dropped; this is local recovery, never fatal for
// the run. Valid records keep their supplied order and their original date
// text verbatim.
func Normalize(events []model.Event) []model.Record {
	records := make([]model.Record, 0, len(events))
	for i, ev := range events {
		when, err := time.Parse(DateFormat, ev.Date)
		if err != nil {
			slog.Warn("skipping event with malformed date",
				"index", i, "date", ev.Date, "time", ev.Time)
			continue
		}
		records = append(records, model.Record{
			When: when,
			Date: ev.Date,
			Time: ev.Time,
			Text: ev.Text,
		})
	}
	return records
}
