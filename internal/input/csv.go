package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"chronosvg/internal/model"
)

// DecodeCSV parses header-mapped CSV event data. Column names are matched
// case-insensitively; "date" is required, "time" and "text" are optional,
// and any other columns are ignored. Quoted text cells may carry embedded
// newlines, which become manual paragraph breaks.
func DecodeCSV(r io.Reader) ([]model.Event, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int)
	for i, col := range header {
		columns[strings.ToLower(strings.TrimSpace(col))] = i
	}

	dateCol, ok := columns["date"]
	if !ok {
		return nil, fmt.Errorf("%w: \"date\" not in header %v", ErrMissingColumn, header)
	}
	timeCol, hasTime := columns["time"]
	textCol, hasText := columns["text"]

	var events []model.Event
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		ev := model.Event{}
		if dateCol < len(record) {
			ev.Date = strings.TrimSpace(record[dateCol])
		}
		if hasTime && timeCol < len(record) {
			ev.Time = strings.TrimSpace(record[timeCol])
		}
		if hasText && textCol < len(record) {
			ev.Text = record[textCol]
		}
		events = append(events, ev)
	}
	return events, nil
}
