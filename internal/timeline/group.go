package timeline

import (
	"sort"

	"chronosvg/internal/model"
)

// Group sorts records ascending by parsed date and buckets consecutive
// records sharing the same date string into one DayGroup per distinct date.
// The sort is stable, so events on the same day keep their supplied relative
// order. The input slice is not modified.
func Group(records []model.Record) []DayGroup {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].When.Before(sorted[j].When)
	})

	var groups []DayGroup
	for _, r := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Date == r.Date {
			groups[n-1].Records = append(groups[n-1].Records, r)
			continue
		}
		groups = append(groups, DayGroup{Date: r.Date, Records: []model.Record{r}})
	}
	return groups
}
