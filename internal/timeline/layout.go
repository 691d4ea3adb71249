package timeline

// Compute measures every event and positions every day group, producing a
// Document with final canvas dimensions.
//
// Vertical: an event needs lines×LineHeight + EventPad pixels, a group needs
// the sum of its events' heights plus EventGap per event, and the canvas must
// fit the tallest group below the baseline plus the bottom margin. An event
// whose text wraps to zero lines contributes no line height, only pad and
// gap. Horizontal: group i occupies the slot at LeftMargin + i×SlotWidth,
// and the canvas width grows linearly with the number of distinct days but
// never shrinks below MinWidth.
func Compute(groups []DayGroup, l Layout) Document {
	doc := Document{
		Width:  max(l.MinWidth, len(groups)*l.WidthPerDay),
		Height: l.BaselineY,
		Layout: l,
		Groups: make([]PlacedGroup, 0, len(groups)),
	}

	x := l.LeftMargin
	for _, g := range groups {
		placed := PlacedGroup{
			Date:   g.Date,
			X:      x,
			Events: make([]PlacedEvent, 0, len(g.Records)),
		}

		y := 0
		for _, r := range g.Records {
			lines := WrapText(r.Text, l.WrapWidth)
			placed.Events = append(placed.Events, PlacedEvent{
				Time:  r.Time,
				Lines: lines,
				Y:     y,
			})
			y += len(lines)*l.LineHeight + l.EventPad + l.EventGap
		}
		// The running offset after the last event doubles as the group's
		// total height: per-event advance and per-event height + gap are the
		// same quantity.
		placed.Height = y

		doc.Groups = append(doc.Groups, placed)
		doc.Height = max(doc.Height, l.BaselineY+placed.Height+l.BottomMargin)
		x += l.SlotWidth
	}
	return doc
}
