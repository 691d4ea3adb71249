package timeline_test

import (
	"fmt"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"chronosvg/internal/model"
	"chronosvg/internal/timeline"
)

// groupsForDates builds one single-event group per date.
func groupsForDates(dates ...string) []timeline.DayGroup {
	events := make([]model.Event, 0, len(dates))
	for _, d := range dates {
		events = append(events, model.Event{Date: d, Time: "09:00", Text: "event"})
	}
	return timeline.Group(timeline.Normalize(events))
}

func TestCompute(t *testing.T) {
	l := timeline.DefaultLayout()

	convey.Convey("Given an empty input", t, func() {
		doc := timeline.Compute(nil, l)

		convey.Convey("Then the canvas degenerates to the minimum dimensions", func() {
			convey.So(doc.Width, convey.ShouldEqual, l.MinWidth)
			convey.So(doc.Height, convey.ShouldEqual, l.BaselineY)
			convey.So(doc.Groups, convey.ShouldBeEmpty)
		})
	})

	convey.Convey("Given events on two distinct dates", t, func() {
		doc := timeline.Compute(groupsForDates("2023-01-15", "2023-03-10"), l)

		convey.Convey("Then both slots exist, earlier strictly left of later", func() {
			convey.So(doc.Groups, convey.ShouldHaveLength, 2)
			convey.So(doc.Groups[0].Date, convey.ShouldEqual, "2023-01-15")
			convey.So(doc.Groups[0].X, convey.ShouldEqual, l.LeftMargin)
			convey.So(doc.Groups[1].X, convey.ShouldEqual, l.LeftMargin+l.SlotWidth)
			convey.So(doc.Groups[0].X, convey.ShouldBeLessThan, doc.Groups[1].X)
		})
	})

	convey.Convey("Given a growing number of distinct dates", t, func() {
		convey.Convey("Then canvas width never shrinks and never drops below the floor", func() {
			prev := 0
			for n := 0; n <= 10; n++ {
				dates := make([]string, 0, n)
				for i := 0; i < n; i++ {
					dates = append(dates, fmt.Sprintf("2023-01-%02d", i+1))
				}
				doc := timeline.Compute(groupsForDates(dates...), l)
				convey.So(doc.Width, convey.ShouldBeGreaterThanOrEqualTo, l.MinWidth)
				convey.So(doc.Width, convey.ShouldBeGreaterThanOrEqualTo, prev)
				prev = doc.Width
			}
		})

		convey.Convey("Then width grows linearly once past the floor", func() {
			doc := timeline.Compute(groupsForDates(
				"2023-01-01", "2023-01-02", "2023-01-03", "2023-01-04",
				"2023-01-05", "2023-01-06", "2023-01-07",
			), l)
			convey.So(doc.Width, convey.ShouldEqual, 7*l.WidthPerDay)
		})
	})

	convey.Convey("Given one event with a single line of text", t, func() {
		groups := timeline.Group(timeline.Normalize([]model.Event{
			{Date: "2023-01-15", Time: "09:00", Text: "kickoff"},
		}))
		doc := timeline.Compute(groups, l)

		convey.Convey("Then the group height is line + pad + gap", func() {
			convey.So(doc.Groups[0].Height, convey.ShouldEqual, l.LineHeight+l.EventPad+l.EventGap)
		})

		convey.Convey("Then the canvas fits the group plus margins", func() {
			convey.So(doc.Height, convey.ShouldEqual, l.BaselineY+doc.Groups[0].Height+l.BottomMargin)
		})
	})

	convey.Convey("Given stacked events on one day", t, func() {
		groups := timeline.Group(timeline.Normalize([]model.Event{
			{Date: "2023-05-10", Time: "08:30", Text: "one two three four five six seven"},
			{Date: "2023-05-10", Time: "14:15", Text: "short"},
		}))
		doc := timeline.Compute(groups, l)
		first := doc.Groups[0].Events[0]
		second := doc.Groups[0].Events[1]

		convey.Convey("Then each event's offset is the running height above it", func() {
			convey.So(first.Y, convey.ShouldEqual, 0)
			convey.So(second.Y, convey.ShouldEqual,
				len(first.Lines)*l.LineHeight+l.EventPad+l.EventGap)
		})
	})

	convey.Convey("Given events whose text wraps to zero lines", t, func() {
		groups := timeline.Group(timeline.Normalize([]model.Event{
			{Date: "2023-05-10", Time: "08:30", Text: ""},
			{Date: "2023-05-10", Time: "08:30", Text: ""},
		}))
		doc := timeline.Compute(groups, l)

		convey.Convey("Then they contribute no line height, only pad and gap", func() {
			convey.So(doc.Groups[0].Events[0].Lines, convey.ShouldBeEmpty)
			convey.So(doc.Groups[0].Height, convey.ShouldEqual, 2*(l.EventPad+l.EventGap))
		})
	})
}
