package timeline

import (
	"fmt"
	"strings"
)

// Fixed markup geometry. These are part of the document's visual grammar
// rather than tunable layout, so they stay constants.
const (
	anchorRadius   = 6   // baseline anchor circle
	eventRadius    = 5   // per-event marker circle
	dateLabelY     = -20 // date label above the anchor
	groupTopOffset = 25  // day-group container below the anchor
	connectorTop   = -15 // connector starts above the first event
	labelX         = 15  // time and text labels right of the marker
	timeLabelY     = 5
	textFirstY     = 20 // first wrapped line; later lines advance by LineHeight
)

// Render serializes a computed Document as a standalone SVG image using the
// given palette. The builder is owned by this function; no markup state
// exists outside it.
func Render(doc Document, p Palette) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" font-family="Arial">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	b.WriteString("<style>\n")
	fmt.Fprintf(&b, ".background { fill: %s; }\n", p.Background)
	fmt.Fprintf(&b, ".timeline-line { stroke: %s; stroke-width: 2; }\n", p.Baseline)
	fmt.Fprintf(&b, ".day-connector { stroke: %s; stroke-dasharray: 3,2; stroke-width: 1; }\n", p.Connector)
	fmt.Fprintf(&b, ".event-circle { fill: %s; stroke: %s; stroke-width: 1; }\n", eventFill, p.Background)
	fmt.Fprintf(&b, ".event-circle.main-anchor { fill: %s; }\n", anchorFill)
	fmt.Fprintf(&b, ".date-label { font-size: 11px; fill: %s; text-anchor: middle; }\n", p.Text)
	fmt.Fprintf(&b, ".time-label { font-size: 10px; fill: %s; text-anchor: start; }\n", p.SecondaryText)
	fmt.Fprintf(&b, ".event-label { font-size: 10px; fill: %s; text-anchor: start; }\n", p.Text)
	b.WriteString(".day-group { stroke: none; fill: none; }\n")
	b.WriteString("</style>\n")

	b.WriteString(`<rect width="100%" height="100%" class="background"/>` + "\n")

	l := doc.Layout
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" class="timeline-line"/>`+"\n",
		l.BaselineInset, l.BaselineY, doc.Width-l.BaselineInset, l.BaselineY)

	for _, g := range doc.Groups {
		// Group dates are validated YYYY-MM-DD strings, safe inside a comment.
		fmt.Fprintf(&b, "<!-- %s -->\n", g.Date)
		fmt.Fprintf(&b, `<g transform="translate(%d,%d)">`+"\n", g.X, l.BaselineY)
		fmt.Fprintf(&b, `<circle cx="0" cy="0" r="%d" class="event-circle main-anchor"/>`+"\n", anchorRadius)
		fmt.Fprintf(&b, `<text x="0" y="%d" class="date-label">%s</text>`+"\n", dateLabelY, escapeXML(g.Date))
		fmt.Fprintf(&b, `<g class="day-group" transform="translate(0,%d)">`+"\n", groupTopOffset)
		fmt.Fprintf(&b, `<line x1="0" y1="%d" x2="0" y2="%d" class="day-connector"/>`+"\n", connectorTop, g.Height)

		for _, ev := range g.Events {
			fmt.Fprintf(&b, `<g transform="translate(0,%d)">`+"\n", ev.Y)
			fmt.Fprintf(&b, `<circle cx="0" cy="0" r="%d" class="event-circle"/>`+"\n", eventRadius)
			fmt.Fprintf(&b, `<text x="%d" y="%d" class="time-label">%s</text>`+"\n", labelX, timeLabelY, escapeXML(ev.Time))
			for j, line := range ev.Lines {
				fmt.Fprintf(&b, `<text x="%d" y="%d" class="event-label">%s</text>`+"\n",
					labelX, textFirstY+j*l.LineHeight, escapeXML(line))
			}
			b.WriteString("</g>\n")
		}

		b.WriteString("</g>\n</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// escapeXML escapes the XML special characters so free-form event text
// cannot produce a malformed document.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
