package timeline

// Palette holds the five semantic colors that swap as a unit between light
// and dark mode. Palette choice substitutes fill/stroke values only; it
// never changes geometry.
type Palette struct {
	Background    string
	Text          string
	SecondaryText string
	Baseline      string
	Connector     string
}

// Marker fills are fixed across both palettes. The event circle is stroked
// with the palette's background color so it reads as punched out of the
// connector line.
const (
	eventFill  = "#4a6da7"
	anchorFill = "#e74c3c"
)

// Light is the default palette.
func Light() Palette {
	return Palette{
		Background:    "#ffffff",
		Text:          "#333333",
		SecondaryText: "#555555",
		Baseline:      "#333333",
		Connector:     "#999999",
	}
}

// Dark is the inverted palette for dark backgrounds.
func Dark() Palette {
	return Palette{
		Background:    "#222222",
		Text:          "#eeeeee",
		SecondaryText: "#aaaaaa",
		Baseline:      "#555555",
		Connector:     "#666666",
	}
}
