package timeline

import (
	"fmt"
	"io"
	"os"

	"chronosvg/internal/model"
)

// Options controls a single generation call.
type Options struct {
	// DarkMode swaps the five semantic palette colors; nothing else changes.
	DarkMode bool
	// Layout overrides the chart geometry. The zero value means
	// DefaultLayout.
	Layout Layout
}

func (o Options) palette() Palette {
	if o.DarkMode {
		return Dark()
	}
	return Light()
}

func (o Options) layout() Layout {
	if o.Layout == (Layout{}) {
		return DefaultLayout()
	}
	return o.Layout
}

// Generate runs the full pipeline over events and writes the complete SVG
// document to w. Events with malformed dates are logged and skipped; an
// empty input still produces a valid minimal document. Rerunning with the
// same input reproduces the same output byte for byte.
func Generate(w io.Writer, events []model.Event, opts Options) error {
	records := Normalize(events)
	doc := Compute(Group(records), opts.layout())
	if _, err := io.WriteString(w, Render(doc, opts.palette())); err != nil {
		return fmt.Errorf("write timeline: %w", err)
	}
	return nil
}

// GenerateFile writes the generated document to the named file, creating or
// truncating it. The file is closed on every path; a failed write or close
// is surfaced to the caller and is fatal for this invocation.
func GenerateFile(path string, events []model.Event, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return Generate(f, events, opts)
}
