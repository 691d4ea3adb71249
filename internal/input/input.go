// Package input loads raw event records for the timeline generator. Three
// file formats are supported, dispatched on extension: a YAML event list, a
// header-mapped CSV, and an iCalendar feed with recurrence expansion.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chronosvg/internal/model"
)

// Sentinel error kinds for this package, matchable with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported events format")
	ErrMissingColumn     = errors.New("missing required column")
)

// Options carries format-specific decode settings.
type Options struct {
	ICS ICSOptions
}

// Load reads the named events file, choosing the decoder by file extension.
func Load(path string, opts Options) ([]model.Event, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read events file: %w", err)
		}
		return DecodeYAML(data)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open events file: %w", err)
		}
		defer f.Close()
		return DecodeCSV(f)
	case ".ics":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open events file: %w", err)
		}
		defer f.Close()
		return DecodeICS(f, opts.ICS)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
