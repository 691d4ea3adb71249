// Command chronosvg generates a static SVG timeline from a file of dated
// events. Events can come from a YAML list, a header-mapped CSV, or an
// iCalendar feed; the format is chosen by the file extension.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chronosvg/internal/config"
	"chronosvg/internal/input"
	"chronosvg/internal/logging"
	"chronosvg/internal/timeline"
)

func main() {
	eventsFile := flag.String("events", "", "events file: .yaml, .csv, or .ics (required)")
	configFile := flag.String("config", "", "YAML configuration file (optional)")
	outputFile := flag.String("output", "", "output SVG filename (optional)")
	darkMode := flag.Bool("dark", false, "use the dark color palette")
	debugFlag := flag.Bool("debug", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEach event needs a date (YYYY-MM-DD), a free-form time label,\n")
		fmt.Fprintf(os.Stderr, "and a description; events with malformed dates are skipped.\n")
		fmt.Fprintf(os.Stderr, "If no output file is given, the events filename with an .svg\n")
		fmt.Fprintf(os.Stderr, "extension is used.\n")
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s --events project.yaml --dark --output project.svg\n", os.Args[0])
	}
	flag.Parse()

	if *eventsFile == "" {
		fmt.Fprintf(os.Stderr, "Error: events file is required. Use --events to specify it.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if *debugFlag {
		level = slog.LevelDebug
	}
	logging.Init(level)

	if *outputFile != "" {
		cfg.Output = *outputFile
	}
	if *darkMode {
		cfg.DarkMode = true
	}

	events, err := input.Load(*eventsFile, cfg.InputOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading events: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("events loaded", "file", *eventsFile, "count", len(events))

	outputPath := outputFilename(*eventsFile, cfg.Output)
	opts := timeline.Options{DarkMode: cfg.DarkMode, Layout: cfg.Layout()}
	if err := timeline.GenerateFile(outputPath, events, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing timeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Timeline SVG generated: %s\n", outputPath)
}

// outputFilename returns the explicit output path if set, otherwise the
// events filename with its extension replaced by .svg.
func outputFilename(eventsFile, outputFile string) string {
	if outputFile != "" {
		return outputFile
	}
	base := filepath.Base(eventsFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}
