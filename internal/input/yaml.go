package input

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"chronosvg/internal/model"
)

// DecodeYAML parses a YAML sequence of {date, time, text} mappings.
func DecodeYAML(data []byte) ([]model.Event, error) {
	var events []model.Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse yaml events: %w", err)
	}
	return events, nil
}
