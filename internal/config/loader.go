package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for configuration environment variables, e.g.
// CHRONOSVG_DARK_MODE or CHRONOSVG_WRAP_WIDTH.
const EnvPrefix = "CHRONOSVG_"

// Load builds a Config by layering defaults, an optional YAML file, and env
// vars. path may be empty; the CHRONOSVG_CONFIG env var is honored as a
// fallback file location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
		}
	}

	// Map CHRONOSVG_WRAP_WIDTH -> wrap_width; underscores are preserved to
	// match the koanf tags on the struct.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.WrapWidth <= 0 {
		return fmt.Errorf("%w: wrap_width must be positive", ErrInvalidConfig)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("%w: line_height must be positive", ErrInvalidConfig)
	}
	if c.SlotWidth <= 0 || c.WidthPerDay <= 0 {
		return fmt.Errorf("%w: slot widths must be positive", ErrInvalidConfig)
	}
	if c.MinWidth <= 0 {
		return fmt.Errorf("%w: min_width must be positive", ErrInvalidConfig)
	}
	return nil
}
