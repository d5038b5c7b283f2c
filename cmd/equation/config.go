package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/equation/display"
)

// config is the contents of a configuration file. Flags given on the command
// line override it.
type config struct {
	// Precision is the number of bits of precision for calculations. Zero
	// selects float64 arithmetic.
	Precision uint            `yaml:"precision"`
	Display   display.Options `yaml:"display"`
}

func defaultConfig() config {
	return config{Display: display.Default()}
}

// loadConfig reads a YAML configuration file. Settings missing from the file
// keep their defaults. An empty name gives the defaults.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	switch {
	case cfg.Display.ExpThreshold <= 0:
		return errors.New("display.exp_threshold must be positive")
	case cfg.Display.ExpDigits < 0:
		return errors.New("display.exp_digits must not be negative")
	case cfg.Display.MaxFraction < 0:
		return errors.New("display.max_fraction must not be negative")
	}
	return nil
}
