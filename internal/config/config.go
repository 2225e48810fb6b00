// Package config loads the coopdemo configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

const (
	BackendRuntime = "runtime"
	BackendLoop    = "loop"

	DefaultUnit = time.Second
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Timers TimersConfig `yaml:"timers"`
	Demo   DemoConfig   `yaml:"demo"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TimersConfig struct {
	// Backend selects the TimeProvider of Timeouts,
	// either "runtime" (package time) or "loop" (single goroutine).
	Backend string `yaml:"backend"`
}

type DemoConfig struct {
	// Unit is the length of one step of the demo scenario (1000ms originally).
	Unit    string        `yaml:"unit"`
	UnitDur time.Duration `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Timers: TimersConfig{Backend: BackendRuntime},
		Demo:   DemoConfig{Unit: DefaultUnit.String(), UnitDur: DefaultUnit},
	}
}

// Load reads and validates the YAML file at path.
// An empty path yields Default.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config rejecting unknown fields
// and fills in defaults for omitted ones.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize applies defaults and validates every field.
func (c *Config) Normalize() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.Timers.Backend = strings.ToLower(strings.TrimSpace(c.Timers.Backend))
	switch c.Timers.Backend {
	case "":
		c.Timers.Backend = BackendRuntime
	case BackendRuntime, BackendLoop:
	default:
		return fmt.Errorf("timers.backend: unknown backend %q", c.Timers.Backend)
	}

	d, err := ParseDurationOrDefault("demo.unit", c.Demo.Unit, DefaultUnit)
	if err != nil {
		return err
	}
	c.Demo.UnitDur = d
	return nil
}

func ParseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}

func ParseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	d, err := ParseDurationField(path, raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}
