// Package config loads exchange settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables of a DDC/CI exchanger.
type Config struct {
	Retries Retries `yaml:"retries"`
	Sleep   Sleep   `yaml:"sleep"`
	Capture Capture `yaml:"capture"`
}

// Retries holds the maximum number of tries per exchange kind.
type Retries struct {
	WriteOnly int `yaml:"writeOnly"`
	WriteRead int `yaml:"writeRead"`
	MultiPart int `yaml:"multiPart"`
}

// Sleep configures the adaptive retry-delay estimator.
type Sleep struct {
	Dynamic       bool    `yaml:"dynamic"`
	Multiplier    float64 `yaml:"multiplier"`
	CheckInterval int     `yaml:"checkInterval"`
}

// Capture configures the protocol capture file.
type Capture struct {
	// Path of the CBOR capture file. Empty disables file capture.
	Path string `yaml:"path"`

	// FrameLimit caps the bytes recorded per frame. Zero records whole frames.
	FrameLimit int `yaml:"frameLimit"`
}

// Default returns the embedded defaults.
func Default() *Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &c
}

// Parse overlays data on the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	tries := []struct {
		name string
		v    int
	}{
		{"retries.writeOnly", c.Retries.WriteOnly},
		{"retries.writeRead", c.Retries.WriteRead},
		{"retries.multiPart", c.Retries.MultiPart},
	}
	for _, t := range tries {
		if t.v < 1 || t.v > errinfo.MaxMaxTries {
			return fmt.Errorf("%w: %s = %d, must be in [1, %d]", ErrInvalid, t.name, t.v, errinfo.MaxMaxTries)
		}
	}
	if c.Sleep.Multiplier <= 0 {
		return fmt.Errorf("%w: sleep.multiplier = %g, must be positive", ErrInvalid, c.Sleep.Multiplier)
	}
	if c.Sleep.CheckInterval < 1 {
		return fmt.Errorf("%w: sleep.checkInterval = %d, must be at least 1", ErrInvalid, c.Sleep.CheckInterval)
	}
	if c.Capture.FrameLimit < 0 {
		return fmt.Errorf("%w: capture.frameLimit = %d, must not be negative", ErrInvalid, c.Capture.FrameLimit)
	}
	return nil
}
