package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file and default settings.
const (
	envSampleRate = "SIGINFO_SAMPLE_RATE"
	envLogLevel   = "SIGINFO_LOG_LEVEL"
)

const (
	defaultSampleRate = 48000.0
	defaultLogLevel   = "info"
)

// Config is the YAML description of a filter chain.
type Config struct {
	SampleRate float64        `yaml:"sample_rate"` // Hz
	LogLevel   string         `yaml:"log_level"`   // logrus level name
	Filters    []FilterConfig `yaml:"filters"`     // applied in order
}

// FilterConfig describes one stage of the chain. Which fields apply
// depends on Type.
type FilterConfig struct {
	Type      string    `yaml:"type"`      // biquad, iir, gain, invert, delay, dirac, zero, sinc-lowpass, sinc-highpass
	Disabled  bool      `yaml:"disabled"`  // keep the stage but bypass it
	Shape     string    `yaml:"shape"`     // biquad response shape
	Frequency float64   `yaml:"frequency"` // corner or cutoff in Hz
	Q         float64   `yaml:"q"`         // biquad quality factor
	GainDB    float64   `yaml:"gain_db"`   // biquad or gain level in dB
	Seconds   float64   `yaml:"seconds"`   // delay time
	Taps      int       `yaml:"taps"`      // sinc kernel length
	Window    string    `yaml:"window"`    // sinc taper
	B         []float64 `yaml:"b"`         // iir numerator
	A         []float64 `yaml:"a"`         // iir denominator
}

func defaultConfig() Config {
	return Config{
		SampleRate: defaultSampleRate,
		LogLevel:   defaultLogLevel,
	}
}

// LoadConfig reads the chain description at path. An empty path yields the
// defaults with no filters. Environment overrides are applied after the
// file and the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if val, ok := os.LookupEnv(envSampleRate); ok {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSampleRate, err)
		}
		c.SampleRate = rate
	}
	if val, ok := os.LookupEnv(envLogLevel); ok {
		c.LogLevel = val
	}
	return nil
}

// Validate checks the global settings. Filter parameters are validated
// when the chain is built.
func (c *Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 1) {
		return fmt.Errorf("sample_rate must be positive, got %v", c.SampleRate)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for i, f := range c.Filters {
		if f.Type == "" {
			return fmt.Errorf("filters[%d]: %w", i, errMissingType)
		}
	}
	return nil
}

var errMissingType = errors.New("missing type")
