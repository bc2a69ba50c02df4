// Package config loads server settings from defaults, an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (later sources win).
package config

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/entropy-crop-mcp/internal/entropy"
)

// Environment variables read by Load.
const (
	EnvConfigFile    = "IMAGE_MCP_CONFIG"
	EnvLogLevel      = "IMAGE_MCP_LOG_LEVEL"
	EnvMaxIterations = "IMAGE_MCP_MAX_ITERATIONS"
	EnvStripWidth    = "IMAGE_MCP_STRIP_WIDTH"
	EnvTolerance     = "IMAGE_MCP_TOLERANCE"
	EnvWorkers       = "IMAGE_MCP_WORKERS"
	EnvBackground    = "IMAGE_MCP_BACKGROUND"
)

// Config holds the tunables of the server and the crop search.
type Config struct {
	LogLevel      string  `yaml:"log_level"`
	MaxIterations int     `yaml:"max_iterations"`
	StripWidth    int     `yaml:"strip_width"`
	Tolerance     float64 `yaml:"tolerance"`
	Workers       int     `yaml:"workers"`

	// Background is the hex colour used for uncovered pixels when layers
	// are flattened or mosaicked. Empty means transparent.
	Background string `yaml:"background"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		MaxIterations: entropy.DefaultMaxIterations,
		StripWidth:    entropy.DefaultStripWidth,
		Tolerance:     entropy.DefaultTolerance,
		Workers:       runtime.NumCPU(),
	}
}

// Load builds the configuration. A missing .env file is not an error; a
// config file named by IMAGE_MCP_CONFIG must exist.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the values present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvBackground); v != "" {
		c.Background = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMaxIterations, &c.MaxIterations},
		{EnvStripWidth, &c.StripWidth},
		{EnvWorkers, &c.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.name, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTolerance, err)
		}
		c.Tolerance = f
	}
	return nil
}

// Validate rejects settings the search cannot run with.
func (c *Config) Validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.StripWidth < 1 {
		return fmt.Errorf("strip_width must be positive, got %d", c.StripWidth)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// BackgroundColor parses Background. An empty value yields transparent.
func (c *Config) BackgroundColor() (color.Color, error) {
	if c.Background == "" {
		return color.Transparent, nil
	}
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background %q: %w", c.Background, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// SearchOptions converts the search settings to entropy options.
func (c *Config) SearchOptions() []entropy.Option {
	return []entropy.Option{
		entropy.WithMaxIterations(c.MaxIterations),
		entropy.WithStripWidth(c.StripWidth),
		entropy.WithTolerance(c.Tolerance),
	}
}
