// Package config provides configuration loading and validation for the pasture simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the complete simulation configuration.
// It is immutable while a run is in progress; the engine swaps it wholesale on reset.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Grass     GrassConfig     `yaml:"grass"`
	Sheep     SheepConfig     `yaml:"sheep"`
	Wolf      WolfConfig      `yaml:"wolf"`
	GameSpeed int             `yaml:"game_speed"`
	History   HistoryConfig   `yaml:"history"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds the world dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GrassConfig holds grass lifecycle and spread parameters.
type GrassConfig struct {
	LifeExpectancy int     `yaml:"life_expectancy"`
	InitialCount   int     `yaml:"initial_count"`
	SpreadRate     float64 `yaml:"spread_rate"`   // percent chance per tick, 0..100
	SpreadRadius   int     `yaml:"spread_radius"` // Manhattan distance in cells
}

// SheepConfig holds sheep lifecycle, feeding and breeding parameters.
type SheepConfig struct {
	LifeExpectancy int `yaml:"life_expectancy"`
	InitialCount   int `yaml:"initial_count"`
	StarvationTime int `yaml:"starvation_time"`
	BreedThreshold int `yaml:"breed_threshold"` // grass eaten per offspring
	GrazingRadius  int `yaml:"grazing_radius"`
}

// WolfConfig holds wolf lifecycle, hunting and breeding parameters.
type WolfConfig struct {
	LifeExpectancy int `yaml:"life_expectancy"`
	InitialCount   int `yaml:"initial_count"`
	StarvationTime int `yaml:"starvation_time"`
	BreedThreshold int `yaml:"breed_threshold"` // sheep eaten per offspring
	HuntingRadius  int `yaml:"hunting_radius"`
}

// HistoryConfig bounds the in-memory population history.
type HistoryConfig struct {
	Cap int `yaml:"cap"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per window
	BookmarkHistorySize int `yaml:"bookmark_history_size"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Cells int // Grid.Width * Grid.Height
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every field outside its accepted range.
// The simulation core assumes a validated config and never re-checks it per tick.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Grid.Width > 0, "grid.width must be positive, got %d", c.Grid.Width)
	check(c.Grid.Height > 0, "grid.height must be positive, got %d", c.Grid.Height)

	check(c.Grass.LifeExpectancy > 0, "grass.life_expectancy must be positive, got %d", c.Grass.LifeExpectancy)
	check(c.Grass.InitialCount >= 0, "grass.initial_count must not be negative, got %d", c.Grass.InitialCount)
	check(c.Grass.SpreadRate >= 0 && c.Grass.SpreadRate <= 100, "grass.spread_rate must be within [0, 100], got %g", c.Grass.SpreadRate)
	check(c.Grass.SpreadRadius >= 1, "grass.spread_radius must be at least 1, got %d", c.Grass.SpreadRadius)

	check(c.Sheep.LifeExpectancy > 0, "sheep.life_expectancy must be positive, got %d", c.Sheep.LifeExpectancy)
	check(c.Sheep.InitialCount >= 0, "sheep.initial_count must not be negative, got %d", c.Sheep.InitialCount)
	check(c.Sheep.StarvationTime > 0, "sheep.starvation_time must be positive, got %d", c.Sheep.StarvationTime)
	check(c.Sheep.BreedThreshold > 0, "sheep.breed_threshold must be positive, got %d", c.Sheep.BreedThreshold)
	check(c.Sheep.GrazingRadius >= 1, "sheep.grazing_radius must be at least 1, got %d", c.Sheep.GrazingRadius)

	check(c.Wolf.LifeExpectancy > 0, "wolf.life_expectancy must be positive, got %d", c.Wolf.LifeExpectancy)
	check(c.Wolf.InitialCount >= 0, "wolf.initial_count must not be negative, got %d", c.Wolf.InitialCount)
	check(c.Wolf.StarvationTime > 0, "wolf.starvation_time must be positive, got %d", c.Wolf.StarvationTime)
	check(c.Wolf.BreedThreshold > 0, "wolf.breed_threshold must be positive, got %d", c.Wolf.BreedThreshold)
	check(c.Wolf.HuntingRadius >= 1, "wolf.hunting_radius must be at least 1, got %d", c.Wolf.HuntingRadius)

	check(c.GameSpeed > 0, "game_speed must be positive, got %d", c.GameSpeed)
	check(c.History.Cap > 0, "history.cap must be positive, got %d", c.History.Cap)
	check(c.Telemetry.StatsWindow > 0, "telemetry.stats_window must be positive, got %d", c.Telemetry.StatsWindow)

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Cells = c.Grid.Width * c.Grid.Height
}

// Clone returns an independent copy with derived values recomputed.
func (c *Config) Clone() *Config {
	cp := *c
	cp.computeDerived()
	return &cp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
