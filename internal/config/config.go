// Package config loads twentyone settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "twentyone.hcl"

// Config is the complete file configuration
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Log        *LogSettings        `hcl:"log,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings configures a single game
type GameSettings struct {
	Players []string `hcl:"players,optional"`
	Seed    int64    `hcl:"seed,optional"` // 0 picks a random seed
	Pace    string   `hcl:"pace,optional"` // pause after each player, e.g. "1s"
	Color   *bool    `hcl:"color,optional"`
}

// LogSettings configures the engine logger
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"` // empty logs to stderr
}

// SimulationSettings configures batch simulation runs
type SimulationSettings struct {
	Games   int `hcl:"games,optional"`
	Workers int `hcl:"workers,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	color := true
	return &Config{
		Game: &GameSettings{
			Players: []string{"p1", "p2", "com1", "com2"},
			Pace:    "1s",
			Color:   &color,
		},
		Log: &LogSettings{
			Level: "info",
		},
		Simulation: &SimulationSettings{
			Games:   1000,
			Workers: 4,
		},
	}
}

// Load reads configuration from filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if len(c.Game.Players) == 0 {
		c.Game.Players = defaults.Game.Players
	}
	if c.Game.Pace == "" {
		c.Game.Pace = defaults.Game.Pace
	}
	if c.Game.Color == nil {
		c.Game.Color = defaults.Game.Color
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaults.Simulation.Games
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaults.Simulation.Workers
	}
}

// Validate checks values that decode cleanly but cannot be used
func (c *Config) Validate() error {
	if _, err := c.PaceDuration(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Simulation != nil {
		if c.Simulation.Games < 0 {
			return fmt.Errorf("simulation games must not be negative, got %d", c.Simulation.Games)
		}
		if c.Simulation.Workers < 0 {
			return fmt.Errorf("simulation workers must not be negative, got %d", c.Simulation.Workers)
		}
	}
	return nil
}

// PaceDuration parses the game pace
func (c *Config) PaceDuration() (time.Duration, error) {
	if c.Game == nil || c.Game.Pace == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Game.Pace)
	if err != nil {
		return 0, fmt.Errorf("invalid pace %q: %w", c.Game.Pace, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("pace must not be negative, got %s", d)
	}
	return d, nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	if c.Log == nil || c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// ColorEnabled reports whether console output should be coloured
func (c *Config) ColorEnabled() bool {
	return c.Game == nil || c.Game.Color == nil || *c.Game.Color
}
