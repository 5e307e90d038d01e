// Package config provides YAML-based configuration loading and validation
// for the snake game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 256
)

// Food placement strategy names.
const (
	FoodAuto      = "auto"
	FoodSample    = "sample"
	FoodEnumerate = "enumerate"
)

// SnakeConfig contains all configuration for the game and its hosts.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Seed   int64        `yaml:"seed"` // 0 = time-based
	SSH    SSHConfig    `yaml:"ssh"`
	Web    WebConfig    `yaml:"web"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size         int    `yaml:"size"`
	FoodStrategy string `yaml:"food_strategy"` // "auto", "sample" or "enumerate"
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// RulesConfig toggles optional rule variants.
type RulesConfig struct {
	// TailChase allows moving into the cell the tail is leaving on a non-growth tick.
	TailChase bool `yaml:"tail_chase"`
}

// SSHConfig defines the SSH host.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig defines the browser host.
type WebConfig struct {
	Address string `yaml:"address"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Size))
	}
	switch c.Board.FoodStrategy {
	case FoodAuto, FoodSample, FoodEnumerate:
	default:
		errs = append(errs, fmt.Errorf("board.food_strategy must be auto, sample or enumerate, got %q", c.Board.FoodStrategy))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c SnakeConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
