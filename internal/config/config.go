// Package config provides YAML-based configuration loading and rule
// presets for t2048.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Grid size limits accepted by Validate.
const (
	MinSize = 2
	MaxSize = 8
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all configuration for t2048.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`
}

// RulesConfig defines the fixed parameters of a game.
type RulesConfig struct {
	Size       int     `yaml:"size"`
	WinTarget  int     `yaml:"win_target"`
	Spawn4Prob float64 `yaml:"spawn4_prob"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// UIConfig defines terminal front-end parameters.
type UIConfig struct {
	ShowHelp bool `yaml:"show_help"`
}

// Game converts the rules section to game.Rules.
func (r RulesConfig) Game() game.Rules {
	return game.Rules{
		Size:       r.Size,
		WinTarget:  r.WinTarget,
		Spawn4Prob: r.Spawn4Prob,
	}
}

// Validate checks that the rules describe a playable game.
func (c Config) Validate() error {
	r := c.Rules
	if r.Size < MinSize || r.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in [%d,%d]", ErrInvalidConfig, r.Size, MinSize, MaxSize)
	}
	if r.WinTarget < 8 || r.WinTarget&(r.WinTarget-1) != 0 {
		return fmt.Errorf("%w: win_target %d is not a power of two >= 8", ErrInvalidConfig, r.WinTarget)
	}
	// A full board of distinct powers tops out around 2^(cells+1).
	if cells := r.Size * r.Size; cells < 30 && r.WinTarget > 1<<(cells+1) {
		return fmt.Errorf("%w: win_target %d unreachable on %dx%d grid", ErrInvalidConfig, r.WinTarget, r.Size, r.Size)
	}
	if r.Spawn4Prob < 0 || r.Spawn4Prob > 1 {
		return fmt.Errorf("%w: spawn4_prob %.2f not in [0,1]", ErrInvalidConfig, r.Spawn4Prob)
	}
	return nil
}
