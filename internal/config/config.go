// Package config provides YAML-based configuration loading for the
// platformer: physics constants, world size, player body and scoring.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Scoring ScoringConfig `yaml:"scoring"`
	Tokens  TokenConfig   `yaml:"tokens"`
}

// PhysicsConfig defines per-tick integration constants.
// Values are expressed for BaseTickRate ticks per second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vertical velocity every tick
	Friction     float64 `yaml:"friction"`       // Horizontal velocity damping factor per tick
	MoveSpeed    float64 `yaml:"move_speed"`     // Horizontal impulse per tick of held input
	MaxSpeed     float64 `yaml:"max_speed"`      // Cap on input-driven horizontal speed
	JumpForce    float64 `yaml:"jump_force"`     // Vertical velocity set on jump (negative = up)
	BaseTickRate int     `yaml:"base_tick_rate"` // Tick rate the constants are tuned for
}

// WorldConfig defines the playable area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // Falling below this respawns the body
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	TokenReward int `yaml:"token_reward"`
}

// TokenConfig defines pickup token geometry.
type TokenConfig struct {
	Radius float64 `yaml:"radius"` // Tokens are circles approximated by a 2r x 2r box
}

// Preset represents a named physics feel.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFloaty  Preset = "floaty"
	PresetHeavy   Preset = "heavy"
)

// ParsePreset converts a CLI string into a Preset.
// An empty string means "use the loaded config unchanged".
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetClassic, PresetFloaty, PresetHeavy:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want classic, floaty or heavy)", s)
	}
}

// ApplyPreset modifies the physics section according to a preset.
func ApplyPreset(cfg *PlatformerConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Physics = DefaultPlatformerConfig().Physics
	case PresetFloaty:
		cfg.Physics.Gravity = 0.4
		cfg.Physics.JumpForce = -10.5
	case PresetHeavy:
		cfg.Physics.Gravity = 0.8
		cfg.Physics.JumpForce = -15.0
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, errors.New("player is wider than the world"))
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be in (0, 1], got %v", c.Physics.Friction))
	}
	if c.Physics.MaxSpeed < 0 || c.Physics.MoveSpeed < 0 {
		errs = append(errs, errors.New("move_speed and max_speed must not be negative"))
	}
	if c.Physics.BaseTickRate <= 0 {
		errs = append(errs, fmt.Errorf("base_tick_rate must be positive, got %d", c.Physics.BaseTickRate))
	}
	if c.Scoring.TokenReward < 0 {
		errs = append(errs, errors.New("token_reward must not be negative"))
	}
	if c.Tokens.Radius < 0 {
		errs = append(errs, errors.New("token radius must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
