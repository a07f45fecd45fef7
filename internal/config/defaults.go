package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default configuration, tuned for 60 ticks per second.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.6,
			Friction:     0.85,
			MoveSpeed:    0.6,
			MaxSpeed:     5.0,
			JumpForce:    -13.0,
			BaseTickRate: 60,
		},
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 400,
			Width:  30,
			Height: 30,
		},
		Scoring: ScoringConfig{
			TokenReward: 10,
		},
		Tokens: TokenConfig{
			Radius: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `platformer config`.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
