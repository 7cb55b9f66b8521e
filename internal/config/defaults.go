package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
// It matches defaults/arena.yaml and is used when the embedded file cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:        20,
			Speed:         2.5,
			Lives:         3,
			FireCooldown:  250 * time.Millisecond,
			Invincibility: 2 * time.Second,
		},
		Enemy: EnemyConfig{
			Radius:         20,
			Lives:          3,
			FireCooldown:   time.Second,
			SpawnClearance: 150,
		},
		Projectile: ProjectileConfig{
			Speed:  3.5,
			Radius: 3,
		},
		Scoring: ScoringConfig{
			KillReward: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
