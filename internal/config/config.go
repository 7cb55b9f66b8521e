// Package config provides YAML-based configuration loading for the arena.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid arena config")

// ArenaConfig contains all tunables of the arena simulation.
type ArenaConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// WorldConfig defines the fixed playable rectangle.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player-controlled entity.
type PlayerConfig struct {
	Radius        float64       `yaml:"radius"`
	Speed         float64       `yaml:"speed"` // Units per tick
	Lives         int           `yaml:"lives"`
	FireCooldown  time.Duration `yaml:"fire_cooldown"`
	Invincibility time.Duration `yaml:"invincibility"` // Window opened by each hit
}

// EnemyConfig defines the single hostile entity.
type EnemyConfig struct {
	Radius         float64       `yaml:"radius"`
	Lives          int           `yaml:"lives"`
	FireCooldown   time.Duration `yaml:"fire_cooldown"`
	SpawnClearance float64       `yaml:"spawn_clearance"` // Preferred min distance from player on (re)spawn
}

// ProjectileConfig defines bullets for both factions.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`  // Units per tick
	Radius float64 `yaml:"radius"` // Margin added to player+enemy radii for every damage contact
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	KillReward int `yaml:"kill_reward"`
}

// Validate checks that the configuration describes a playable arena.
func (c ArenaConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Radius <= 0 || c.Enemy.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radii must be positive"))
	}
	minSide := min(c.World.Width, c.World.Height)
	if 2*c.Player.Radius > minSide || 2*c.Enemy.Radius > minSide {
		errs = append(errs, fmt.Errorf("entities must fit inside the world"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %g", c.Player.Speed))
	}
	if c.Player.Lives <= 0 || c.Enemy.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive"))
	}
	if c.Player.FireCooldown < 0 || c.Enemy.FireCooldown < 0 || c.Player.Invincibility < 0 {
		errs = append(errs, fmt.Errorf("durations must not be negative"))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile speed must be positive, got %g", c.Projectile.Speed))
	}
	if c.Projectile.Radius < 0 || c.Enemy.SpawnClearance < 0 {
		errs = append(errs, fmt.Errorf("projectile radius and spawn clearance must not be negative"))
	}
	if c.Scoring.KillReward < 0 {
		errs = append(errs, fmt.Errorf("kill reward must not be negative"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
