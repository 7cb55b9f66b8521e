package arena

import (
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Faction identifies who fired a projectile and therefore what it can hit.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// String returns a human-readable name for the faction.
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the entity controlled by the user.
type Player struct {
	Pos    core.Vec2
	Angle  float64 // Facing, recomputed from the aim target every tick
	Radius float64
	Speed  float64 // Units per tick
	Lives  int

	LastShot time.Time
	Cooldown time.Duration

	// Invincibility is a countdown decremented once per running tick,
	// so pausing freezes it.
	Invincible     bool
	InvincibleLeft time.Duration
}

// Enemy is the single hostile entity. It never dies; it respawns.
type Enemy struct {
	Pos    core.Vec2
	Angle  float64 // Angle to the player, used only for firing
	Radius float64
	Lives  int

	LastShot time.Time
	Cooldown time.Duration
}

// Projectile moves in a straight line from its spawn point until it leaves
// the world or hits a valid target.
type Projectile struct {
	Pos    core.Vec2
	Origin core.Vec2
	Angle  float64
	Speed  float64
	Owner  Faction

	dir core.Vec2 // Unit vector for Angle, fixed at spawn
}

func newProjectile(pos core.Vec2, angle, speed float64, owner Faction) Projectile {
	return Projectile{
		Pos:    pos,
		Origin: pos,
		Angle:  angle,
		Speed:  speed,
		Owner:  owner,
		dir:    core.FromAngle(angle),
	}
}
