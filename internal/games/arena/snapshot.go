package arena

import (
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Snapshot is a read-only copy of the world handed to the renderer.
// Mutating it never affects the engine.
type Snapshot struct {
	Tick        uint64
	Bounds      core.Bounds
	Player      PlayerView
	Enemy       *EnemyView // nil when there is no enemy
	PlayerShots []ProjectileView
	EnemyShots  []ProjectileView
	Score       int
	Kills       int
	State       SessionState
}

// PlayerView is the renderable state of the player.
type PlayerView struct {
	Pos        core.Vec2
	Angle      float64
	Radius     float64
	Lives      int
	Invincible bool
	// FlashPhase is the remaining invincibility; renderers blink on it.
	FlashPhase time.Duration
}

// EnemyView is the renderable state of the enemy.
type EnemyView struct {
	Pos    core.Vec2
	Angle  float64
	Radius float64
	Lives  int
}

// ProjectileView is the renderable state of a projectile.
type ProjectileView struct {
	Pos    core.Vec2
	Origin core.Vec2
	Angle  float64
	Owner  Faction
}

// Snapshot returns a copy of the current world. It is valid in every state.
func (e *Engine) Snapshot() Snapshot {
	w := &e.world
	p := w.Player

	snap := Snapshot{
		Tick:   w.Tick,
		Bounds: w.Bounds,
		Player: PlayerView{
			Pos:        p.Pos,
			Angle:      p.Angle,
			Radius:     p.Radius,
			Lives:      p.Lives,
			Invincible: p.Invincible,
			FlashPhase: p.InvincibleLeft,
		},
		PlayerShots: viewShots(w.PlayerShots),
		EnemyShots:  viewShots(w.EnemyShots),
		Score:       w.Score,
		Kills:       w.Kills,
		State:       w.State,
	}

	if en := w.Enemy; en != nil {
		snap.Enemy = &EnemyView{
			Pos:    en.Pos,
			Angle:  en.Angle,
			Radius: en.Radius,
			Lives:  en.Lives,
		}
	}
	return snap
}

func viewShots(shots []Projectile) []ProjectileView {
	views := make([]ProjectileView, len(shots))
	for i, s := range shots {
		views[i] = ProjectileView{
			Pos:    s.Pos,
			Origin: s.Origin,
			Angle:  s.Angle,
			Owner:  s.Owner,
		}
	}
	return views
}
