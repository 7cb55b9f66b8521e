package arena

import (
	"github.com/vovakirdan/tui-arena/internal/core"
)

// spawnAttempts bounds the clearance re-rolls of a respawn.
const spawnAttempts = 8

// resolveCollisions applies the damage rules in a fixed order:
//  1. enemy projectiles vs player
//  2. player projectiles vs enemy
//  3. enemy body vs player body
//
// A projectile that scores a hit is removed immediately, and the
// invincibility flag is re-checked before every application, so the player
// loses at most one life per tick.
func (e *Engine) resolveCollisions() {
	w := &e.world

	// Rule 1. While invincible, enemy shots pass through and stay alive.
	kept := w.EnemyShots[:0]
	for _, s := range w.EnemyShots {
		p := &w.Player
		if !p.Invincible && e.contact(p.Pos, s.Pos) {
			e.damagePlayer()
			continue
		}
		kept = append(kept, s)
	}
	clear(w.EnemyShots[len(kept):])
	w.EnemyShots = kept

	if w.State == GameOver {
		return
	}

	// Rule 2. Each hit is checked against the enemy's current position,
	// which changes if an earlier hit this tick forced a respawn.
	kept = w.PlayerShots[:0]
	for _, s := range w.PlayerShots {
		if en := w.Enemy; en != nil && e.contact(en.Pos, s.Pos) {
			e.damageEnemy()
			continue
		}
		kept = append(kept, s)
	}
	clear(w.PlayerShots[len(kept):])
	w.PlayerShots = kept

	// Rule 3
	if en := w.Enemy; en != nil && !w.Player.Invincible &&
		e.contact(w.Player.Pos, en.Pos) {
		e.damagePlayer()
	}
}

// contact reports whether two points are within damage reach of each other.
// Every rule uses the same reach: both body radii plus the bullet margin.
func (e *Engine) contact(a, b core.Vec2) bool {
	return core.CirclesOverlap(a, e.cfg.Player.Radius, b, e.cfg.Enemy.Radius, e.cfg.Projectile.Radius)
}

// damagePlayer removes one life and opens the invincibility window.
// Hits during an open window are no-ops. Reaching zero lives latches GameOver.
func (e *Engine) damagePlayer() {
	p := &e.world.Player
	if p.Invincible {
		return
	}
	p.Lives = max(0, p.Lives-1)
	p.Invincible = true
	p.InvincibleLeft = e.cfg.Player.Invincibility

	if p.Lives == 0 {
		e.world.State = GameOver
	}
}

// damageEnemy removes one enemy life. At zero the enemy respawns with full
// lives and the player is rewarded.
func (e *Engine) damageEnemy() {
	en := e.world.Enemy
	en.Lives = max(0, en.Lives-1)
	if en.Lives > 0 {
		return
	}

	e.world.Kills++
	e.world.Score += e.cfg.Scoring.KillReward
	en.Lives = e.cfg.Enemy.Lives
	en.Pos = e.spawnPoint(en.Radius)
	en.Angle = core.AngleTo(en.Pos, e.world.Player.Pos)
}

// decayInvincibility advances the invincibility countdown by one tick.
func (e *Engine) decayInvincibility() {
	p := &e.world.Player
	if !p.Invincible {
		return
	}
	p.InvincibleLeft -= e.tick
	if p.InvincibleLeft <= 0 {
		p.InvincibleLeft = 0
		p.Invincible = false
	}
}

// spawnPoint picks a uniformly random in-bounds position for a circle of the
// given radius, preferring points at least SpawnClearance from the player.
func (e *Engine) spawnPoint(radius float64) core.Vec2 {
	b := e.world.Bounds
	clearance := e.cfg.Enemy.SpawnClearance

	var p core.Vec2
	for range spawnAttempts {
		p = core.V(
			radius+e.rng.Float64()*(b.W-2*radius),
			radius+e.rng.Float64()*(b.H-2*radius),
		)
		if clearance <= 0 || core.Dist(p, e.world.Player.Pos) >= clearance {
			break
		}
	}
	return p
}
