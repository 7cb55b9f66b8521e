// Package arena implements the arena-shooter simulation: one player moving,
// aiming and firing inside a bounded world against a single enemy that
// tracks and shoots back.
//
// The engine is frame-synchronous. Each Step advances exactly one tick using
// the caller's clock reading and returns a read-only Snapshot; it never
// blocks, logs or draws. Rendering and input decoding live in the platform.
package arena

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// ID is the identifier used for score storage.
const ID = "arena"

// Title is the display name of the game.
const Title = "Arena"

// Input is the already-decoded input for one tick.
type Input struct {
	Dir   Direction // Held movement directions
	Aim   core.Vec2 // Aim target in world coordinates (camera already applied)
	Fire  bool      // Fire trigger edge
	Pause bool      // Pause toggle edge
}

// Engine owns the World and advances it one tick at a time.
// It is not safe for concurrent use; the driver loop owns it.
type Engine struct {
	cfg   config.ArenaConfig
	tick  time.Duration
	rng   *rand.Rand
	world World
}

// New creates an engine and resets it to the starting position.
// rt supplies the tick rate (for countdowns) and the RNG seed.
func New(cfg config.ArenaConfig, rt core.RuntimeConfig) *Engine {
	e := &Engine{
		cfg:  cfg,
		tick: rt.TickDuration(),
		rng:  rand.New(rand.NewSource(rt.Seed)),
	}
	e.Reset()
	return e
}

// Reset starts a new session: player centred with full lives, enemy at a
// random spawn, no projectiles, zero score, Running.
func (e *Engine) Reset() Snapshot {
	b := core.Bounds{W: e.cfg.World.Width, H: e.cfg.World.Height}

	e.world = World{
		Bounds: b,
		Player: Player{
			Pos:      b.Center(),
			Radius:   e.cfg.Player.Radius,
			Speed:    e.cfg.Player.Speed,
			Lives:    e.cfg.Player.Lives,
			Cooldown: e.cfg.Player.FireCooldown,
		},
		State: Running,
	}

	en := &Enemy{
		Radius:   e.cfg.Enemy.Radius,
		Lives:    e.cfg.Enemy.Lives,
		Cooldown: e.cfg.Enemy.FireCooldown,
	}
	en.Pos = e.spawnPoint(en.Radius)
	en.Angle = core.AngleTo(en.Pos, e.world.Player.Pos)
	e.world.Enemy = en

	return e.Snapshot()
}

// Step advances the simulation by one tick.
//
// A pause edge toggles Running/Paused and consumes the tick. While Paused or
// after GameOver no system runs, but the snapshot is still returned so the
// renderer can draw the overlay. now is read once and reused for every
// cooldown comparison of the tick.
func (e *Engine) Step(in Input, now time.Time) Snapshot {
	w := &e.world

	switch w.State {
	case GameOver:
		return e.Snapshot()
	case Running:
		if in.Pause {
			w.State = Paused
			return e.Snapshot()
		}
	case Paused:
		if in.Pause {
			w.State = Running
		}
		return e.Snapshot()
	}

	w.Tick++
	e.decayInvincibility()

	e.movePlayer(in.Dir)
	e.clampEnemy()
	e.aim(in.Aim)

	e.advanceProjectiles()
	if in.Fire {
		e.playerFire(now)
	}
	e.enemyThink(now)

	e.resolveCollisions()

	return e.Snapshot()
}

// State returns the current session state.
func (e *Engine) State() SessionState {
	return e.world.State
}
