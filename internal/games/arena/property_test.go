package arena

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

func drawInput(t *rapid.T, b core.Bounds) Input {
	return Input{
		Dir: Direction(rapid.IntRange(0, 15).Draw(t, "dir")),
		Aim: core.V(
			rapid.Float64Range(-b.W, 2*b.W).Draw(t, "aimX"),
			rapid.Float64Range(-b.H, 2*b.H).Draw(t, "aimY"),
		),
		Fire:  rapid.Bool().Draw(t, "fire"),
		Pause: rapid.IntRange(0, 30).Draw(t, "pause") == 0,
	}
}

func inCircleBounds(p core.Vec2, r float64, b core.Bounds) bool {
	return p.X >= r && p.X <= b.W-r && p.Y >= r && p.Y <= b.H-r
}

func TestPropertyEntitiesStayInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New(config.DefaultArenaConfig(), testRuntime(rapid.Int64().Draw(t, "seed")))
		b := e.world.Bounds
		steps := rapid.IntRange(1, 400).Draw(t, "steps")

		for i := 1; i <= steps; i++ {
			snap := e.Step(drawInput(t, b), frameTime(i))

			if !inCircleBounds(snap.Player.Pos, snap.Player.Radius, b) {
				t.Fatalf("tick %d: player %v out of bounds", i, snap.Player.Pos)
			}
			if snap.Enemy != nil && !inCircleBounds(snap.Enemy.Pos, snap.Enemy.Radius, b) {
				t.Fatalf("tick %d: enemy %v out of bounds", i, snap.Enemy.Pos)
			}
			for _, s := range append(snap.PlayerShots, snap.EnemyShots...) {
				if !b.Contains(s.Pos) {
					t.Fatalf("tick %d: projectile retained outside bounds at %v", i, s.Pos)
				}
			}
			if snap.Player.Lives < 0 || (snap.Enemy != nil && snap.Enemy.Lives < 0) {
				t.Fatalf("tick %d: negative lives", i)
			}
		}
	})
}

func TestPropertyMovementSpeedIsConstant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := Direction(rapid.IntRange(1, 15).Draw(t, "dir"))
		speed := rapid.Float64Range(0.1, 50).Draw(t, "speed")

		got := displacement(d, speed).Len()
		if d.Vector().LenSq() == 0 {
			if got != 0 {
				t.Fatalf("cancelling directions moved %f", got)
			}
			return
		}
		if math.Abs(got-speed) > 1e-9*speed {
			t.Fatalf("|displacement| = %f, expected %f", got, speed)
		}
	})
}

func TestPropertyInvinciblePlayerKeepsLives(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New(config.DefaultArenaConfig(), testRuntime(rapid.Int64().Draw(t, "seed")))
		b := e.world.Bounds
		steps := rapid.IntRange(1, 400).Draw(t, "steps")

		for i := 1; i <= steps; i++ {
			before := e.Snapshot()
			in := drawInput(t, b)
			after := e.Step(in, frameTime(i))

			// The window must survive this tick's decay to still protect
			protected := before.Player.Invincible && before.Player.FlashPhase > e.tick
			if protected && after.Player.Lives < before.Player.Lives {
				t.Fatalf("tick %d: invincible player lost a life", i)
			}
			if before.Player.Lives-after.Player.Lives > 1 {
				t.Fatalf("tick %d: lost %d lives in one tick", i, before.Player.Lives-after.Player.Lives)
			}
		}
	})
}

func TestPropertyScoreTracksKills(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New(config.DefaultArenaConfig(), testRuntime(rapid.Int64().Draw(t, "seed")))
		b := e.world.Bounds
		steps := rapid.IntRange(1, 300).Draw(t, "steps")

		prevScore := 0
		for i := 1; i <= steps; i++ {
			snap := e.Step(drawInput(t, b), frameTime(i))
			if snap.Score < prevScore {
				t.Fatalf("tick %d: score decreased from %d to %d", i, prevScore, snap.Score)
			}
			if snap.Score != snap.Kills*e.cfg.Scoring.KillReward {
				t.Fatalf("tick %d: score %d does not match %d kills", i, snap.Score, snap.Kills)
			}
			prevScore = snap.Score
		}
	})
}
