package arena

import (
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// cooledDown reports whether a shooter may fire again at now.
// A zero last shot always passes.
func cooledDown(last, now time.Time, cooldown time.Duration) bool {
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > cooldown
}

// playerFire spawns a player projectile if the cooldown allows it.
// Requests inside the cooldown window are ignored.
func (e *Engine) playerFire(now time.Time) bool {
	p := &e.world.Player
	if !cooledDown(p.LastShot, now, p.Cooldown) {
		return false
	}
	shot := newProjectile(p.Pos, p.Angle, e.cfg.Projectile.Speed, FactionPlayer)
	e.world.PlayerShots = append(e.world.PlayerShots, shot)
	p.LastShot = now
	return true
}

// advanceShots moves every projectile one tick along its direction and drops
// those that left the world. Filtering happens after movement, so no
// out-of-bounds projectile reaches collision testing.
func advanceShots(shots []Projectile, b core.Bounds) []Projectile {
	kept := shots[:0]
	for _, s := range shots {
		s.Pos = s.Pos.Add(s.dir.Scale(s.Speed))
		if !b.Contains(s.Pos) {
			continue
		}
		kept = append(kept, s)
	}
	clear(shots[len(kept):])
	return kept
}

func (e *Engine) advanceProjectiles() {
	e.world.PlayerShots = advanceShots(e.world.PlayerShots, e.world.Bounds)
	e.world.EnemyShots = advanceShots(e.world.EnemyShots, e.world.Bounds)
}
