package arena

import "time"

// enemyThink fires at the player on a fixed cadence. The direction is taken
// at fire time and never updated, so enemy shots do not home.
// The enemy does not move on its own; it only relocates on respawn.
func (e *Engine) enemyThink(now time.Time) bool {
	en := e.world.Enemy
	if en == nil {
		return false
	}
	if !cooledDown(en.LastShot, now, en.Cooldown) {
		return false
	}
	shot := newProjectile(en.Pos, en.Angle, e.cfg.Projectile.Speed, FactionEnemy)
	e.world.EnemyShots = append(e.world.EnemyShots, shot)
	en.LastShot = now
	return true
}
