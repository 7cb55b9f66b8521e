package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// aim points the player at the camera-corrected target and the enemy at the
// player. Both are recomputed every running tick.
func (e *Engine) aim(target core.Vec2) {
	p := &e.world.Player
	p.Angle = core.AngleTo(p.Pos, target)

	if en := e.world.Enemy; en != nil {
		en.Angle = core.AngleTo(en.Pos, p.Pos)
	}
}
