package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// Direction is a set of independent directional flags. Any combination is
// allowed; opposing flags cancel out.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Has reports whether all flags in d2 are set.
func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

// Vector combines the active flags into an unnormalized intent vector.
// Screen convention: y grows downward.
func (d Direction) Vector() core.Vec2 {
	var v core.Vec2
	if d.Has(DirUp) {
		v.Y--
	}
	if d.Has(DirDown) {
		v.Y++
	}
	if d.Has(DirLeft) {
		v.X--
	}
	if d.Has(DirRight) {
		v.X++
	}
	return v
}

// displacement returns the per-tick movement for an intent. Diagonals are
// normalized so every non-zero displacement has length speed.
func displacement(d Direction, speed float64) core.Vec2 {
	v := d.Vector()
	if v.LenSq() == 0 {
		return core.Vec2{}
	}
	return v.Normalize().Scale(speed)
}

// move applies an intent to a position and clamps the result so the circle
// stays inside the world.
func move(pos core.Vec2, d Direction, speed, radius float64, b core.Bounds) core.Vec2 {
	return b.ClampCircle(pos.Add(displacement(d, speed)), radius)
}

func (e *Engine) movePlayer(d Direction) {
	p := &e.world.Player
	p.Pos = move(p.Pos, d, p.Speed, p.Radius, e.world.Bounds)
}

// clampEnemy keeps the stationary enemy inside the world.
func (e *Engine) clampEnemy() {
	if en := e.world.Enemy; en != nil {
		en.Pos = e.world.Bounds.ClampCircle(en.Pos, en.Radius)
	}
}
