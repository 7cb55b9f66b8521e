package tui

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Screen rows reserved outside the field: HUD plus the two border rows.
const chromeRows = 3

// viewport maps world coordinates onto the play field of the terminal and
// back. The field keeps the world's aspect ratio and is centred on screen.
type viewport struct {
	field core.Rect // play area in cells, inside the border
	unit  float64   // world units per column; a row spans unit*cellAspect
}

// newViewport fits bounds into a screen of w×h cells. ok is false when the
// terminal is too small to draw anything useful.
func newViewport(b core.Bounds, w, h int) (v viewport, ok bool) {
	cols := w - 2
	rows := h - chromeRows
	if cols < 10 || rows < 5 || b.W <= 0 || b.H <= 0 {
		return viewport{}, false
	}

	unit := math.Max(b.W/float64(cols), b.H/(float64(rows)*cellAspect))
	fw := core.Clamp(int(math.Ceil(b.W/unit)), 1, cols)
	fh := core.Clamp(int(math.Ceil(b.H/(unit*cellAspect))), 1, rows)

	x := 1 + (cols-fw)/2
	y := 2 + (rows-fh)/2
	return viewport{field: core.NewRect(x, y, fw, fh), unit: unit}, true
}

// frame is the border rectangle drawn around the field.
func (v viewport) frame() core.Rect {
	return core.NewRect(v.field.X-1, v.field.Y-1, v.field.W+2, v.field.H+2)
}

// toCell returns the field cell containing p, clamped to the field.
func (v viewport) toCell(p core.Vec2) (x, y int) {
	cx := int(math.Floor(p.X / v.unit))
	cy := int(math.Floor(p.Y / (v.unit * cellAspect)))
	return v.field.X + core.Clamp(cx, 0, v.field.W-1),
		v.field.Y + core.Clamp(cy, 0, v.field.H-1)
}

// toWorld returns the world point at the centre of screen cell (x, y).
// Cells outside the field map to points outside the world.
func (v viewport) toWorld(x, y int) core.Vec2 {
	return core.V(
		(float64(x-v.field.X)+0.5)*v.unit,
		(float64(y-v.field.Y)+0.5)*v.unit*cellAspect,
	)
}
