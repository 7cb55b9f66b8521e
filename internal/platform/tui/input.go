package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
)

// Terminals report key presses and auto-repeat but never key releases, so a
// direction counts as held until holdWindow passes without a new press.
const holdWindow = 200 * time.Millisecond

const (
	aimStep = math.Pi / 16
	// Keyboard aim targets a point far along the facing so the player's
	// own movement this tick does not bend the angle.
	aimReach = 10000.0
)

// inputDecoder turns the stream of key and mouse events between two ticks
// into one arena.Input.
type inputDecoder struct {
	holdTicks uint64
	frame     uint64
	held      map[arena.Direction]uint64 // last frame each direction stays held
	edges     core.InputFrame

	mouseX, mouseY int
	hasMouse       bool

	keyboardAim bool
	aimAngle    float64
	rotate      int
}

func newInputDecoder(tickRate int) *inputDecoder {
	rt := core.RuntimeConfig{TickRate: tickRate}
	ticks := uint64(holdWindow / rt.TickDuration())
	if ticks == 0 {
		ticks = 1
	}
	return &inputDecoder{
		holdTicks: ticks,
		held:      make(map[arena.Direction]uint64),
		edges:     core.NewInputFrame(),
	}
}

var actionDirs = map[core.Action]arena.Direction{
	core.ActionUp:    arena.DirUp,
	core.ActionDown:  arena.DirDown,
	core.ActionLeft:  arena.DirLeft,
	core.ActionRight: arena.DirRight,
}

var oppositeDir = map[arena.Direction]arena.Direction{
	arena.DirUp:    arena.DirDown,
	arena.DirDown:  arena.DirUp,
	arena.DirLeft:  arena.DirRight,
	arena.DirRight: arena.DirLeft,
}

// press records a key action. Directions refresh their hold deadline and
// release the opposite direction; everything else is an edge for the next tick.
func (d *inputDecoder) press(a core.Action) {
	if dir, ok := actionDirs[a]; ok {
		d.held[dir] = d.frame + d.holdTicks
		delete(d.held, oppositeDir[dir])
		return
	}

	switch a {
	case core.ActionAimCCW:
		d.rotate--
	case core.ActionAimCW:
		d.rotate++
	case core.ActionNone:
	default:
		d.edges.Set(a)
	}
}

// pointAt records the mouse cell. Mouse aim takes over from keyboard aim.
func (d *inputDecoder) pointAt(x, y int) {
	d.mouseX, d.mouseY = x, y
	d.hasMouse = true
	d.keyboardAim = false
}

// release drops every held direction and pending edge, used on restart.
func (d *inputDecoder) release() {
	clear(d.held)
	d.edges.Clear()
	d.rotate = 0
}

// next builds the input for the coming tick from the last snapshot and the
// current viewport, then clears the edges.
func (d *inputDecoder) next(snap arena.Snapshot, v viewport) arena.Input {
	d.frame++

	var in arena.Input
	for dir, until := range d.held {
		if d.frame > until {
			delete(d.held, dir)
			continue
		}
		in.Dir |= dir
	}

	if d.rotate != 0 {
		if !d.keyboardAim {
			d.aimAngle = snap.Player.Angle
			d.keyboardAim = true
		}
		d.aimAngle += float64(d.rotate) * aimStep
		d.rotate = 0
	}

	switch {
	case d.keyboardAim:
		in.Aim = snap.Player.Pos.Add(core.FromAngle(d.aimAngle).Scale(aimReach))
	case d.hasMouse:
		in.Aim = v.toWorld(d.mouseX, d.mouseY)
	default:
		in.Aim = snap.Player.Pos.Add(core.FromAngle(snap.Player.Angle).Scale(aimReach))
	}

	in.Fire = d.edges.Has(core.ActionFire)
	in.Pause = d.edges.Has(core.ActionPause)
	d.edges.Clear()

	return in
}
