package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightCyan:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// The player is hidden on odd half-periods of the invincibility window.
const blinkPeriod = 200 * time.Millisecond

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawSnapshot paints one frame of the arena into scr.
func drawSnapshot(scr *core.Screen, snap arena.Snapshot, v viewport, best int) {
	scr.Clear()

	drawHUD(scr, snap, best)
	scr.DrawBox(v.frame(), core.ColorGray)

	for _, s := range snap.PlayerShots {
		x, y := v.toCell(s.Pos)
		scr.SetColored(x, y, '•', core.ColorYellow)
	}
	for _, s := range snap.EnemyShots {
		x, y := v.toCell(s.Pos)
		scr.SetColored(x, y, '*', core.ColorOrange)
	}

	if en := snap.Enemy; en != nil {
		drawBody(scr, v, en.Pos, en.Radius, core.ColorRed)
		x, y := v.toCell(en.Pos)
		scr.SetColored(x, y, 'E', core.ColorBrightRed)
	}

	if playerVisible(snap.Player) {
		p := snap.Player
		drawBody(scr, v, p.Pos, p.Radius, core.ColorCyan)
		mx, my := v.toCell(p.Pos.Add(core.FromAngle(p.Angle).Scale(p.Radius + v.unit)))
		scr.SetColored(mx, my, '+', core.ColorBrightWhite)
		x, y := v.toCell(p.Pos)
		scr.SetColored(x, y, '@', core.ColorBrightCyan)
	}

	switch snap.State {
	case arena.Paused:
		drawBanner(scr, v, core.ColorYellow, "PAUSED", "p to resume")
	case arena.GameOver:
		drawBanner(scr, v, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score %d  Kills %d", snap.Score, snap.Kills),
			"r restart  q quit")
	}
}

// playerVisible implements the invincibility blink.
func playerVisible(p arena.PlayerView) bool {
	if !p.Invincible {
		return true
	}
	return (p.FlashPhase/(blinkPeriod/2))%2 == 0
}

// drawBody shades every field cell whose centre lies inside the circle.
func drawBody(scr *core.Screen, v viewport, pos core.Vec2, r float64, c core.Color) {
	x0, y0 := v.toCell(core.V(pos.X-r, pos.Y-r))
	x1, y1 := v.toCell(core.V(pos.X+r, pos.Y+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.DistSq(v.toWorld(x, y), pos) <= r*r {
				scr.SetColored(x, y, '░', c)
			}
		}
	}
}

func drawHUD(scr *core.Screen, snap arena.Snapshot, best int) {
	lives := strings.Repeat("♥", max(snap.Player.Lives, 0))
	scr.DrawTextColored(1, 0, "ARENA", core.ColorBrightWhite)
	scr.DrawTextColored(8, 0, fmt.Sprintf("Score %d  Kills %d  Best %d", snap.Score, snap.Kills, max(best, snap.Score)), core.ColorWhite)

	text := "Lives " + lives
	scr.DrawTextColored(scr.Width()-len([]rune(text))-1, 0, text, core.ColorRed)

	if en := snap.Enemy; en != nil {
		etext := fmt.Sprintf("Enemy %d", en.Lives)
		scr.DrawTextColored(scr.Width()-len([]rune(text))-len(etext)-3, 0, etext, core.ColorOrange)
	}
}

// drawBanner draws a boxed message centred on the field.
func drawBanner(scr *core.Screen, v viewport, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = v.field.X + (v.field.W-box.W)/2
	box.Y = v.field.Y + (v.field.H-box.H)/2

	scr.DrawRect(box, ' ')
	scr.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		scr.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

// drawTooSmall is shown when the terminal cannot fit the field.
func drawTooSmall(scr *core.Screen) {
	scr.Clear()
	msg := "terminal too small"
	scr.DrawTextColored(max((scr.Width()-len(msg))/2, 0), scr.Height()/2, msg, core.ColorYellow)
}
