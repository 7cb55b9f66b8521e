package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one arena session.
// It owns the engine and feeds it one decoded Input per tick.
type Model struct {
	engine  *arena.Engine
	decoder *inputDecoder
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	view    viewport
	viewOK  bool
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig

	player   string
	runID    uuid.UUID
	snap     arena.Snapshot
	best     int
	saved    bool // Whether the finished run has been recorded
	quitting bool
}

// NewModel creates a model for a fresh session. store and logger may be nil.
func NewModel(cfg config.ArenaConfig, store *storage.Store, rt core.RuntimeConfig, player string, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine := arena.New(cfg, rt)
	m := Model{
		engine:  engine,
		decoder: newInputDecoder(rt.TickRate),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		store:   store,
		logger:  logger,
		config:  rt,
		player:  player,
		runID:   uuid.New(),
		snap:    engine.Snapshot(),
	}
	m.help.Width = rt.ScreenW
	m.view, m.viewOK = newViewport(m.snap.Bounds, m.screen.Width(), m.screen.Height())

	if store != nil {
		if best, err := store.HighScore(arena.ID); err == nil {
			m.best = best
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.snap.State == arena.GameOver {
			m.restart()
		}
	default:
		m.decoder.press(a)
	}

	return m, nil
}

// handleMouse aims at the pointer; a left press also fires.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.decoder.pointAt(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.decoder.press(core.ActionFire)
	}
	return m, nil
}

// handleResize refits the field. The world keeps its size, so the session
// continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.view, m.viewOK = newViewport(m.snap.Bounds, m.screen.Width(), m.screen.Height())
	return m, nil
}

// handleTick advances the engine by one step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.decoder.next(m.snap, m.view)
	m.snap = m.engine.Step(in, now)

	if m.snap.State == arena.GameOver && !m.saved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a new run ID.
func (m *Model) restart() {
	m.snap = m.engine.Reset()
	m.runID = uuid.New()
	m.saved = false
	m.decoder.release()
	m.logger.Debug("run started", "run", m.runID)
}

// saveRun records the finished run once. Storage errors are logged and the
// session carries on.
func (m *Model) saveRun() {
	m.saved = true
	played := time.Duration(m.snap.Tick) * m.config.TickDuration()
	m.best = max(m.best, m.snap.Score)

	m.logger.Info("run finished",
		"run", m.runID,
		"player", m.player,
		"score", m.snap.Score,
		"kills", m.snap.Kills,
		"played", played,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:    m.runID,
		GameID:   arena.ID,
		Player:   m.player,
		Score:    m.snap.Score,
		Kills:    m.snap.Kills,
		Duration: played,
	})
	if err != nil {
		m.logger.Error("could not save run", "run", m.runID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", arena.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	if !m.viewOK {
		drawTooSmall(m.screen)
		return
	}
	drawSnapshot(m.screen, m.snap, m.view, m.best)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program for one player.
func Run(cfg config.ArenaConfig, store *storage.Store, rt core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(cfg, store, rt, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
