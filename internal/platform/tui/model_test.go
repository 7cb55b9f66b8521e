package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var modelEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// send feeds one message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, i int) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(modelEpoch.Add(time.Duration(i)*time.Second/60)))
	return m
}

func TestModelTickAdvancesEngine(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)

	for i := 1; i <= 5; i++ {
		m = tick(t, m, i)
	}
	if m.snap.Tick != 5 {
		t.Errorf("tick = %d, expected 5", m.snap.Tick)
	}
}

func TestModelPauseToggle(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)
	m = tick(t, m, 1)

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, 2)
	if m.snap.State != arena.Paused {
		t.Fatalf("state = %v, expected Paused", m.snap.State)
	}
	frozen := m.snap.Tick

	for i := 3; i < 10; i++ {
		m = tick(t, m, i)
	}
	if m.snap.Tick != frozen {
		t.Error("paused engine should not advance")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 10)
	if m.snap.State != arena.Running {
		t.Errorf("state = %v, expected Running", m.snap.State)
	}
}

func TestModelMovesWithHeldKey(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)
	start := m.snap.Player.Pos

	m, _ = send(t, m, runeKey('d'))
	m = tick(t, m, 1)
	m = tick(t, m, 2)

	if got := m.snap.Player.Pos.X - start.X; got != 2*config.DefaultArenaConfig().Player.Speed {
		t.Errorf("moved %f, expected two steps", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)
	for i := 1; i <= 3; i++ {
		m = tick(t, m, i)
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.snap.Tick != 3 {
		t.Error("resize must not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 6, Height: 4})
	if m.viewOK {
		t.Error("tiny window should not fit the field")
	}
	if m.View() == "" {
		t.Error("view should still render a message")
	}
}

func TestModelSavesRunOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// One life: the enemy's first shot at the stationary player ends the run
	cfg := config.DefaultArenaConfig()
	cfg.Player.Lives = 1
	m := NewModel(cfg, store, testRuntimeConfig(), "tester", nil)
	runID := m.runID

	i := 1
	for ; i < 2000 && m.snap.State != arena.GameOver; i++ {
		m = tick(t, m, i)
	}
	if m.snap.State != arena.GameOver {
		t.Fatal("expected the enemy to end the run")
	}
	for j := 0; j < 10; j++ {
		m = tick(t, m, i+j)
	}

	scores, err := store.TopScores(arena.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected the run saved once, got %d rows", len(scores))
	}
	if scores[0].RunID != runID || scores[0].Player != "tester" {
		t.Errorf("unexpected saved run: %+v", scores[0])
	}
	if scores[0].Duration <= 0 {
		t.Error("played time should be recorded")
	}

	m, _ = send(t, m, runeKey('r'))
	if m.snap.State != arena.Running {
		t.Errorf("restart should resume play, got %v", m.snap.State)
	}
	if m.runID == runID || m.runID == uuid.Nil {
		t.Error("restart should start a new run ID")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := NewModel(config.DefaultArenaConfig(), nil, testRuntimeConfig(), "tester", nil)
	m = tick(t, m, 1)
	runID := m.runID

	m, _ = send(t, m, runeKey('r'))
	if m.runID != runID || m.snap.Tick != 1 {
		t.Error("r must only restart after game over")
	}
}
