package arena

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestNewStartsRunning(t *testing.T) {
	e := newTestEngine(t)
	snap := e.Snapshot()

	if snap.State != Running {
		t.Errorf("state = %v, expected Running", snap.State)
	}
	if snap.Player.Pos != snap.Bounds.Center() {
		t.Errorf("player at %v, expected centre %v", snap.Player.Pos, snap.Bounds.Center())
	}
	if snap.Enemy == nil {
		t.Fatal("expected an enemy")
	}
	if core.Dist(snap.Enemy.Pos, snap.Player.Pos) < e.cfg.Enemy.SpawnClearance {
		t.Errorf("enemy spawned too close: %v", snap.Enemy.Pos)
	}
}

func TestResetClearsState(t *testing.T) {
	e := newTestEngine(t)

	// Play a while with movement and fire
	for i := 1; i <= 300; i++ {
		in := Input{Dir: DirRight | DirDown, Aim: core.V(0, 0), Fire: i%5 == 0}
		e.Step(in, frameTime(i))
	}
	e.world.Score = 700
	e.world.Player.Lives = 1

	snap := e.Reset()

	if snap.Score != 0 || snap.Kills != 0 {
		t.Errorf("score = %d kills = %d, expected 0", snap.Score, snap.Kills)
	}
	if snap.Player.Lives != e.cfg.Player.Lives {
		t.Errorf("lives = %d, expected %d", snap.Player.Lives, e.cfg.Player.Lives)
	}
	if len(snap.PlayerShots) != 0 || len(snap.EnemyShots) != 0 {
		t.Error("reset should clear all projectiles")
	}
	if snap.State != Running || snap.Tick != 0 {
		t.Errorf("state = %v tick = %d, expected Running at 0", snap.State, snap.Tick)
	}
	if snap.Player.Invincible {
		t.Error("reset should clear invincibility")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	e := newTestEngine(t)
	e.world.Player.Lives = 1
	e.damagePlayer()
	if e.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", e.State())
	}

	if snap := e.Reset(); snap.State != Running {
		t.Errorf("reset should leave GameOver, got %v", snap.State)
	}
}

func TestPauseTwiceLeavesWorldUnchanged(t *testing.T) {
	e := newTestEngine(t)
	for i := 1; i <= 30; i++ {
		e.Step(Input{Dir: DirLeft, Aim: core.V(0, 0), Fire: true}, frameTime(i))
	}
	before := e.Snapshot()

	s1 := e.Step(Input{Pause: true, Dir: DirUp, Fire: true}, frameTime(31))
	if s1.State != Paused {
		t.Fatalf("state = %v, expected Paused", s1.State)
	}
	s2 := e.Step(Input{Pause: true, Dir: DirUp, Fire: true}, frameTime(32))
	if s2.State != Running {
		t.Fatalf("state = %v, expected Running", s2.State)
	}

	if !reflect.DeepEqual(before, s2) {
		t.Errorf("world changed across a pause round trip:\nbefore %+v\nafter  %+v", before, s2)
	}
}

func TestPausedSkipsSystems(t *testing.T) {
	e := newTestEngine(t)
	e.Step(Input{Aim: core.V(0, 0), Fire: true}, frameTime(1))
	e.Step(Input{Pause: true}, frameTime(2))
	before := e.Snapshot()

	for i := 3; i < 100; i++ {
		snap := e.Step(Input{Dir: DirRight, Aim: core.V(800, 600), Fire: true}, frameTime(i))
		if snap.State != Paused {
			t.Fatalf("tick %d: state = %v", i, snap.State)
		}
	}
	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("paused world must not change")
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	e := newTestEngine(t)
	e.Step(Input{Aim: core.V(0, 0), Fire: true}, frameTime(1))
	e.world.Player.Lives = 1
	e.damagePlayer()
	frozen := e.Snapshot()

	for i := 2; i < 60; i++ {
		snap := e.Step(Input{Dir: DirDown, Fire: true, Pause: i%2 == 0}, frameTime(i))
		if snap.State != GameOver {
			t.Fatalf("tick %d: GameOver must latch, got %v", i, snap.State)
		}
	}
	if !reflect.DeepEqual(frozen, e.Snapshot()) {
		t.Error("no mutation is allowed after GameOver")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := newTestEngine(t)
	e.Step(Input{Aim: core.V(0, 0), Fire: true}, frameTime(1))

	snap := e.Snapshot()
	if len(snap.PlayerShots) == 0 || snap.Enemy == nil {
		t.Fatal("expected a shot and an enemy")
	}
	snap.PlayerShots[0].Pos = core.V(-1, -1)
	snap.Enemy.Lives = 99

	fresh := e.Snapshot()
	if fresh.PlayerShots[0].Pos == core.V(-1, -1) || fresh.Enemy.Lives == 99 {
		t.Error("mutating a snapshot leaked into the engine")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]Input, 600)
	for i := range inputs {
		inputs[i] = Input{
			Dir:  Direction(i/40) % 16,
			Aim:  core.V(float64(i%800), float64((i*7)%600)),
			Fire: i%9 == 0,
		}
	}

	run := func() Snapshot {
		e := New(config.DefaultArenaConfig(), testRuntime(12345))
		var snap Snapshot
		for i, in := range inputs {
			snap = e.Step(in, frameTime(i+1))
		}
		return snap
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestSessionStateString(t *testing.T) {
	tests := map[SessionState]string{
		Running:          "Running",
		Paused:           "Paused",
		GameOver:         "GameOver",
		SessionState(42): "Unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, expected %q", s, s.String(), want)
		}
	}
}
