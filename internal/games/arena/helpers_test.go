package arena

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// frameTime returns the clock reading of tick i at 60 ticks per second.
func frameTime(i int) time.Time {
	return testEpoch.Add(time.Duration(i) * (time.Second / 60))
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestEngine(t testing.TB) *Engine {
	t.Helper()
	return New(config.DefaultArenaConfig(), testRuntime(1))
}

// quietEnemy parks the enemy in a corner with a fresh cooldown so it does
// not interfere with the behaviour under test.
func quietEnemy(e *Engine, now time.Time) {
	en := e.world.Enemy
	en.Pos = core.V(en.Radius, en.Radius)
	en.LastShot = now
	en.Cooldown = time.Hour
}
