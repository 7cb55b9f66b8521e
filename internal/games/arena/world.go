package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// SessionState is the top-level mode gating the simulation systems.
type SessionState int

const (
	Running SessionState = iota
	Paused
	GameOver
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// World owns every entity of one session: exactly one player, at most one
// enemy and the two projectile collections.
type World struct {
	Bounds core.Bounds
	Tick   uint64

	Player      Player
	Enemy       *Enemy
	PlayerShots []Projectile
	EnemyShots  []Projectile

	Score int
	Kills int
	State SessionState
}
