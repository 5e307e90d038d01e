// Package snake implements the single-player snake rules: an immutable game
// state, the pure transitions that advance it, and an Engine that owns one
// state and serializes ticks and input on a single goroutine.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Status is the state machine phase of a game.
type Status string

const (
	StatusRunning  Status = "running"
	StatusGameOver Status = "game_over"
	StatusWon      Status = "won"
)

// NoFood marks the food slot when the board has no free cell left.
var NoFood = core.Cell{X: -1, Y: -1}

// State is one complete, immutable game state.
// Transitions return a new State; the Snake slice of an existing State is
// never written to, so a State may be shared freely between goroutines.
type State struct {
	Snake     []core.Cell    // Head at index 0
	Direction core.Direction // Committed direction, applied by the last tick
	Pending   core.Direction // Direction the next tick will apply
	Food      core.Cell
	Score     int
	GameOver  bool
	Won       bool // Set together with GameOver when the snake fills the board
	Ticks     uint64
}

// Head returns the first snake segment.
func (s State) Head() core.Cell {
	if len(s.Snake) == 0 {
		return NoFood
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s State) Len() int {
	return len(s.Snake)
}

// Status returns the state machine phase.
func (s State) Status() Status {
	switch {
	case s.Won:
		return StatusWon
	case s.GameOver:
		return StatusGameOver
	default:
		return StatusRunning
	}
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Snake     []core.Cell `json:"snake"`
	Food      core.Cell   `json:"food"`
	Score     int         `json:"score"`
	GameOver  bool        `json:"gameOver"`
	Won       bool        `json:"won"`
	Direction string      `json:"direction"`
	BoardSize int         `json:"boardSize"`
	Tick      uint64      `json:"tick"`
}

// Snapshot copies the state into a renderer-facing view.
func (s State) Snapshot(boardSize int) Snapshot {
	body := make([]core.Cell, len(s.Snake))
	copy(body, s.Snake)

	return Snapshot{
		Snake:     body,
		Food:      s.Food,
		Score:     s.Score,
		GameOver:  s.GameOver,
		Won:       s.Won,
		Direction: s.Direction.String(),
		BoardSize: boardSize,
		Tick:      s.Ticks,
	}
}

// Head returns the first snake segment of the snapshot.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return NoFood
	}
	return s.Snake[0]
}
