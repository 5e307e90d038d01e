package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Classic game parameters.
const (
	DefaultBoardSize    = 15
	DefaultTickInterval = time.Second
)

// Rules holds the parameters of the transition functions.
// All methods are pure: they never modify the State they are given.
type Rules struct {
	BoardSize int
	Food      FoodStrategy

	// TailChase allows a non-growth move into the current tail cell.
	// Off by default: the collision check runs against the whole pre-move
	// body, so entering the tail cell ends the game even though the tail
	// would have moved away on the same tick.
	TailChase bool
}

// DefaultRules returns the classic 15x15 rules.
func DefaultRules() Rules {
	return Rules{
		BoardSize: DefaultBoardSize,
		Food:      FoodAuto,
	}
}

// RulesFromConfig builds Rules from a loaded configuration.
func RulesFromConfig(cfg config.SnakeConfig) (Rules, error) {
	food, err := ParseFoodStrategy(cfg.Board.FoodStrategy)
	if err != nil {
		return Rules{}, err
	}
	if cfg.Board.Size < config.MinBoardSize {
		return Rules{}, fmt.Errorf("snake: board size %d is too small", cfg.Board.Size)
	}
	return Rules{
		BoardSize: cfg.Board.Size,
		Food:      food,
		TailChase: cfg.Rules.TailChase,
	}, nil
}

// Board returns the board described by the rules.
func (r Rules) Board() core.Board {
	return core.NewBoard(r.BoardSize)
}

// Reset returns a fresh game: a one-cell snake at the board center heading
// up, score zero, and food on a random free cell.
func (r Rules) Reset(rng *rand.Rand) State {
	board := r.Board()
	snake := []core.Cell{board.Center()}

	// A board of at least 2x2 always has a free cell next to a single head.
	food, err := PlaceFood(rng, board, snake, r.Food)
	if err != nil {
		food = NoFood
	}

	return State{
		Snake:     snake,
		Direction: core.DirUp,
		Pending:   core.DirUp,
		Food:      food,
	}
}

// Steer records d as the direction for the next tick.
// With more than one segment a reversal of the committed direction is
// rejected. The latest accepted call before a tick wins.
// Steering is ignored once the game is over.
func (r Rules) Steer(s State, d core.Direction) State {
	if s.GameOver || !d.Valid() {
		return s
	}
	if len(s.Snake) > 1 && d == s.Direction.Opposite() {
		return s
	}
	s.Pending = d
	return s
}

// Confirm restarts a finished game and leaves a running one untouched.
func (r Rules) Confirm(s State, rng *rand.Rand) State {
	if !s.GameOver {
		return s
	}
	return r.Reset(rng)
}

// Tick advances the game by one cell.
//
// The new head is the old head moved in the pending direction. Leaving the
// board or hitting the body ends the game with the snake untouched. Landing
// on food keeps the whole old body (growth) and places new food; any other
// move drops the last segment (shift).
func (r Rules) Tick(s State, rng *rand.Rand) State {
	if s.GameOver || len(s.Snake) == 0 {
		return s
	}

	board := r.Board()
	dir := s.Pending
	newHead := s.Snake[0].Add(dir)
	eats := newHead == s.Food

	if !board.Contains(newHead) || r.hitsBody(s.Snake, newHead, eats) {
		s.GameOver = true
		return s
	}

	var next []core.Cell
	if eats {
		next = make([]core.Cell, 0, len(s.Snake)+1)
		next = append(next, newHead)
		next = append(next, s.Snake...)

		food, err := PlaceFood(rng, board, next, r.Food)
		if errors.Is(err, ErrBoardFull) {
			s.GameOver = true
			s.Won = true
		}
		s.Food = food
		s.Score++
	} else {
		next = make([]core.Cell, 0, len(s.Snake))
		next = append(next, newHead)
		next = append(next, s.Snake[:len(s.Snake)-1]...)
	}

	s.Snake = next
	s.Direction = dir
	s.Ticks++
	return s
}

// hitsBody reports whether head collides with the pre-move body.
func (r Rules) hitsBody(body []core.Cell, head core.Cell, eats bool) bool {
	if r.TailChase && !eats && len(body) > 1 {
		body = body[:len(body)-1]
	}
	return core.ContainsCell(body, head)
}
