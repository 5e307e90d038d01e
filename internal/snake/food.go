package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodStrategy selects how a free cell is chosen for new food.
type FoodStrategy string

const (
	// FoodAuto samples on small boards and enumerates on large ones.
	FoodAuto FoodStrategy = "auto"
	// FoodSample draws random cells until one is free, falling back to
	// enumeration after a bounded number of misses.
	FoodSample FoodStrategy = "sample"
	// FoodEnumerate lists all free cells and picks one uniformly.
	FoodEnumerate FoodStrategy = "enumerate"
)

// sampleAreaLimit is the largest board area FoodAuto still samples on.
const sampleAreaLimit = 32 * 32

// sampleAttemptsPerCell bounds rejection sampling at this many draws per board cell.
const sampleAttemptsPerCell = 4

// ErrBoardFull is returned when every cell is occupied by the snake.
var ErrBoardFull = errors.New("snake: no free cell for food")

// ParseFoodStrategy converts a config value to a FoodStrategy.
func ParseFoodStrategy(s string) (FoodStrategy, error) {
	switch FoodStrategy(s) {
	case FoodAuto, FoodSample, FoodEnumerate:
		return FoodStrategy(s), nil
	case "":
		return FoodAuto, nil
	default:
		return "", fmt.Errorf("snake: unknown food strategy %q", s)
	}
}

// PlaceFood returns a uniformly random board cell not occupied by snake.
// Both strategies always terminate; ErrBoardFull is returned when the snake
// covers the board.
func PlaceFood(rng *rand.Rand, board core.Board, snake []core.Cell, strategy FoodStrategy) (core.Cell, error) {
	if len(snake) >= board.Area() {
		return NoFood, ErrBoardFull
	}

	if strategy == FoodAuto {
		strategy = FoodSample
		if board.Area() > sampleAreaLimit {
			strategy = FoodEnumerate
		}
	}

	if strategy == FoodSample {
		if c, ok := sampleFood(rng, board, snake); ok {
			return c, nil
		}
	}
	return enumerateFood(rng, board, snake)
}

// sampleFood draws random cells until one is free or the attempt budget runs out.
func sampleFood(rng *rand.Rand, board core.Board, snake []core.Cell) (core.Cell, bool) {
	attempts := board.Area() * sampleAttemptsPerCell
	for range attempts {
		c := core.Cell{X: rng.Intn(board.Size), Y: rng.Intn(board.Size)}
		if !core.ContainsCell(snake, c) {
			return c, true
		}
	}
	return NoFood, false
}

// enumerateFood picks uniformly among the free cells.
func enumerateFood(rng *rand.Rand, board core.Board, snake []core.Cell) (core.Cell, error) {
	free := board.FreeCells(snake)
	if len(free) == 0 {
		return NoFood, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
