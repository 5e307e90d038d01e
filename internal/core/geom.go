// Package core provides fundamental types shared by the snake rules and the hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is an integer coordinate on the board grid.
// X grows to the right, Y grows downward.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ContainsCell reports whether c appears in cells.
func ContainsCell(cells []Cell, c Cell) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Board is a square grid of Size x Size cells.
type Board struct {
	Size int
}

// NewBoard creates a board with the given side length.
func NewBoard(size int) Board {
	return Board{Size: size}
}

// Contains returns true if c lies within [0, Size) on both axes.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Size && c.Y >= 0 && c.Y < b.Size
}

// Area returns the total number of cells on the board.
func (b Board) Area() int {
	return b.Size * b.Size
}

// Center returns the middle cell, rounding toward the top-left.
func (b Board) Center() Cell {
	return Cell{X: b.Size / 2, Y: b.Size / 2}
}

// FreeCells lists every board cell not present in occupied, in row-major order.
func (b Board) FreeCells(occupied []Cell) []Cell {
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	free := make([]Cell, 0, b.Area()-len(taken))
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
