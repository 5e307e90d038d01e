package core

import "testing"

func TestCellAdd(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		expected Cell
	}{
		{"up", DirUp, Cell{X: 7, Y: 6}},
		{"down", DirDown, Cell{X: 7, Y: 8}},
		{"left", DirLeft, Cell{X: 6, Y: 7}},
		{"right", DirRight, Cell{X: 8, Y: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Cell{X: 7, Y: 7}.Add(tc.dir)
			if result != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, result, tc.expected)
			}
		})
	}
}

func TestBoardContains(t *testing.T) {
	b := NewBoard(15)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{X: 0, Y: 0}, true},
		{"center", Cell{X: 7, Y: 7}, true},
		{"bottom-right corner", Cell{X: 14, Y: 14}, true},
		{"left of board", Cell{X: -1, Y: 0}, false},
		{"above board", Cell{X: 0, Y: -1}, false},
		{"right edge (exclusive)", Cell{X: 15, Y: 3}, false},
		{"bottom edge (exclusive)", Cell{X: 3, Y: 15}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := b.Contains(tc.cell); result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, result, tc.expected)
			}
		})
	}
}

func TestBoardCenter(t *testing.T) {
	if c := NewBoard(15).Center(); c != (Cell{X: 7, Y: 7}) {
		t.Errorf("Center() = %v, expected (7,7)", c)
	}
	if c := NewBoard(4).Center(); c != (Cell{X: 2, Y: 2}) {
		t.Errorf("Center() = %v, expected (2,2)", c)
	}
}

func TestBoardFreeCells(t *testing.T) {
	b := NewBoard(3)
	occupied := []Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}

	free := b.FreeCells(occupied)
	if len(free) != b.Area()-len(occupied) {
		t.Fatalf("FreeCells returned %d cells, expected %d", len(free), b.Area()-len(occupied))
	}
	for _, c := range free {
		if ContainsCell(occupied, c) {
			t.Errorf("FreeCells returned occupied cell %v", c)
		}
		if !b.Contains(c) {
			t.Errorf("FreeCells returned out-of-bounds cell %v", c)
		}
	}

	// Row-major order
	if free[0] != (Cell{X: 1, Y: 0}) {
		t.Errorf("first free cell = %v, expected (1,0)", free[0])
	}
}

func TestBoardFreeCellsFull(t *testing.T) {
	b := NewBoard(2)
	all := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if free := b.FreeCells(all); len(free) != 0 {
		t.Errorf("FreeCells on a full board = %v, expected none", free)
	}
}

func TestContainsCell(t *testing.T) {
	cells := []Cell{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if !ContainsCell(cells, Cell{X: 3, Y: 4}) {
		t.Error("ContainsCell should find (3,4)")
	}
	if ContainsCell(cells, Cell{X: 4, Y: 3}) {
		t.Error("ContainsCell should not find (4,3)")
	}
	if ContainsCell(nil, Cell{}) {
		t.Error("ContainsCell on nil slice should be false")
	}
}
