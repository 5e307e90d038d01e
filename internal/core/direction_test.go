package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		opp := d.Opposite()
		if opp == d {
			t.Errorf("%v.Opposite() returned itself", d)
		}
		if opp.Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, opp.Opposite())
		}

		dx, dy := d.Vector()
		ox, oy := opp.Vector()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and %v vectors are not negations", d, opp)
		}
	}
}

func TestDirectionVectorsAreUnit(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Vector()
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v vector (%d,%d) is not a unit step", d, dx, dy)
		}
	}
}

func TestDirectionZeroValueIsUp(t *testing.T) {
	var d Direction
	if d != DirUp {
		t.Errorf("zero Direction = %v, expected up", d)
	}
}

func TestDirectionValid(t *testing.T) {
	if Direction(7).Valid() {
		t.Error("Direction(7) should be invalid")
	}
	if dx, dy := Direction(7).Vector(); dx != 0 || dy != 0 {
		t.Error("invalid direction should have a zero vector")
	}
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
