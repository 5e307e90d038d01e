package core

import "testing"

func TestActionFromKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{"ArrowUp", ActionUp},
		{"ArrowDown", ActionDown},
		{"ArrowLeft", ActionLeft},
		{"ArrowRight", ActionRight},
		{"Enter", ActionConfirm},
		{"a", ActionNone},
		{"Escape", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if result := ActionFromKey(tc.key); result != tc.expected {
				t.Errorf("ActionFromKey(%q) = %v, expected %v", tc.key, result, tc.expected)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionConfirm, DirUp, false},
		{ActionNone, DirUp, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}
