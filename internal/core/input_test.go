package core

import "testing"

func TestActionOffset(t *testing.T) {
	tests := []struct {
		action     Action
		dRow, dCol int
		ok         bool
	}{
		{ActionUp, -1, 0, true},
		{ActionDown, 1, 0, true},
		{ActionLeft, 0, -1, true},
		{ActionRight, 0, 1, true},
		{ActionUpLeft, -1, -1, true},
		{ActionUpRight, -1, 1, true},
		{ActionDownLeft, 1, -1, true},
		{ActionDownRight, 1, 1, true},
		{ActionInteract, 0, 0, true},
		{ActionRestart, 0, 0, false},
		{ActionQuit, 0, 0, false},
		{ActionNone, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dr, dc, ok := tc.action.Offset()
			if dr != tc.dRow || dc != tc.dCol || ok != tc.ok {
				t.Errorf("Offset() = (%d, %d, %v), expected (%d, %d, %v)", dr, dc, ok, tc.dRow, tc.dCol, tc.ok)
			}
			if tc.action.Targets() != tc.ok {
				t.Errorf("Targets() = %v, expected %v", tc.action.Targets(), tc.ok)
			}
		})
	}
}
