package engine

import (
	"testing"

	"tanksim/internal/grid"
)

func TestShellAdvanceRecordsPrevious(t *testing.T) {
	g := grid.New(3, 3, false)
	s := &Shell{Row: 1, Col: 1, Dir: grid.Right, Live: true}
	ok := s.advance(g)
	if !ok {
		t.Fatalf("toroidal advance should always succeed")
	}
	if s.PrevRow != 1 || s.PrevCol != 1 {
		t.Fatalf("previous position should be the pre-move cell, got (%d,%d)", s.PrevRow, s.PrevCol)
	}
	if s.Row != 1 || s.Col != 2 {
		t.Fatalf("shell should have advanced one cell right, got (%d,%d)", s.Row, s.Col)
	}
}

func TestShellAdvanceFailsAtClosedEdge(t *testing.T) {
	g := grid.New(1, 1, true)
	s := &Shell{Row: 0, Col: 0, Dir: grid.Up, Live: true}
	if s.advance(g) {
		t.Fatalf("advancing off a closed board should report failure")
	}
}
