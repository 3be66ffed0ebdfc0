package controllers

import (
	"testing"

	"tanksim/internal/engine"
)

func boardFromRows(rows ...string) [][]rune {
	b := make([][]rune, len(rows))
	for i, r := range rows {
		b[i] = []rune(r)
	}
	return b
}

func TestAggressiveRequestsInfoFirst(t *testing.T) {
	c := NewAggressiveControllerFactory()(1, 0)
	if a := c.GetAction(); a != engine.GetBattleInfo {
		t.Fatalf("first action = %v, want GetBattleInfo", a)
	}
}

func TestAggressiveDoesNotShootWithoutLineOfSight(t *testing.T) {
	c := NewAggressiveControllerFactory()(1, 0)
	c.UpdateBattleInfo(engine.Briefing{
		Rows: 3, Cols: 3,
		Board:           boardFromRows("%  ", "   ", "  2"),
		SelfRow:         0,
		SelfCol:         0,
		Facing:          2, // Right: not aligned with the enemy at (2,2)
		ShellsRemaining: 1,
	})
	// Facing Right from (0,0) sees empty cells, not the enemy at (2,2); the
	// controller should not claim a clear shot it doesn't have.
	if a := c.GetAction(); a == engine.Shoot {
		t.Fatalf("should not shoot without a real line of sight")
	}
}

func TestAggressiveRequestsInfoAfterFourTurns(t *testing.T) {
	c := NewAggressiveControllerFactory()(1, 0).(*Aggressive)
	c.UpdateBattleInfo(engine.Briefing{
		Rows: 5, Cols: 5,
		Board:           boardFromRows("     ", "     ", "%    ", "     ", "     "),
		SelfRow:         2,
		SelfCol:         0,
		Facing:          2,
		ShellsRemaining: 0,
	})
	for i := 0; i < 4; i++ {
		c.GetAction()
	}
	if a := c.GetAction(); a != engine.GetBattleInfo {
		t.Fatalf("action after 4 turns without a refresh = %v, want GetBattleInfo", a)
	}
}

func TestAggressiveFallsBackToRotateWhenNoPlanFound(t *testing.T) {
	// A fully enclosed 1x1 board with no reachable firing state and no
	// shot available: the BFS cannot find a goal, so the fallback applies.
	c := NewAggressiveControllerFactory()(1, 0)
	c.UpdateBattleInfo(engine.Briefing{
		Rows: 1, Cols: 1,
		Board:           boardFromRows("%"),
		SelfRow:         0,
		SelfCol:         0,
		Facing:          0,
		ShellsRemaining: 0,
	})
	if a := c.GetAction(); a != engine.RotateRight90 {
		t.Fatalf("action = %v, want RotateRight90 fallback", a)
	}
}
