package controllers

import "tanksim/internal/engine"

// Simple is a reference baseline Controller: advance forward, rotate to
// get unstuck, and shoot in the current facing whenever its briefing
// reports ammo and it is not partway through a stuck streak, without
// checking line of sight or shoot cooldown. It exists as a cheap
// foil to Aggressive for comparative-mode runs, not as a competitive
// strategy.
type Simple struct {
	briefing       *engine.Briefing
	turnsSinceInfo int
	stuckStreak    int
}

// NewSimpleControllerFactory returns an engine.ControllerFactory building
// Simple controllers.
func NewSimpleControllerFactory() engine.ControllerFactory {
	return func(side, tankIndex int) engine.Controller {
		return &Simple{turnsSinceInfo: 1 << 30}
	}
}

// GetAction implements engine.Controller.
func (s *Simple) GetAction() engine.Action {
	if s.briefing == nil || s.turnsSinceInfo >= 6 {
		return engine.GetBattleInfo
	}
	s.turnsSinceInfo++

	b := s.briefing
	if b.ShellsOrDefault() > 0 && s.stuckStreak%3 == 0 {
		return engine.Shoot
	}
	if s.aheadBlocked() {
		s.stuckStreak++
		return engine.RotateRight90
	}
	s.stuckStreak = 0
	return engine.MoveForward
}

// UpdateBattleInfo implements engine.Controller.
func (s *Simple) UpdateBattleInfo(b engine.Briefing) {
	s.briefing = &b
	s.turnsSinceInfo = 0
}

// aheadBlocked reports whether the cell straight ahead is a wall or mine,
// without wrap-aware stepping: Simple tolerates being wrong near the board
// edge on a toroidal map and will just rotate its way out.
func (s *Simple) aheadBlocked() bool {
	b := s.briefing
	dRow, dCol := directionDelta(b.FacingOrDefault())
	r, c := b.SelfRow+dRow, b.SelfCol+dCol
	if r < 0 || r >= b.Rows || c < 0 || c >= b.Cols {
		return false
	}
	ch := b.Board[r][c]
	return ch == '#' || ch == '@'
}

func directionDelta(facing int) (int, int) {
	deltas := [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	n := ((facing % 8) + 8) % 8
	return deltas[n][0], deltas[n][1]
}
