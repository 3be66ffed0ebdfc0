// Package controllers holds the reference Strategist and the two reference
// Controller implementations: the aggressive BFS-driven controller and a
// simple baseline controller.
package controllers

import "tanksim/internal/engine"

// Strategist is the reference per-side Strategist. It is
// stateless across calls beyond the dimensions it was built with: it
// reconstructs the board fresh from each VisibilityView, so it holds no
// reference back into the GameManager.
type Strategist struct {
	side      int
	width     int
	height    int
	maxSteps  int
	numShells int
}

// NewStrategistFactory returns an engine.StrategistFactory building
// Strategist values, the shape a plugin algorithm artefact registers.
func NewStrategistFactory() engine.StrategistFactory {
	return func(side, width, height, maxSteps, numShells int) engine.Strategist {
		return &Strategist{side: side, width: width, height: height, maxSteps: maxSteps, numShells: numShells}
	}
}

// UpdateTankWithBattleInfo reconstructs the board from view, locates the
// requesting tank via the '%' marker, and hands the controller a Briefing.
// Facing is not observable from a VisibilityView alone and defaults to 0.
// Remaining shell count is not observable either; rather than report a
// default of 0 (which would starve every shoot-gated controller of ammo
// for the whole battle) Strategist reports its configured numShells as an
// optimistic stand-in. Manager.tryShoot still enforces the tank's real
// remaining count, so an optimistic Briefing can at most prompt a Shoot
// action that the Manager silently ignores.
func (s *Strategist) UpdateTankWithBattleInfo(controller engine.Controller, view engine.VisibilityView) {
	board := make([][]rune, s.height)
	selfRow, selfCol := -1, -1
	for row := 0; row < s.height; row++ {
		line := make([]rune, s.width)
		for col := 0; col < s.width; col++ {
			ch := view.GetObjectAt(col, row)
			line[col] = ch
			if ch == '%' {
				selfRow, selfCol = row, col
			}
		}
		board[row] = line
	}

	controller.UpdateBattleInfo(engine.Briefing{
		Rows: s.height, Cols: s.width,
		Board:           board,
		SelfRow:         selfRow,
		SelfCol:         selfCol,
		Facing:          -1,
		ShellsRemaining: s.numShells,
	})
}
