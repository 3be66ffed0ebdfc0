package controllers

import (
	"tanksim/internal/ai"
	"tanksim/internal/engine"
	"tanksim/internal/grid"
)

// Aggressive is the reference aggressive Controller: it shoots on sight
// and otherwise BFS-plans the shortest route to a firing state, using the
// deterministic tie-break BFS in internal/ai over the engine's
// (row, col, facing) domain.
type Aggressive struct {
	side      int
	tankIndex int

	briefing       *engine.Briefing
	turnsSinceInfo int
	dims           *grid.Grid // dimensions-only grid, for BFS Step() wrap arithmetic
}

// NewAggressiveControllerFactory returns an engine.ControllerFactory
// building Aggressive controllers.
func NewAggressiveControllerFactory() engine.ControllerFactory {
	return func(side, tankIndex int) engine.Controller {
		return &Aggressive{side: side, tankIndex: tankIndex, turnsSinceInfo: 1 << 30}
	}
}

// GetAction implements engine.Controller.
func (a *Aggressive) GetAction() engine.Action {
	if a.briefing == nil || a.turnsSinceInfo >= 4 {
		return engine.GetBattleInfo
	}

	b := a.briefing
	facing := grid.Direction(b.FacingOrDefault())

	if b.ShellsOrDefault() > 0 && a.hasLineOfSight(b.SelfRow, b.SelfCol, facing) {
		a.turnsSinceInfo++
		return engine.Shoot
	}

	if act, ok := a.plan(); ok {
		a.turnsSinceInfo++
		return toEngineAction(act)
	}
	a.turnsSinceInfo++
	return engine.RotateRight90
}

// UpdateBattleInfo implements engine.Controller.
func (a *Aggressive) UpdateBattleInfo(b engine.Briefing) {
	a.briefing = &b
	a.turnsSinceInfo = 0
	if a.dims == nil || a.dims.Rows != b.Rows || a.dims.Cols != b.Cols {
		a.dims = grid.New(b.Rows, b.Cols, false) // BFS assumes the reference toroidal model
	}
}

// cellBlocked reports whether (row, col) is a wall, mine or tank, per
// "Movement edges require the target cell be not a wall/mine/
// digit".
func (a *Aggressive) cellBlocked(row, col int) bool {
	ch := a.briefing.Board[row][col]
	return ch == '#' || ch == '@' || ch == '1' || ch == '2'
}

// hasLineOfSight reports whether firing from (row, col) in facing would
// reach an enemy tank before a wall, mine or friendly tank blocks it.
func (a *Aggressive) hasLineOfSight(row, col int, facing grid.Direction) bool {
	b := a.briefing
	r, c := row, col
	for i := 0; i < b.Rows+b.Cols; i++ {
		nr, nc, ok := a.dims.Step(r, c, facing)
		if !ok {
			return false
		}
		r, c = nr, nc
		ch := b.Board[r][c]
		switch ch {
		case '#', '@':
			return false
		case '1', '2':
			mine := byte('1')
			if a.side == 2 {
				mine = '2'
			}
			return byte(ch) != mine
		}
	}
	return false
}

// plan runs the BFS to the nearest firing state and returns its first move.
func (a *Aggressive) plan() (ai.Action, bool) {
	b := a.briefing
	start := ai.State{Row: b.SelfRow, Col: b.SelfCol, Facing: grid.Direction(b.FacingOrDefault())}
	goal := func(s ai.State) bool {
		return a.hasLineOfSight(s.Row, s.Col, s.Facing)
	}
	return ai.Search(a.dims, start, a.cellBlocked, goal)
}

func toEngineAction(act ai.Action) engine.Action {
	switch act {
	case ai.RotateRight45:
		return engine.RotateRight45
	case ai.RotateLeft45:
		return engine.RotateLeft45
	case ai.RotateRight90:
		return engine.RotateRight90
	case ai.RotateLeft90:
		return engine.RotateLeft90
	case ai.MoveForward:
		return engine.MoveForward
	case ai.MoveBackward:
		return engine.MoveBackward
	}
	return engine.DoNothing
}
