package engine

import "tanksim/internal/grid"

// Shell is a single flying projectile. Previous is the pre-half-move cell,
// kept so the collision resolver can detect two objects crossing paths
// rather than only landing on the same cell.
type Shell struct {
	Row, Col         int
	PrevRow, PrevCol int
	Dir              grid.Direction
	Live             bool
}

// advance performs one shell half-move, recording Prev first. ok is false
// only for a closed-board grid when the shell would leave the board — the
// caller then kills the shell (toroidal grids always report ok=true).
func (s *Shell) advance(g *grid.Grid) (ok bool) {
	s.PrevRow, s.PrevCol = s.Row, s.Col
	s.Row, s.Col, ok = g.Step(s.Row, s.Col, s.Dir)
	return ok
}
