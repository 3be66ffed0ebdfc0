// Package ai implements the search the aggressive reference Controller
// uses to reach a firing position: a breadth-first traversal over the
// state space (row, col, facing), expanding deterministic neighbours in a
// fixed order and stopping at the first state satisfying a goal predicate.
package ai

import "tanksim/internal/grid"

// Action mirrors engine.Action's six movement/rotation primitives without
// importing the engine package, to keep this search reusable; the
// reference aggressive controller maps between the two.
type Action int

const (
	RotateRight45 Action = iota
	RotateLeft45
	RotateRight90
	RotateLeft90
	MoveForward
	MoveBackward
)

// neighbourOrder is the deterministic tie-break order requires.
var neighbourOrder = [6]Action{RotateRight45, RotateLeft45, RotateRight90, RotateLeft90, MoveForward, MoveBackward}

// State is one BFS node: a tank position and facing.
type State struct {
	Row, Col int
	Facing   grid.Direction
}

// Blocked reports whether (row, col) cannot be entered: a wall, a mine, or
// a digit (another tank)
type Blocked func(row, col int) bool

// Goal reports whether a straight-line shot from this state would reach an
// enemy before being blocked
type Goal func(s State) bool

// Search runs a breadth-first search from `start` over the six movement and
// rotation primitives. It returns the first Action of the shortest path to
// a state satisfying goal, and ok=true. If no goal state is reachable
// within the bounded state space (rows*cols*8), ok is false.
func Search(g *grid.Grid, start State, blocked Blocked, goal Goal) (first Action, ok bool) {
	if goal(start) {
		return 0, false // caller should have already taken the shot; no move needed
	}

	type visitKey struct {
		row, col int
		facing   grid.Direction
	}
	type queued struct {
		state State
		first Action // the first action taken to reach this state from start
	}

	visited := make(map[visitKey]bool, g.Rows*g.Cols*8)
	visited[visitKey{start.Row, start.Col, start.Facing}] = true
	queue := []queued{{state: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for i, act := range neighbourOrder {
			next, moved := step(g, cur.state, act, blocked)
			if !moved {
				continue
			}
			key := visitKey{next.Row, next.Col, next.Facing}
			if visited[key] {
				continue
			}
			visited[key] = true

			firstAction := cur.first
			if cur.state == start {
				firstAction = neighbourOrder[i]
			}

			if goal(next) {
				return firstAction, true
			}
			queue = append(queue, queued{state: next, first: firstAction})
		}
	}
	return 0, false
}

// step applies one movement/rotation primitive to s, returning the
// resulting state and whether the move was legal. Rotations are always
// legal. Diagonal moves additionally require both flanking cells to be
// non-blocking (corner-cut prevention, ).
func step(g *grid.Grid, s State, act Action, blocked Blocked) (State, bool) {
	switch act {
	case RotateRight45:
		return State{s.Row, s.Col, s.Facing.RotateRight45()}, true
	case RotateLeft45:
		return State{s.Row, s.Col, s.Facing.RotateLeft45()}, true
	case RotateRight90:
		return State{s.Row, s.Col, s.Facing.RotateRight90()}, true
	case RotateLeft90:
		return State{s.Row, s.Col, s.Facing.RotateLeft90()}, true
	case MoveForward:
		return moveInDirection(g, s, s.Facing, blocked)
	case MoveBackward:
		reverse := s.Facing.RotateRight90().RotateRight90()
		return moveInDirection(g, s, reverse, blocked)
	}
	return s, false
}

func moveInDirection(g *grid.Grid, s State, d grid.Direction, blocked Blocked) (State, bool) {
	nr, nc, ok := g.Step(s.Row, s.Col, d)
	if !ok || blocked(nr, nc) {
		return s, false
	}
	if d.IsDiagonal() {
		dRow, dCol := d.Delta()
		fr1, fc1, ok1 := g.Step(s.Row, s.Col, directionOf(dRow, 0))
		fr2, fc2, ok2 := g.Step(s.Row, s.Col, directionOf(0, dCol))
		if !ok1 || blocked(fr1, fc1) || !ok2 || blocked(fr2, fc2) {
			return s, false
		}
	}
	return State{nr, nc, s.Facing}, true
}

// directionOf maps a pure-row or pure-col unit delta back to a cardinal
// Direction, used to locate the two flanking cells of a diagonal step.
func directionOf(dRow, dCol int) grid.Direction {
	switch {
	case dRow == -1:
		return grid.Up
	case dRow == 1:
		return grid.Down
	case dCol == -1:
		return grid.Left
	case dCol == 1:
		return grid.Right
	}
	return grid.Up
}
