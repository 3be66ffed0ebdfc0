// Package driver implements the Simulator: it schedules independent battles
// across a bounded worker pool in one of two modes and
// aggregates their results deterministically.
package driver

import (
	"tanksim/internal/engine"
	"tanksim/internal/mapfile"
	"tanksim/internal/plugin"
)

// buildRunInput assembles one engine.RunInput from a parsed map and the two
// algorithm artefacts playing it, wiring side 1 to algo1 and side 2 to algo2.
func buildRunInput(m *mapfile.Map, algo1, algo2 *plugin.AlgorithmEntry) engine.RunInput {
	strategist1 := algo1.Strategist(1, m.Cols, m.Rows, m.MaxSteps, m.NumShells)
	strategist2 := algo2.Strategist(2, m.Cols, m.Rows, m.MaxSteps, m.NumShells)

	return engine.RunInput{
		Width:              m.Cols,
		Height:             m.Rows,
		MapSnapshot:        m.Grid,
		MaxSteps:           m.MaxSteps,
		NumShells:          m.NumShells,
		Side1Strategist:    strategist1,
		Side2Strategist:    strategist2,
		ControllerFactory1: func(tankIndex int) engine.Controller { return algo1.Controller(1, tankIndex) },
		ControllerFactory2: func(tankIndex int) engine.Controller { return algo2.Controller(2, tankIndex) },
	}
}

// taskResult is one finished unit of pool work; comparative and competition
// modes each populate the fields relevant to their own aggregation and leave
// the rest zero.
type taskResult struct {
	// comparative fields
	arbiterName string
	fingerprint string

	// competition fields
	mapIndex  int
	algo1Idx  int
	algo2Idx  int
	algo1Name string
	algo2Name string

	result engine.GameResult
}
