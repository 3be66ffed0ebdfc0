// Command aggressive builds as a Go plugin (-buildmode=plugin) exposing the
// reference aggressive algorithm artefact: a Strategist paired with the
// BFS-driven Aggressive Controller. Grounded on the original
// REGISTER_PLAYER/REGISTER_TANK_ALGORITHM static-registration pattern in
// library_init_aggressive_*.cpp, adapted to Go's plugin.Lookup model: instead
// of registering into a process-global table at load time, this artefact
// exports a single TanksimRegister entry point the Loader calls explicitly.
package main

import (
	"tanksim/internal/controllers"
	"tanksim/internal/plugin"
)

// TanksimRegister is looked up by internal/plugin.Loader via plugin.Lookup.
func TanksimRegister(b *plugin.Builder) {
	b.RegisterStrategistFactory(controllers.NewStrategistFactory())
	b.RegisterControllerFactory(controllers.NewAggressiveControllerFactory())
}
