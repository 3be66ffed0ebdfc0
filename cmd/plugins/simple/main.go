// Command simple builds as a Go plugin exposing the reference baseline
// algorithm artefact: the shared Strategist paired with the Simple
// Controller. Grounded on library_init_simple_*.cpp's
// REGISTER_TANK_ALGORITHM call.
package main

import (
	"tanksim/internal/controllers"
	"tanksim/internal/plugin"
)

// TanksimRegister is looked up by internal/plugin.Loader via plugin.Lookup.
func TanksimRegister(b *plugin.Builder) {
	b.RegisterStrategistFactory(controllers.NewStrategistFactory())
	b.RegisterControllerFactory(controllers.NewSimpleControllerFactory())
}
