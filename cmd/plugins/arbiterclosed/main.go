// Command arbiterclosed builds as a Go plugin exposing a second reference
// GameManager artefact, configured for the bounds-blocked movement model.
// Comparative mode runs one map and one algorithm pair against every
// loaded arbiter, so a second arbiter artefact with a different movement
// model is what makes that mode exercise anything interesting.
package main

import (
	"tanksim/internal/engine"
	"tanksim/internal/plugin"
)

// TanksimRegister is looked up by internal/plugin.Loader via plugin.Lookup.
func TanksimRegister(b *plugin.Builder) {
	b.RegisterArbiterFactory(engine.NewArbiterFactory(engine.WithClosedBoard()))
}
