// Command arbiter builds as a Go plugin exposing the reference GameManager
// artefact, configured for the toroidal movement model (the default). It
// registers a factory rather than a fixed instance, so the driver can
// build one GameManager per battle.
package main

import (
	"tanksim/internal/engine"
	"tanksim/internal/plugin"
)

// TanksimRegister is looked up by internal/plugin.Loader via plugin.Lookup.
func TanksimRegister(b *plugin.Builder) {
	b.RegisterArbiterFactory(engine.NewArbiterFactory())
}
