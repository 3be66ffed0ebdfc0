// Package plugin loads arbiter and algorithm artefacts at runtime and
// yields their factory callables. Instead of a process-global registry
// mutated by each artefact's static initialisers, the loader hands each
// artefact an explicit *Builder scoped to exactly one pending entry.
package plugin

import "tanksim/internal/engine"

// RegisterEntryPoint is the symbol name every artefact must export. Looked
// up via plugin.Lookup after plugin.Open.
const RegisterEntryPoint = "TanksimRegister"

// Builder is handed to an artefact's registration entry point. Each
// artefact receives its own Builder instance, scoped to the pending entry
// the driver created immediately before activation; there is no shared
// registry to race on or leak into.
type Builder struct {
	kind kind

	strategistFactory engine.StrategistFactory
	controllerFactory engine.ControllerFactory
	arbiterFactory    engine.ArbiterFactory
}

type kind int

const (
	kindAlgorithm kind = iota
	kindArbiter
)

// RegisterStrategistFactory attaches a StrategistFactory to this entry.
// No Register method validates anything: a second call replaces the
// earlier factory, and the loader's validation pass only reports the
// factories its entry kind requires as missing; a factory registered for
// the other kind is ignored.
func (b *Builder) RegisterStrategistFactory(f engine.StrategistFactory) {
	b.strategistFactory = f
}

// RegisterControllerFactory attaches a ControllerFactory to this entry.
func (b *Builder) RegisterControllerFactory(f engine.ControllerFactory) {
	b.controllerFactory = f
}

// RegisterArbiterFactory attaches an ArbiterFactory to this entry.
func (b *Builder) RegisterArbiterFactory(f engine.ArbiterFactory) {
	b.arbiterFactory = f
}
