package plugin

import (
	"path/filepath"
	"sync"

	goplugin "plugin"

	"tanksim/internal/engine"
)

// AlgorithmEntry is a fully validated algorithm artefact: both a
// StrategistFactory and a ControllerFactory are present.
type AlgorithmEntry struct {
	Name        string
	Fingerprint string
	Strategist  engine.StrategistFactory
	Controller  engine.ControllerFactory
}

// ArbiterEntry is a fully validated arbiter artefact.
type ArbiterEntry struct {
	Name        string
	Fingerprint string
	Arbiter     engine.ArbiterFactory
}

// Loader loads arbiter and algorithm artefacts from external .so files at
// runtime. It retains ownership of every activation handle for the
// lifetime of every object derived from it: Go's plugin package provides
// no unload primitive at all, so in practice "retaining ownership" means
// never attempting to unmap an artefact — there is nothing to release, and
// Loader has no deactivate step.
type Loader struct {
	mu        sync.Mutex
	activated map[string]bool
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{activated: make(map[string]bool)}
}

// LoadAlgorithm activates the .so at path and validates it registered both
// an engine.StrategistFactory and an engine.ControllerFactory.
func (l *Loader) LoadAlgorithm(path string) (*AlgorithmEntry, *Error) {
	name := filepath.Base(path)
	b, err := l.activate(name, path, kindAlgorithm)
	if err != nil {
		return nil, err
	}

	var missing []string
	if b.strategistFactory == nil {
		missing = append(missing, "StrategistFactory")
	}
	if b.controllerFactory == nil {
		missing = append(missing, "ControllerFactory")
	}
	if len(missing) > 0 {
		return nil, &Error{Name: name, MissingParts: missing}
	}

	fp, ferr := fingerprint(path)
	if ferr != nil {
		return nil, &Error{Name: name, Cause: ferr}
	}
	return &AlgorithmEntry{Name: name, Fingerprint: fp, Strategist: b.strategistFactory, Controller: b.controllerFactory}, nil
}

// LoadArbiter activates the .so at path and validates it registered an
// engine.ArbiterFactory. A second registration is not detected (the last
// one wins), and algorithm factories registered by the artefact are
// ignored rather than rejected.
func (l *Loader) LoadArbiter(path string) (*ArbiterEntry, *Error) {
	name := filepath.Base(path)
	b, err := l.activate(name, path, kindArbiter)
	if err != nil {
		return nil, err
	}
	if b.arbiterFactory == nil {
		return nil, &Error{Name: name, MissingParts: []string{"ArbiterFactory"}}
	}

	fp, ferr := fingerprint(path)
	if ferr != nil {
		return nil, &Error{Name: name, Cause: ferr}
	}
	return &ArbiterEntry{Name: name, Fingerprint: fp, Arbiter: b.arbiterFactory}, nil
}

// activate opens the .so at path, looks up its RegisterEntryPoint symbol,
// and invokes it with a fresh Builder scoped to this one pending entry.
// Activation of two algorithms and one arbiter is sequenced by the caller
// (driver) in a deterministic order; this method itself only guards the
// shared plugin registry bookkeeping against concurrent activation.
func (l *Loader) activate(name, path string, k kind) (*Builder, *Error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activated[path] {
		return nil, &Error{Name: name, Cause: errAlreadyActivated(path)}
	}

	p, err := goplugin.Open(path)
	if err != nil {
		return nil, &Error{Name: name, Cause: err}
	}
	sym, err := p.Lookup(RegisterEntryPoint)
	if err != nil {
		return nil, &Error{Name: name, Cause: err}
	}
	register, ok := sym.(func(*Builder))
	if !ok {
		return nil, &Error{Name: name, Cause: errBadRegisterSignature(name)}
	}

	b := &Builder{kind: k}
	register(b)
	l.activated[path] = true
	return b, nil
}
