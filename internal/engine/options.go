package engine

// Option configures a Manager at construction time. Arbiter artefacts
// expose their own flavor of GameManager by closing over a fixed option
// set inside the ArbiterFactory they register (see internal/plugin).
type Option func(*Manager)

// WithClosedBoard selects the bounds-blocked movement model instead of the
// reference toroidal wrap; both models share the same collision and
// termination code, differing only in Grid.Step's boundary arithmetic.
func WithClosedBoard() Option {
	return func(m *Manager) { m.closedBoard = true }
}

// WithNoAmmoGrace overrides the default 40-step no-ammo grace window.
func WithNoAmmoGrace(steps int) Option {
	return func(m *Manager) { m.noAmmoGrace = steps }
}

// NewArbiterFactory returns an ArbiterFactory that builds Managers with a
// fixed option set — the shape a plugin artefact registers via the
// plugin.Builder.
func NewArbiterFactory(opts ...Option) ArbiterFactory {
	return func(verbose bool) GameManager {
		return NewManager(verbose, opts...)
	}
}
