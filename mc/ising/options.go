package ising

import "math/rand"

// Config holds the physical constants and update strategy of a Model.
type Config struct {
	// Coupling is the exchange constant J between neighbouring spins.
	Coupling float64

	// Boltzmann is the Boltzmann constant kB used in the acceptance rule.
	Boltzmann float64

	// FullRecompute recomputes the whole-lattice energy after every
	// proposed flip instead of using the two-bond local difference.
	FullRecompute bool
}

// DefaultConfig returns J = 1, kB = 1 with local energy differences.
func DefaultConfig() Config {
	return Config{
		Coupling:  1,
		Boltzmann: 1,
	}
}

// Option configures a Model.
type Option func(*Model)

// WithCoupling sets the coupling constant J.
func WithCoupling(j float64) Option {
	return func(m *Model) {
		m.cfg.Coupling = j
	}
}

// WithBoltzmann sets the Boltzmann constant. Non-positive values are ignored.
func WithBoltzmann(kB float64) Option {
	return func(m *Model) {
		if kB > 0 {
			m.cfg.Boltzmann = kB
		}
	}
}

// WithFullRecompute selects whole-lattice energy recomputation per flip.
func WithFullRecompute() Option {
	return func(m *Model) {
		m.cfg.FullRecompute = true
	}
}

// WithSeed seeds the model's random source.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the model draw from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) {
		if r != nil {
			m.rng = r
		}
	}
}
