package ising

import (
	"fmt"
	"math"
	"math/rand"
)

// Model advances spin lattices with the Metropolis algorithm.
//
// A Model owns its random source and is not safe for concurrent use.
type Model struct {
	cfg Config
	rng *rand.Rand
}

// NewModel creates a model with J = 1, kB = 1 and a source seeded with 1
// unless overridden by opts.
func NewModel(opts ...Option) *Model {
	m := &Model{
		cfg: DefaultConfig(),
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Config returns the model configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// Energy returns the energy per site of s using the model's coupling.
func (m *Model) Energy(s Lattice) float64 {
	return Energy(s, m.cfg.Coupling)
}

// RandomLattice draws a lattice from the model's random source.
func (m *Model) RandomLattice(n int, p float64) (Lattice, error) {
	return RandomLattice(m.rng, n, p)
}

// Metropolis performs one unit of Monte Carlo time on s at temperature t:
// len(s) flip attempts at uniformly drawn sites. s is updated in place and
// returned.
func (m *Model) Metropolis(s Lattice, t float64) (Lattice, error) {
	if math.IsNaN(t) || t < 0 {
		return s, fmt.Errorf("%w: %g", ErrInvalidTemperature, t)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	kT := m.cfg.Boltzmann * t
	if m.cfg.FullRecompute {
		m.sweepFull(s, kT)
	} else {
		m.sweepLocal(s, kT)
	}
	return s, nil
}

// sweepFull tracks the total energy and recomputes it after every flip.
func (m *Model) sweepFull(s Lattice, kT float64) {
	n := len(s)
	oldE := m.Energy(s)
	for range n {
		i := m.rng.Intn(n)
		s[i] = -s[i]

		newE := m.Energy(s)
		if m.accept(newE-oldE, kT) {
			oldE = newE
		} else {
			s[i] = -s[i]
		}
	}
}

// sweepLocal derives each energy difference from the two bonds at the site.
func (m *Model) sweepLocal(s Lattice, kT float64) {
	n := len(s)
	for range n {
		i := m.rng.Intn(n)
		dE := m.flipDelta(s, i)
		s[i] = -s[i]
		if !m.accept(dE, kT) {
			s[i] = -s[i]
		}
	}
}

// flipDelta returns the energy-per-site change caused by negating s[i].
func (m *Model) flipDelta(s Lattice, i int) float64 {
	n := len(s)
	if n == 1 {
		// the only bond couples the site with itself
		return 0
	}
	left := s[(i+n-1)%n]
	right := s[(i+1)%n]
	return 2 * m.cfg.Coupling * float64(int(s[i])*(int(left)+int(right))) / float64(n)
}

// accept applies the Metropolis rule. A random number is drawn only when
// dE >= 0.
func (m *Model) accept(dE, kT float64) bool {
	if dE < 0 {
		return true
	}
	return m.rng.Float64() < boltzmannFactor(-dE/kT)
}
