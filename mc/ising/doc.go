// Package ising simulates the one-dimensional Ising model on a periodic ring.
//
// A [Lattice] holds L spins, each exactly +1 or -1. Site L-1 neighbours
// site 0. The energy per site is
//
//	E = -J/L * sum_i s[i]*s[(i+1) mod L]
//
// and the magnetization is the mean spin.
//
// # Usage
//
// Create a [Model] with an explicit random source, initialise a lattice and
// advance it in Monte Carlo time:
//
//	m := ising.NewModel(ising.WithSeed(7), ising.WithCoupling(1))
//	s, err := m.RandomLattice(100, 0.5)
//	for range 1000 {
//		s, err = m.Metropolis(s, 1.5)
//	}
//
// One call to [Model.Metropolis] is one unit of Monte Carlo time: L
// single-spin-flip attempts at sites drawn uniformly with replacement.
// Energy-lowering flips are always kept; others are kept with probability
// exp(-dE/(kB*T)). At T = 0 energy-raising flips are never kept.
//
// # Sampling
//
// [Model.Run] records energy and magnetization after every unit and
// [Model.Sweep] walks a lattice through a list of temperatures, summarising
// the magnetization at each one.
//
// # Energy differences
//
// By default the energy change of a proposed flip is computed from the two
// bonds touching the site. [WithFullRecompute] switches to recomputing the
// whole-lattice energy after every flip. Both paths draw from the random
// source in the same order and accept the same moves.
//
// Build with -tags fastmath to evaluate the Boltzmann factor with an
// approximate exponential.
package ising
