package ising

import (
	"fmt"
	"math"
	"math/rand"
)

// Spin values.
const (
	Up   int8 = 1
	Down int8 = -1
)

// Lattice is a periodic one-dimensional chain of spins.
type Lattice []int8

// Len returns the number of sites.
func (s Lattice) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Lattice) Clone() Lattice {
	out := make(Lattice, len(s))
	copy(out, s)
	return out
}

// Validate reports whether every site holds +1 or -1.
func (s Lattice) Validate() error {
	if len(s) == 0 {
		return ErrEmptyLattice
	}
	for i, v := range s {
		if v != Up && v != Down {
			return fmt.Errorf("%w: site %d holds %d", ErrInvalidSpin, i, v)
		}
	}
	return nil
}

// bondSum returns sum_i s[i]*s[(i+1) mod L].
func (s Lattice) bondSum() int {
	n := len(s)
	sum := 0
	for i := 0; i < n-1; i++ {
		sum += int(s[i]) * int(s[i+1])
	}
	sum += int(s[n-1]) * int(s[0])
	return sum
}

// Energy returns the average interaction energy per site with coupling j.
// An empty lattice yields NaN.
func Energy(s Lattice, j float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return -j * float64(s.bondSum()) / float64(len(s))
}

// Magnetization returns the mean spin value. An empty lattice yields NaN.
func Magnetization(s Lattice) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	sum := 0
	for _, v := range s {
		sum += int(v)
	}
	return float64(sum) / float64(len(s))
}

// RandomLattice returns n spins, each +1 with probability p and -1 otherwise.
// p = 1 gives an all-up lattice and p = 0 an all-down one.
func RandomLattice(r *rand.Rand, n int, p float64) (Lattice, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidProbability, p)
	}

	s := make(Lattice, n)
	for i := range s {
		if r.Float64() < p {
			s[i] = Up
		} else {
			s[i] = Down
		}
	}
	return s, nil
}

// Uniform returns n sites all holding spin v.
func Uniform(n int, v int8) Lattice {
	s := make(Lattice, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Alternating returns n sites with spins +1, -1, +1, ...
func Alternating(n int) Lattice {
	s := make(Lattice, n)
	for i := range s {
		if i%2 == 0 {
			s[i] = Up
		} else {
			s[i] = Down
		}
	}
	return s
}
