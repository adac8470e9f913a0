package ising

import "errors"

// Errors returned by lattice and model functions.
var (
	ErrEmptyLattice       = errors.New("ising: empty lattice")
	ErrInvalidSpin        = errors.New("ising: spin must be +1 or -1")
	ErrInvalidSize        = errors.New("ising: lattice size must be > 0")
	ErrInvalidProbability = errors.New("ising: probability must be in [0, 1]")
	ErrInvalidTemperature = errors.New("ising: temperature must be >= 0")
	ErrInvalidSteps       = errors.New("ising: step count must be > 0")
)
