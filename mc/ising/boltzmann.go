//go:build !fastmath

package ising

import "math"

func boltzmannFactor(x float64) float64 {
	return math.Exp(x)
}
