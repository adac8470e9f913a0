//go:build fastmath

package ising

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// boltzmannFactor approximates exp(x). The T = 0 limits keep their exact
// values: -Inf maps to 0 and NaN stays NaN so the move is rejected.
func boltzmannFactor(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if math.IsInf(x, -1) {
		return 0
	}
	return approx.FastExp(x)
}
