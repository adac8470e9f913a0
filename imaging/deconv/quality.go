package deconv

import (
	"math"

	"github.com/cwbudde/algo-sci/imaging/grid"
)

// SNR computes the signal-to-noise ratio in dB between original and
// recovered images: 10 * log10(signal_power / noise_power), where
// noise = original - recovered. Mismatched shapes give -Inf, as does an
// infinite recovery; NaN samples give NaN.
func SNR(original, recovered *grid.Grid) float64 {
	if grid.CheckSameShape(original, recovered) != nil {
		return math.Inf(-1)
	}

	var signalPower, noisePower float64
	for i, v := range original.Data {
		signalPower += v * v
		noise := v - recovered.Data[i]
		noisePower += noise * noise
	}

	if noisePower == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(signalPower/noisePower)
}
