package series_test

import (
	"fmt"

	"github.com/cwbudde/algo-sci/stats/series"
)

func ExampleCalculate() {
	s := series.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("mean=%.1f pop=%.1f\n", s.Mean, s.PopStdDev)

	// Output:
	// mean=0.0 pop=1.0
}
