package aggregate

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of the non-NaN values using linear
// interpolation between closest ranks, which is what numpy and pandas
// do by default. It returns NaN when no value is defined or when p is
// outside of [0, 1].
func Quantile(values []float64, p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	defined := Defined(values)
	if len(defined) < 1 {
		return math.NaN()
	}
	sort.Float64s(defined)
	h := float64(len(defined)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	vlo := defined[int(lo)]
	vhi := defined[int(hi)]
	return vlo + (h-lo)*(vhi-vlo)
}

// Defined returns a copy of values without the NaN entries.
func Defined(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
