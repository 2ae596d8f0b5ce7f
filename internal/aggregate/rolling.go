package aggregate

import (
	"math"

	"github.com/montanaflynn/stats"
)

// RollingMean returns the trailing simple moving average of values. The
// first window-1 entries and every entry whose window contains a NaN are
// NaN, so a short series never looks like a series of zeros.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for idx := range out {
		out[idx] = math.NaN()
		if window < 1 || idx+1 < window {
			continue
		}
		span := values[idx+1-window : idx+1]
		if len(Defined(span)) != len(span) {
			continue
		}
		mean, err := stats.Mean(span)
		if err != nil {
			continue
		}
		out[idx] = mean
	}
	return out
}
