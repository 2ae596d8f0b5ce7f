package rt

//
// Serial interval discretization
//

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// DiscretizeSerialInterval returns the first n probabilities of the
// serial interval modelled as a gamma distribution shifted by one day
// with the given mean and standard deviation. The returned slice has
// w[0] == 0, non-negative entries and sums to one.
func DiscretizeSerialInterval(mean, sd float64, n int) ([]float64, error) {
	if mean <= 1 {
		return nil, fmt.Errorf("%w: serial interval mean must be greater than one", ErrInvalidParams)
	}
	if sd <= 0 {
		return nil, fmt.Errorf("%w: serial interval sd must be positive", ErrInvalidParams)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two serial interval entries", ErrInvalidParams)
	}
	shape := ((mean - 1) / sd) * ((mean - 1) / sd)
	scale := sd * sd / (mean - 1)
	g := gammaCDF(shape, scale)
	g1 := gammaCDF(shape+1, scale)

	w := make([]float64, n)
	var total float64
	for k := 1; k < n; k++ {
		x := float64(k)
		v := x*g(x) + (x-2)*g(x-2) - 2*(x-1)*g(x-1)
		v += shape * scale * (2*g1(x-1) - g1(x-2) - g1(x))
		if v < 0 {
			v = 0
		}
		w[k] = v
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: degenerate serial interval", ErrInvalidParams)
	}
	for k := range w {
		w[k] /= total
	}
	return w, nil
}

// gammaCDF returns the CDF of the gamma distribution with the given
// shape and scale, which is zero for non-positive arguments.
func gammaCDF(shape, scale float64) func(x float64) float64 {
	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return dist.CDF(x)
	}
}
