// Package rt estimates the time-varying reproduction number using the
// renewal equation with a parametric serial interval and a gamma prior.
package rt

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ilcovid/oecdrt/internal/model"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInvalidParams indicates that the estimation parameters are invalid.
	ErrInvalidParams = errors.New("rt: invalid parameters")

	// ErrTooShort indicates that the series is too short for any window.
	ErrTooShort = errors.New("rt: series too short")

	// ErrMissingIncidence indicates that the series contains NaN values.
	ErrMissingIncidence = errors.New("rt: missing incidence")

	// ErrNegativeIncidence indicates that the series contains negative values.
	ErrNegativeIncidence = errors.New("rt: negative incidence")

	// ErrZeroIncidence indicates that the series is zero everywhere.
	ErrZeroIncidence = errors.New("rt: zero incidence")

	// ErrWindowOutOfRange indicates that a window does not fit the series.
	ErrWindowOutOfRange = errors.New("rt: window out of range")
)

// Params contains the estimation parameters.
//
// Construct using [NewParams].
type Params struct {
	// SerialInterval is the discretized serial interval.
	SerialInterval []float64

	// PriorShape and PriorScale describe the gamma prior on Rt.
	PriorShape float64
	PriorScale float64
}

// NewParams discretizes the serial interval over n days and converts the
// prior mean and standard deviation to the gamma shape and scale.
func NewParams(siMean, siSD, priorMean, priorSD float64, n int) (*Params, error) {
	if priorMean <= 0 || priorSD <= 0 {
		return nil, fmt.Errorf("%w: prior moments must be positive", ErrInvalidParams)
	}
	w, err := DiscretizeSerialInterval(siMean, siSD, n)
	if err != nil {
		return nil, err
	}
	p := &Params{
		SerialInterval: w,
		PriorShape:     (priorMean / priorSD) * (priorMean / priorSD),
		PriorScale:     priorSD * priorSD / priorMean,
	}
	return p, nil
}

// Summary is the posterior summary of a single window.
type Summary struct {
	// Window is the window this summary refers to.
	Window Window

	// StartDate and EndDate are the dates of the window bounds.
	StartDate time.Time
	EndDate   time.Time

	// Mean is the posterior mean, which we use as the point estimate.
	Mean float64

	// SD is the posterior standard deviation.
	SD float64

	// Median is the posterior median.
	Median float64

	// Lower and Upper are the 2.5% and 97.5% posterior quantiles.
	Lower float64
	Upper float64
}

// Estimate is the estimate of Rt for one country.
type Estimate struct {
	// Country is the country name.
	Country string

	// Code is the ISO3 code of the country.
	Code string

	// Summaries contains one entry per window.
	Summaries []Summary
}

// Means returns the point estimate of each window.
func (e *Estimate) Means() []float64 {
	out := make([]float64, 0, len(e.Summaries))
	for _, s := range e.Summaries {
		out = append(out, s.Mean)
	}
	return out
}

// Infectiousness returns the total infectiousness of each day, that is
// the incidence of the previous days weighted by the serial interval.
// The first entry is zero.
func Infectiousness(incidence, si []float64) []float64 {
	out := make([]float64, len(incidence))
	for t := 1; t < len(incidence); t++ {
		var sum float64
		for s := 1; s <= t && s < len(si); s++ {
			sum += incidence[t-s] * si[s]
		}
		out[t] = sum
	}
	return out
}

// Run estimates Rt over the given windows. A series that cannot be
// estimated causes an error wrapping one of the sentinel errors and no
// partial estimate.
func Run(series *model.IncidenceSeries, windows []Window, params *Params) (*Estimate, error) {
	if len(windows) < 1 || series.Len() < 2 {
		return nil, fmt.Errorf("%w: %s has %d samples", ErrTooShort, series.Country, series.Len())
	}
	if err := validate(series); err != nil {
		return nil, err
	}
	for _, w := range windows {
		if w.Start < 2 || w.End < w.Start || w.End > series.Len() {
			return nil, fmt.Errorf("%w: [%d, %d] with %d samples",
				ErrWindowOutOfRange, w.Start, w.End, series.Len())
		}
	}

	lambda := Infectiousness(series.Values, params.SerialInterval)
	out := &Estimate{
		Country:   series.Country,
		Code:      series.Code,
		Summaries: make([]Summary, 0, len(windows)),
	}
	for _, w := range windows {
		var cases, infectiousness float64
		for t := w.Start - 1; t < w.End; t++ {
			cases += series.Values[t]
			infectiousness += lambda[t]
		}
		shape := params.PriorShape + cases
		scale := 1 / (1/params.PriorScale + infectiousness)
		posterior := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
		out.Summaries = append(out.Summaries, Summary{
			Window:    w,
			StartDate: series.Dates[w.Start-1],
			EndDate:   series.Dates[w.End-1],
			Mean:      shape * scale,
			SD:        math.Sqrt(shape) * scale,
			Median:    posterior.Quantile(0.5),
			Lower:     posterior.Quantile(0.025),
			Upper:     posterior.Quantile(0.975),
		})
	}
	return out, nil
}

func validate(series *model.IncidenceSeries) error {
	positive := false
	for idx, v := range series.Values {
		switch {
		case math.IsNaN(v):
			return fmt.Errorf("%w: %s on day %d", ErrMissingIncidence, series.Country, idx+1)
		case v < 0:
			return fmt.Errorf("%w: %s on day %d", ErrNegativeIncidence, series.Country, idx+1)
		case v > 0:
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("%w: %s", ErrZeroIncidence, series.Country)
	}
	return nil
}
