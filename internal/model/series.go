package model

//
// Incidence series
//

import (
	"math"
	"time"

	"github.com/ilcovid/oecdrt/internal/version"
)

// DateLayout is the layout of the dates in the input and output CSV files.
const DateLayout = "2006-01-02"

// HTTPHeaderUserAgent is the default User-Agent header value.
const HTTPHeaderUserAgent = "oecdrt/" + version.Version

// IncidenceSeries is the daily incidence of a single country. The Dates
// are strictly increasing and contiguous. Values are per-million daily
// new cases and a missing value is represented as NaN.
type IncidenceSeries struct {
	// Country is the country name as it appears in the source.
	Country string

	// Code is the ISO3 code of the country.
	Code string

	// Dates contains the date of each sample.
	Dates []time.Time

	// Values contains the value of each sample.
	Values []float64
}

// Len returns the number of samples in the series.
func (s *IncidenceSeries) Len() int {
	return len(s.Values)
}

// From returns a copy of the series restricted to the samples whose
// date is equal to or after the given date.
func (s *IncidenceSeries) From(date time.Time) *IncidenceSeries {
	out := &IncidenceSeries{Country: s.Country, Code: s.Code}
	for idx, d := range s.Dates {
		if d.Before(date) {
			continue
		}
		out.Dates = append(out.Dates, d)
		out.Values = append(out.Values, s.Values[idx])
	}
	return out
}

// Missing returns the number of NaN samples in the series.
func (s *IncidenceSeries) Missing() (count int) {
	for _, v := range s.Values {
		if math.IsNaN(v) {
			count++
		}
	}
	return
}
