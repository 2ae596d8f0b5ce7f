package model

//
// Long-form table
//

import (
	"math"
	"time"
)

// Observation is a row of the long-form table.
type Observation struct {
	// Date is the date of the observation.
	Date time.Time

	// Country is the country name as it appears in the source.
	Country string

	// Value is the per-million daily new cases or NaN if missing.
	Value float64
}

// Table is the long-form table of observations.
type Table struct {
	// Dates contains all the dates in the table in increasing order.
	Dates []time.Time

	// Countries contains all the country names in the table, in the
	// same order in which they appear in the source.
	Countries []string

	// Observations contains the observations ordered by country, then by date.
	Observations []Observation
}

// Series returns the series of the given country aligned on the table
// dates. Dates without an observation are NaN. The second return value
// is false if the table contains no observation for the country.
func (t *Table) Series(country string) (*IncidenceSeries, bool) {
	index := make(map[time.Time]int, len(t.Dates))
	out := &IncidenceSeries{
		Country: country,
		Dates:   append([]time.Time{}, t.Dates...),
		Values:  make([]float64, len(t.Dates)),
	}
	for idx, d := range t.Dates {
		index[d] = idx
		out.Values[idx] = math.NaN()
	}
	found := false
	for _, obs := range t.Observations {
		if obs.Country != country {
			continue
		}
		found = true
		if idx, ok := index[obs.Date]; ok {
			out.Values[idx] = obs.Value
		}
	}
	return out, found
}

// Len returns the number of observations in the table.
func (t *Table) Len() int {
	return len(t.Observations)
}
