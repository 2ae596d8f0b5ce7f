// Package aggregate computes the per-date distribution of the comparison
// countries next to the reference country.
package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ilcovid/oecdrt/internal/model"
)

// The quantiles we compute across the comparison countries.
const (
	QuantileDown = 0.25
	QuantileMid  = 0.50
	QuantileUp   = 0.75
)

// ErrMisaligned indicates that the columns do not have the same length.
var ErrMisaligned = errors.New("aggregate: misaligned columns")

// ErrNoReference indicates that the reference country is not in the table.
var ErrNoReference = errors.New("aggregate: reference country not found")

// Row is a row of an aggregate table.
type Row struct {
	// Date is the date of the row.
	Date time.Time

	// Reference is the value of the reference country.
	Reference float64

	// Q50, QUp and QDown are the median, the 75th and the 25th
	// percentiles across the comparison countries.
	Q50   float64
	QUp   float64
	QDown float64

	// N is the number of comparison countries with a defined value.
	N int
}

// Columns maps a country name or code to its values.
type Columns map[string][]float64

// Names returns the sorted column names.
func (c Columns) Names() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Cross returns the values of all the columns at the given index.
func (c Columns) Cross(idx int) []float64 {
	out := make([]float64, 0, len(c))
	for _, name := range c.Names() {
		out = append(out, c[name][idx])
	}
	return out
}

// newRow computes the quantiles of the comparison values.
func newRow(date time.Time, reference float64, values []float64) Row {
	return Row{
		Date:      date,
		Reference: reference,
		Q50:       Quantile(values, QuantileMid),
		QUp:       Quantile(values, QuantileUp),
		QDown:     Quantile(values, QuantileDown),
		N:         len(Defined(values)),
	}
}

// RtTable builds one row per window. The reference series is its own
// column and never enters the quantiles. The date of row i is the
// anchor date plus i days.
func RtTable(anchor time.Time, reference []float64, comparisons Columns) ([]Row, error) {
	for name, values := range comparisons {
		if len(values) != len(reference) {
			return nil, fmt.Errorf("%w: %s has %d values, expected %d",
				ErrMisaligned, name, len(values), len(reference))
		}
	}
	out := make([]Row, 0, len(reference))
	for idx, value := range reference {
		out = append(out, newRow(anchor.AddDate(0, 0, idx), value, comparisons.Cross(idx)))
	}
	return out, nil
}

// CaseTable builds one row per date of the table using the trailing
// mean over window days of each country. Missing comparison values are
// excluded from the quantiles rather than treated as zero.
func CaseTable(table *model.Table, reference string, comparisons []string, window int) ([]Row, error) {
	ref, found := table.Series(reference)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoReference, reference)
	}
	smoothed := RollingMean(ref.Values, window)
	columns := make(Columns, len(comparisons))
	for _, name := range comparisons {
		if name == reference {
			continue
		}
		series, found := table.Series(name)
		if !found {
			continue
		}
		columns[name] = RollingMean(series.Values, window)
	}
	out := make([]Row, 0, len(table.Dates))
	for idx, date := range table.Dates {
		out = append(out, newRow(date, smoothed[idx], columns.Cross(idx)))
	}
	return out, nil
}
