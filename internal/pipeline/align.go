package pipeline

import (
	"fmt"
	"math"

	"github.com/ilcovid/oecdrt/internal/manifest"
	"github.com/ilcovid/oecdrt/internal/model"
)

// align reindexes series on the dates of the reference. A series that
// does not cover every reference date, either because a date is absent
// or because its history starts later or ends earlier, is misaligned.
// Gaps in the middle are left for the estimator to reject.
func align(reference, series *model.IncidenceSeries) (*model.IncidenceSeries, error) {
	values := make(map[int64]float64, series.Len())
	for idx, d := range series.Dates {
		values[d.Unix()] = series.Values[idx]
	}
	out := &model.IncidenceSeries{
		Country: series.Country,
		Code:    series.Code,
		Dates:   reference.Dates,
		Values:  make([]float64, 0, reference.Len()),
	}
	for _, d := range reference.Dates {
		v, found := values[d.Unix()]
		if !found {
			return nil, fmt.Errorf("%w: %s has no value for %s",
				manifest.ErrMisaligned, series.Country, d.Format(model.DateLayout))
		}
		out.Values = append(out.Values, v)
	}
	if n := out.Len(); n > 0 && (math.IsNaN(out.Values[0]) || math.IsNaN(out.Values[n-1])) {
		return nil, fmt.Errorf("%w: %s does not cover %s to %s", manifest.ErrMisaligned, series.Country,
			reference.Dates[0].Format(model.DateLayout), reference.Dates[n-1].Format(model.DateLayout))
	}
	return out, nil
}

// trimTrailingNaN returns series without its trailing NaN values.
func trimTrailingNaN(series *model.IncidenceSeries) *model.IncidenceSeries {
	n := series.Len()
	for n > 0 && math.IsNaN(series.Values[n-1]) {
		n--
	}
	return &model.IncidenceSeries{
		Country: series.Country,
		Code:    series.Code,
		Dates:   series.Dates[:n],
		Values:  series.Values[:n],
	}
}
