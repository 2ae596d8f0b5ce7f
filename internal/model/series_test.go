package model

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIncidenceSeries(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2020, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	series := &IncidenceSeries{
		Country: "Israel",
		Code:    "ISR",
		Dates:   []time.Time{day(1), day(2), day(3), day(4)},
		Values:  []float64{1, math.NaN(), 3, 4},
	}

	t.Run("From keeps samples on or after the date", func(t *testing.T) {
		got := series.From(day(3))
		if diff := cmp.Diff([]float64{3, 4}, got.Values); diff != "" {
			t.Fatal(diff)
		}
		if got.Code != "ISR" || got.Len() != 2 {
			t.Fatal("unexpected series", got)
		}
	})

	t.Run("Missing counts NaN samples", func(t *testing.T) {
		if series.Missing() != 1 {
			t.Fatal("expected one missing sample")
		}
	})
}
