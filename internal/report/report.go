// Package report writes and reads the CSV outputs of the analysis.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/model"
	"github.com/ilcovid/oecdrt/internal/rt"
)

// RtHeader returns the header of the Rt CSV for the given reference column.
func RtHeader(column string) []string {
	return []string{"date", strings.ToLower(column) + "_rep_num", "q50", "q_up", "q_down"}
}

// CasesHeader returns the header of the cases CSV for the given reference column.
func CasesHeader(column string) []string {
	return []string{"date", column, "q50", "q_up", "q_down"}
}

// CountriesHeader is the header of the per-country estimates CSV.
var CountriesHeader = []string{
	"date_start", "date_end", "country", "mean", "sd", "median", "q_lo", "q_hi",
}

// WriteRt writes the Rt table to the given path.
func WriteRt(path, column string, rows []aggregate.Row) error {
	return writeFile(path, func(w io.Writer) error {
		return writeRows(w, RtHeader(column), rows)
	})
}

// WriteCases writes the cases table to the given path.
func WriteCases(path, column string, rows []aggregate.Row) error {
	return writeFile(path, func(w io.Writer) error {
		return writeRows(w, CasesHeader(column), rows)
	})
}

// WriteCountryEstimates writes the posterior summary of every
// successfully estimated country in long form, ordered by country code.
func WriteCountryEstimates(path string, estimates []*rt.Estimate) error {
	sorted := append([]*rt.Estimate{}, estimates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})
	return writeFile(path, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		if err := writer.Write(CountriesHeader); err != nil {
			return err
		}
		for _, e := range sorted {
			for _, s := range e.Summaries {
				err := writer.Write([]string{
					s.StartDate.Format(model.DateLayout),
					s.EndDate.Format(model.DateLayout),
					e.Code,
					FormatFloat(s.Mean),
					FormatFloat(s.SD),
					FormatFloat(s.Median),
					FormatFloat(s.Lower),
					FormatFloat(s.Upper),
				})
				if err != nil {
					return err
				}
			}
		}
		writer.Flush()
		return writer.Error()
	})
}

func writeRows(w io.Writer, header []string, rows []aggregate.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		err := writer.Write([]string{
			row.Date.Format(model.DateLayout),
			FormatFloat(row.Reference),
			FormatFloat(row.Q50),
			FormatFloat(row.QUp),
			FormatFloat(row.QDown),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeFile creates or truncates path and writes it using fn.
func writeFile(path string, fn func(w io.Writer) error) error {
	filep, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := fn(filep); err != nil {
		filep.Close()
		return fmt.Errorf("report: %s: %w", path, err)
	}
	if err := filep.Close(); err != nil {
		return fmt.Errorf("report: %s: %w", path, err)
	}
	return nil
}

// FormatFloat formats v using the shortest representation that
// round-trips. NaN becomes the empty string.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFloat is the inverse of [FormatFloat].
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
