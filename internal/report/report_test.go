package report

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/rt"
)

var day = time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)

func newRows() []aggregate.Row {
	return []aggregate.Row{
		{Date: day, Reference: 1.25, Q50: 1, QUp: 1.1, QDown: 0.9},
		{Date: day.AddDate(0, 0, 1), Reference: math.NaN(), Q50: 0.1 + 0.2, QUp: 2, QDown: 1e-7},
		{Date: day.AddDate(0, 0, 2), Reference: 3, Q50: math.NaN(), QUp: math.NaN(), QDown: math.NaN()},
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rows := newRows()

	cases := []struct {
		name   string
		write  func(path, column string, rows []aggregate.Row) error
		header []string
	}{
		{"oecd-rep-num.csv", WriteRt, []string{"date", "isr_rep_num", "q50", "q_up", "q_down"}},
		{"oecd-cases.csv", WriteCases, []string{"date", "ISR", "q50", "q_up", "q_down"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := tc.write(path, "ISR", rows); err != nil {
				t.Fatal(err)
			}
			table, err := ReadTable(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.header, table.Header); diff != "" {
				t.Fatal(diff)
			}
			if len(table.Records) != len(rows) {
				t.Fatal("unexpected number of rows", len(table.Records))
			}
			got, err := table.Rows()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(rows, got, cmpopts.EquateNaNs()); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestWriteRtFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.csv")
	if err := WriteRt(path, "ISR", newRows()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expect := "date,isr_rep_num,q50,q_up,q_down\n" +
		"2020-06-01,1.25,1,1.1,0.9\n" +
		"2020-06-02,,0.30000000000000004,2,0.0000001\n" +
		"2020-06-03,3,,,\n"
	if diff := cmp.Diff(expect, string(data)); diff != "" {
		t.Fatal(diff)
	}
}

func TestWriteCountryEstimates(t *testing.T) {
	summary := rt.Summary{
		Window:    rt.Window{Start: 2, End: 8},
		StartDate: day,
		EndDate:   day.AddDate(0, 0, 6),
		Mean:      1.5,
		SD:        0.25,
		Median:    1.4,
		Lower:     1,
		Upper:     2,
	}
	estimates := []*rt.Estimate{
		{Country: "United States", Code: "USA", Summaries: []rt.Summary{summary}},
		{Country: "Austria", Code: "AUT", Summaries: []rt.Summary{summary, summary}},
	}
	path := filepath.Join(t.TempDir(), "countries.csv")
	if err := WriteCountryEstimates(path, estimates); err != nil {
		t.Fatal(err)
	}
	table, err := ReadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(CountriesHeader, table.Header); diff != "" {
		t.Fatal(diff)
	}
	expect := []string{"2020-06-01", "2020-06-07", "AUT", "1.5", "0.25", "1.4", "1", "2"}
	if diff := cmp.Diff(expect, table.Records[0]); diff != "" {
		t.Fatal(diff)
	}
	if table.Records[2][2] != "USA" {
		t.Fatal("expected USA last", table.Records[2])
	}
	if estimates[0].Code != "USA" {
		t.Fatal("the input must not be reordered")
	}
}

func TestReadTableErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadTable(filepath.Join(dir, "missing.csv"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.csv")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadTable(path); !errors.Is(err, ErrFormat) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("unexpected header", func(t *testing.T) {
		table := &Table{Header: []string{"date_start", "date_end"}}
		if _, err := table.Rows(); !errors.Is(err, ErrFormat) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		table := &Table{
			Header:  RtHeader("ISR"),
			Records: [][]string{{"2020-06-01", "x", "1", "1", "1"}},
		}
		if _, err := table.Rows(); !errors.Is(err, ErrFormat) {
			t.Fatal("unexpected error", err)
		}
	})
}
