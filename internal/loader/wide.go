package loader

//
// Wide CSV parsing
//

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ilcovid/oecdrt/internal/model"
)

// ErrSchema indicates that the CSV does not have the expected shape.
var ErrSchema = errors.New("loader: schema mismatch")

// utf8BOM is the byte order mark some tools prepend to CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseWideBytes is like [ParseWide] but takes a byte slice.
func ParseWideBytes(data []byte) (*model.Table, error) {
	return ParseWide(bytes.NewReader(data))
}

// ParseWide parses a wide CSV whose first column is the date and
// whose other columns are countries. Empty cells become NaN. The
// resulting observations are ordered by country, then by date.
func ParseWide(r io.Reader) (*model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = 0
	records, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: line %d: ragged row", ErrSchema, perr.Line)
		}
		return nil, fmt.Errorf("loader: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%w: empty file", ErrSchema)
	}

	header := records[0]
	if len(header) < 2 || strings.TrimSpace(header[0]) != "date" {
		return nil, fmt.Errorf("%w: expected a date column followed by countries", ErrSchema)
	}
	countries := make([]string, 0, len(header)-1)
	for _, name := range header[1:] {
		countries = append(countries, strings.TrimSpace(name))
	}

	rows := records[1:]
	dates := make([]time.Time, 0, len(rows))
	values := make([][]float64, 0, len(rows))
	for idx, row := range rows {
		line := idx + 2
		date, err := time.Parse(model.DateLayout, strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid date %q", ErrSchema, line, row[0])
		}
		if len(dates) > 0 && !date.After(dates[len(dates)-1]) {
			return nil, fmt.Errorf("%w: line %d: dates are not increasing", ErrSchema, line)
		}
		dates = append(dates, date)
		cells := make([]float64, 0, len(countries))
		for col, cell := range row[1:] {
			value, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %q: invalid number %q",
					ErrSchema, line, countries[col], cell)
			}
			cells = append(cells, value)
		}
		values = append(values, cells)
	}

	table := &model.Table{
		Dates:        dates,
		Countries:    countries,
		Observations: make([]model.Observation, 0, len(dates)*len(countries)),
	}
	for col, name := range countries {
		for idx, date := range dates {
			table.Observations = append(table.Observations, model.Observation{
				Date:    date,
				Country: name,
				Value:   values[idx][col],
			})
		}
	}
	return table, nil
}

// parseCell parses a numeric cell mapping an empty cell to NaN.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}
