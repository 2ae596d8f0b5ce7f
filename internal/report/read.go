package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/fsx"
	"github.com/ilcovid/oecdrt/internal/model"
)

// ErrFormat indicates that a CSV file does not have the expected format.
var ErrFormat = errors.New("report: invalid format")

// Table is a CSV file read back from disk.
type Table struct {
	// Header contains the column names.
	Header []string

	// Records contains the rows without the header.
	Records [][]string
}

// ReadTable reads a CSV file written by this package.
func ReadTable(path string) (*Table, error) {
	filep, err := fsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer filep.Close()
	records, err := csv.NewReader(filep).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report: %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%w: %s: missing header", ErrFormat, path)
	}
	return &Table{Header: records[0], Records: records[1:]}, nil
}

// Rows parses a table written by [WriteRt] or [WriteCases]. The N
// field of the returned rows is always zero since we do not save it.
func (t *Table) Rows() ([]aggregate.Row, error) {
	if len(t.Header) != 5 || t.Header[0] != "date" {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrFormat, t.Header)
	}
	out := make([]aggregate.Row, 0, len(t.Records))
	for idx, record := range t.Records {
		date, err := time.Parse(model.DateLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrFormat, idx+1, err.Error())
		}
		var values [4]float64
		for col := range values {
			v, err := ParseFloat(record[col+1])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %s", ErrFormat, idx+1, err.Error())
			}
			values[col] = v
		}
		out = append(out, aggregate.Row{
			Date:      date,
			Reference: values[0],
			Q50:       values[1],
			QUp:       values[2],
			QDown:     values[3],
		})
	}
	return out, nil
}
