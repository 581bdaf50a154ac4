package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvConfig collects the tunables of ReadCSV.
type csvConfig struct {
	comma  rune
	header bool
}

// CSVOption adjusts how ReadCSV interprets its input.
type CSVOption func(*csvConfig)

// WithComma sets the field separator (default ',').
// Panics when sep cannot delimit fields.
func WithComma(sep rune) CSVOption {
	if sep == 0 || sep == '\n' || sep == '\r' || sep == '"' {
		panic(fmt.Sprintf("dataset: WithComma: invalid separator %q", sep))
	}

	return func(c *csvConfig) { c.comma = sep }
}

// WithoutHeader treats the first record as data; columns are then
// named V1..Vm.
func WithoutHeader() CSVOption {
	return func(c *csvConfig) { c.header = false }
}

// ReadCSV parses delimiter-separated numeric text into a Table.
//
// The first record names the columns unless WithoutHeader is given.
// Every remaining cell must parse as a float64; a ragged record or a
// non-numeric cell yields ErrInvalidInput annotated with its position.
//
// Complexity: O(n·m) time and memory.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	cfg := csvConfig{comma: ',', header: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.TrimLeadingSpace = true

	var names []string
	if cfg.header {
		record, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: header: %v", ErrInvalidInput, err)
		}
		names = record
	}

	var rows [][]float64
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidInput, line, err)
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d, field %d: %q is not numeric", ErrInvalidInput, line, j+1, cell)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data records", ErrInvalidInput)
	}

	return NewTable(names, rows)
}
