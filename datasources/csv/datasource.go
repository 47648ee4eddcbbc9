// Package csv profiles delimiter-separated files: each column is reduced to
// its single dominant type, independently of the others.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/typelens/typelens/inference"
	"github.com/typelens/typelens/typelens"
)

type Options struct {
	// Separator is the field delimiter. Zero means comma.
	Separator rune
	// NoHeader treats the first record as data and synthesizes column
	// names.
	NoHeader bool
	// RowLimit bounds how many data rows are profiled. Zero means all.
	RowLimit int
	// Inferrer overrides the default inference settings when non-nil.
	Inferrer *inference.Inferrer
}

func (o Options) inferrer() inference.Inferrer {
	if o.Inferrer != nil {
		return *o.Inferrer
	}
	return inference.New()
}

// Describe profiles the file at the given path.
func Describe(path string, opts Options) ([]typelens.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open file: %w", err)
	}
	defer f.Close()

	return DescribeReader(f, opts)
}

// DescribeReader profiles CSV data from the reader. The result has one
// column per field of the input, in input order.
func DescribeReader(r io.Reader, opts Options) ([]typelens.Column, error) {
	decoder := csv.NewReader(r)
	decoder.Comma = ','
	if opts.Separator != 0 {
		decoder.Comma = opts.Separator
	}
	decoder.ReuseRecord = true

	row, err := decoder.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("couldn't decode csv header row: %w", err)
	}

	fieldNames := make([]string, len(row))
	columns := make([][]string, len(row))
	rows := 0
	if opts.NoHeader {
		// The first record is data here, so it counts against the limit.
		for i := range row {
			fieldNames[i] = fmt.Sprintf("column_%d", i+1)
			columns[i] = append(columns[i], row[i])
		}
		rows++
	} else {
		copy(fieldNames, row)
	}

	for opts.RowLimit == 0 || rows < opts.RowLimit {
		row, err = decoder.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("couldn't decode csv row: %w", err)
		}
		for i := range row {
			columns[i] = append(columns[i], row[i])
		}
		rows++
	}

	inf := opts.inferrer()
	out := make([]typelens.Column, len(fieldNames))
	for i := range fieldNames {
		out[i] = typelens.Column{
			Name: fieldNames[i],
			Type: inf.ProfileStrings(columns[i]),
		}
	}
	return out, nil
}
