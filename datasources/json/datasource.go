// Package json profiles newline-delimited JSON files. Each top-level field
// is reduced to its dominant type across all lines; string fields go
// through textual inference, so a field of "2023-01-01" strings profiles as
// DATE rather than STRING.
package json

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/valyala/fastjson"

	"github.com/typelens/typelens/inference"
	"github.com/typelens/typelens/typelens"
)

type Options struct {
	// LineLimit bounds how many lines are profiled. Zero means all.
	LineLimit int
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

	return DescribeReader(bufio.NewReaderSize(f, 4096*1024), opts)
}

// DescribeReader profiles one JSON object per line from the reader. Fields
// appear in the result in order of first occurrence. A field missing from
// a line doesn't influence that field's dominant type.
func DescribeReader(r io.Reader, opts Options) ([]typelens.Column, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1024*1024)

	inf := opts.inferrer()
	var order []string
	seeded := map[string]typelens.DataType{}

	var p fastjson.Parser
	lines := 0
	for sc.Scan() && (opts.LineLimit == 0 || lines < opts.LineLimit) {
		if len(sc.Bytes()) == 0 {
			continue
		}
		v, err := p.ParseBytes(sc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("couldn't parse json: %w", err)
		}
		o, err := v.Object()
		if err != nil {
			return nil, fmt.Errorf("expected JSON object, got '%s'", sc.Text())
		}

		o.Visit(func(key []byte, v *fastjson.Value) {
			name := string(key)
			t := fieldType(inf, v)
			prev, ok := seeded[name]
			if !ok {
				order = append(order, name)
				seeded[name] = t
				return
			}
			// Same skip-and-seed rules as the collection profiler: empty
			// values neither set nor change a field's dominant type.
			switch {
			case t == typelens.Empty:
			case prev == typelens.Empty:
				seeded[name] = t
			default:
				seeded[name] = typelens.Promote(prev, t)
			}
		})
		lines++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read input: %w", err)
	}

	out := make([]typelens.Column, len(order))
	for i, name := range order {
		out[i] = typelens.Column{Name: name, Type: seeded[name]}
	}
	return out, nil
}

func fieldType(inf inference.Inferrer, v *fastjson.Value) typelens.DataType {
	switch v.Type() {
	case fastjson.TypeNull:
		return typelens.None
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return typelens.Boolean
	case fastjson.TypeNumber:
		if _, err := v.Int64(); err == nil {
			return typelens.Integer
		}
		return typelens.Float
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return inf.InferString(string(b))
	default:
		// Arrays and objects are outside the scalar domain; render-wise
		// they behave as opaque strings.
		return typelens.String
	}
}
