package inference

import (
	"fmt"
	"reflect"
	"time"

	"github.com/pkg/errors"

	"github.com/typelens/typelens/probe"
	"github.com/typelens/typelens/typelens"
)

// incrementalTypecheckThreshold is the collection size at which the
// profiler switches to chunked scanning with early exit between chunks.
// The result is always identical to a full linear scan; the threshold only
// bounds how much work a sequence that turns out MIXED can cost.
const incrementalTypecheckThreshold = 10000

// IncrementalTypecheckThreshold returns the chunked-scan threshold.
func IncrementalTypecheckThreshold() int {
	return incrementalTypecheckThreshold
}

// ProfileStrings reduces a sequence of texts to the single dominant type.
//
// Empty elements are skipped and never influence dominance. The first
// non-empty element seeds the dominant type, Integer and Float merge to
// Float, and any other disagreement makes the whole sequence MIXED. An
// input with no non-empty element at all is EMPTY.
func (inf Inferrer) ProfileStrings(values []string) typelens.DataType {
	return inf.profile(len(values), func(i int) typelens.DataType {
		return inf.InferString(values[i])
	})
}

// Profile is ProfileStrings for arbitrary sequences. The argument must be
// iterable and not a string; anything else is API misuse and returns an
// error rather than a fallback type. Elements may be strings, tagged
// typelens.Values, or native Go scalars.
func (inf Inferrer) Profile(seq interface{}) (typelens.DataType, error) {
	if !probe.IsIterableNotString(seq) {
		return typelens.None, errors.Errorf("values must be iterable, got %T", seq)
	}

	var elems []interface{}
	v := reflect.ValueOf(seq)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems = make([]interface{}, v.Len())
		for i := range elems {
			elems[i] = v.Index(i).Interface()
		}
	case reflect.Map:
		// Iterating a map yields its keys, matching how the rest of the
		// library treats mappings as key sequences.
		elems = make([]interface{}, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			elems = append(elems, iter.Key().Interface())
		}
	default:
		// Channels are iterable but draining one is a side effect the
		// profiler must not have.
		return typelens.None, errors.Errorf("couldn't profile values of type %T", seq)
	}

	return inf.profile(len(elems), func(i int) typelens.DataType {
		return inf.Infer(normalize(elems[i]))
	}), nil
}

func (inf Inferrer) profile(n int, typeAt func(i int) typelens.DataType) typelens.DataType {
	if n == 0 {
		return typelens.Empty
	}

	chunk := n
	if n >= incrementalTypecheckThreshold {
		chunk = incrementalTypecheckThreshold
	}

	// Empty doubles as "no dominant type yet": empty elements never seed
	// dominance, so reaching the end still at Empty is exactly the
	// all-empty verdict.
	dominant := typelens.Empty
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			t := typeAt(i)
			if t == typelens.Empty {
				continue
			}
			if dominant == typelens.Empty {
				dominant = t
				continue
			}
			dominant = typelens.Promote(dominant, t)
		}
		if dominant == typelens.Mixed {
			// No later element can change a MIXED verdict.
			return typelens.Mixed
		}
	}
	return dominant
}

// normalize brings a native Go scalar into the tagged value union. Types
// outside the union degrade to their STRING rendering for dominance
// purposes rather than failing the scan.
func normalize(value interface{}) typelens.Value {
	switch value := value.(type) {
	case nil:
		return typelens.NewAbsent()
	case typelens.Value:
		return value
	case string:
		return typelens.NewString(value)
	case int:
		return typelens.NewInt(int64(value))
	case int8:
		return typelens.NewInt(int64(value))
	case int16:
		return typelens.NewInt(int64(value))
	case int32:
		return typelens.NewInt(int64(value))
	case int64:
		return typelens.NewInt(value)
	case uint:
		return typelens.NewInt(int64(value))
	case uint8:
		return typelens.NewInt(int64(value))
	case uint16:
		return typelens.NewInt(int64(value))
	case uint32:
		return typelens.NewInt(int64(value))
	case uint64:
		return typelens.NewInt(int64(value))
	case float32:
		return typelens.NewFloat(float64(value))
	case float64:
		return typelens.NewFloat(value)
	case bool:
		return typelens.NewBoolean(value)
	case time.Time:
		return typelens.NewDatetime(value)
	default:
		return typelens.NewString(fmt.Sprint(value))
	}
}
