// Package inference turns loosely-typed text into the most specific scalar
// type it represents, both for single values and for whole collections.
package inference

import (
	"time"

	"github.com/typelens/typelens/typelens"
)

// Inferrer carries the one knob the engine has: whether surrounding
// whitespace is trimmed before grammar matching. The flag threads uniformly
// through the validators, single-value inference and the profiler.
type Inferrer struct {
	TrimSpace bool
}

// New returns an Inferrer with the default trimming behavior.
func New() Inferrer {
	return Inferrer{TrimSpace: true}
}

var defaultInferrer = New()

// InferString names the most specific type the text represents.
//
// The checks run in a fixed priority order. Numeric grammars come before the
// boolean word set so no numeric string is ever read as a boolean, and
// datetime comes after date and time since a datetime string satisfies
// neither of the simpler grammars on its own.
func (inf Inferrer) InferString(s string) typelens.DataType {
	s = inf.trim(s)
	if s == "" {
		return typelens.Empty
	}
	if noneWord(s) {
		return typelens.None
	}
	switch {
	case intLike(s):
		return typelens.Integer
	case floatLike(s):
		return typelens.Float
	case boolLike(s):
		return typelens.Boolean
	case dateLike(s):
		return typelens.Date
	case timeLike(s):
		return typelens.Time
	case datetimeLike(s):
		return typelens.Datetime
	}
	return typelens.String
}

// Infer names the type of a tagged value. Non-string values already carry
// their type; string values go through grammar matching.
func (inf Inferrer) Infer(v typelens.Value) typelens.DataType {
	if v.Type == typelens.String {
		return inf.InferString(v.Str)
	}
	return v.Type
}

// Convert parses the text into its inferred type. Text that infers to
// STRING comes back unchanged; text that trims to empty comes back as the
// empty string; none-like text becomes the absent value.
func (inf Inferrer) Convert(s string) typelens.Value {
	switch inf.InferString(s) {
	case typelens.Empty:
		return typelens.NewString("")
	case typelens.None:
		return typelens.NewAbsent()
	case typelens.Integer:
		// Grammar-valid digits can still exceed the int64 range. Such
		// values widen to float when they fit and otherwise stay text;
		// they never come back as a mangled number.
		if n, ok := inf.ToInt(s); ok {
			return typelens.NewInt(n)
		}
		if f, ok := inf.ToFloat(s); ok {
			return typelens.NewFloat(f)
		}
		return typelens.NewString(s)
	case typelens.Float:
		if f, ok := inf.ToFloat(s); ok {
			return typelens.NewFloat(f)
		}
		return typelens.NewString(s)
	case typelens.Boolean:
		b, _ := inf.ToBool(s)
		return typelens.NewBoolean(b)
	case typelens.Date:
		d, _ := inf.ToDate(s)
		return typelens.NewDate(d.Year(), d.Month(), d.Day())
	case typelens.Time:
		t, _ := inf.ToTime(s)
		return typelens.NewTime(t.Hour(), t.Minute(), t.Second())
	case typelens.Datetime:
		dt, _ := inf.ToDatetime(s)
		return typelens.NewDatetime(dt)
	}
	return typelens.NewString(s)
}

// ConvertValue converts string values and passes every already-typed value
// through unchanged.
func (inf Inferrer) ConvertValue(v typelens.Value) typelens.Value {
	if v.Type == typelens.String {
		return inf.Convert(v.Str)
	}
	return v
}

// CanInfer reports whether the value is text that inference applies to.
// Every string qualifies, since STRING is itself a valid outcome; values
// that already carry a non-string type, and the absent value, don't.
func (inf Inferrer) CanInfer(v typelens.Value) bool {
	return v.Type == typelens.String
}

// Package-level calls, using the default Inferrer.

func InferString(s string) typelens.DataType { return defaultInferrer.InferString(s) }
func Infer(v typelens.Value) typelens.DataType { return defaultInferrer.Infer(v) }
func Convert(s string) typelens.Value { return defaultInferrer.Convert(s) }
func ConvertValue(v typelens.Value) typelens.Value { return defaultInferrer.ConvertValue(v) }
func CanInfer(v typelens.Value) bool { return defaultInferrer.CanInfer(v) }
func ProfileStrings(values []string) typelens.DataType { return defaultInferrer.ProfileStrings(values) }
func Profile(seq interface{}) (typelens.DataType, error) { return defaultInferrer.Profile(seq) }

func IsIntLike(s string) bool { return defaultInferrer.IsIntLike(s) }
func IsFloatLike(s string) bool { return defaultInferrer.IsFloatLike(s) }
func IsBoolLike(s string) bool { return defaultInferrer.IsBoolLike(s) }
func IsDateLike(s string) bool { return defaultInferrer.IsDateLike(s) }
func IsTimeLike(s string) bool { return defaultInferrer.IsTimeLike(s) }
func IsDatetimeLike(s string) bool { return defaultInferrer.IsDatetimeLike(s) }

func IsNoneLike(v typelens.Value) bool { return defaultInferrer.IsNoneLike(v) }
func IsEmptyLike(v typelens.Value) bool { return defaultInferrer.IsEmptyLike(v) }
func IsNumericLike(v typelens.Value) bool { return defaultInferrer.IsNumericLike(v) }
func IsCategoryLike(v typelens.Value) bool { return defaultInferrer.IsCategoryLike(v) }
func HasLeadingZero(v typelens.Value) bool { return defaultInferrer.HasLeadingZero(v) }

func ToInt(s string) (int64, bool) { return defaultInferrer.ToInt(s) }
func ToFloat(s string) (float64, bool) { return defaultInferrer.ToFloat(s) }
func ToBool(s string) (bool, bool) { return defaultInferrer.ToBool(s) }
func ToDate(s string) (time.Time, bool) { return defaultInferrer.ToDate(s) }
func ToTime(s string) (time.Time, bool) { return defaultInferrer.ToTime(s) }
func ToDatetime(s string) (time.Time, bool) { return defaultInferrer.ToDatetime(s) }
