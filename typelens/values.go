package typelens

import (
	"fmt"
	"time"
)

// ZeroValue is the absent value.
var ZeroValue = Value{}

// Value is a scalar tagged with its concrete DataType. Exactly one of the
// payload fields is meaningful, as picked out by Type. Date, Time and
// Datetime all use the Time field; a Date carries a midnight clock and a
// Time carries the zero date.
type Value struct {
	Type    DataType
	Int     int64
	Float   float64
	Boolean bool
	Str     string
	Time    time.Time
}

func NewAbsent() Value {
	return Value{Type: None}
}

func NewInt(value int64) Value {
	return Value{
		Type: Integer,
		Int:  value,
	}
}

func NewFloat(value float64) Value {
	return Value{
		Type:  Float,
		Float: value,
	}
}

func NewBoolean(value bool) Value {
	return Value{
		Type:    Boolean,
		Boolean: value,
	}
}

func NewString(value string) Value {
	return Value{
		Type: String,
		Str:  value,
	}
}

func NewDate(year int, month time.Month, day int) Value {
	return Value{
		Type: Date,
		Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func NewTime(hour, minute, second int) Value {
	return Value{
		Type: Time,
		Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC),
	}
}

func NewDatetime(value time.Time) Value {
	return Value{
		Type: Datetime,
		Time: value,
	}
}

func (value Value) String() string {
	switch value.Type {
	case None:
		return "null"
	case Integer:
		return fmt.Sprint(value.Int)
	case Float:
		return fmt.Sprint(value.Float)
	case Boolean:
		return fmt.Sprint(value.Boolean)
	case String:
		return value.Str
	case Date:
		return value.Time.Format("2006-01-02")
	case Time:
		return value.Time.Format("15:04:05")
	case Datetime:
		return value.Time.Format("2006-01-02T15:04:05")
	default:
		panic("invalid typelens.Value to render")
	}
}

// ToRawGoValue unwraps the tagged value into the plain Go value it carries.
func (value Value) ToRawGoValue() interface{} {
	switch value.Type {
	case None:
		return nil
	case Integer:
		return value.Int
	case Float:
		return value.Float
	case Boolean:
		return value.Boolean
	case String:
		return value.Str
	case Date, Time, Datetime:
		return value.Time
	default:
		panic("invalid typelens.Value to get raw Go value for")
	}
}
