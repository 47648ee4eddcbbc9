// Package probe classifies arbitrary Go values by how they behave: can they
// be iterated, do they hold elements or key/value pairs, are they empty. It
// answers presentation questions the inference engine can't, most
// importantly whether a value is a container of values rather than a scalar
// or a string.
package probe

import (
	"reflect"
	"strings"
)

// Behavior is the coarse presentation category of a value.
type Behavior string

const (
	BehaviorEmpty    Behavior = "empty"
	BehaviorString   Behavior = "string"
	BehaviorListLike Behavior = "list-like"
	BehaviorMapLike  Behavior = "map-like"
	BehaviorIterable Behavior = "iterable"
	BehaviorScalar   Behavior = "scalar"
)

// IsIterable reports whether the value supports element-wise iteration.
// Strings count: they are sequences of characters.
func IsIterable(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan, reflect.String:
		return true
	}
	return false
}

// IsIterableNotString reports whether the value iterates over elements and
// is not itself a character sequence. This is the predicate the collection
// profiler validates its input with.
func IsIterableNotString(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	}
	return false
}

// IsListLike reports whether the value is an ordered, growable sequence of
// elements.
func IsListLike(v interface{}) bool {
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// IsMapLike reports whether the value holds key/value pairs.
func IsMapLike(v interface{}) bool {
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// IsEmpty reports whether the value is nil, a blank string, or a container
// with no elements. Numbers and booleans are never empty.
func IsEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return false
}

// BehaviorType names the presentation category of a value. The checks run
// most specific first: emptiness, then strings, then the container shapes,
// with scalar as the catch-all.
func BehaviorType(v interface{}) Behavior {
	switch {
	case IsEmpty(v):
		return BehaviorEmpty
	case reflect.ValueOf(v).Kind() == reflect.String:
		return BehaviorString
	case IsListLike(v):
		return BehaviorListLike
	case IsMapLike(v):
		return BehaviorMapLike
	case IsIterable(v):
		return BehaviorIterable
	}
	return BehaviorScalar
}
