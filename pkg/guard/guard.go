// Package guard holds the primitive shape checks used when reading decoded
// JSON (or YAML) payloads. Every function is total: it never panics and never
// coerces one primitive type into another.
package guard

import "math"

// IsNonEmptyString reports whether x is a string with at least one byte.
func IsNonEmptyString(x any) bool {
	s, ok := x.(string)
	return ok && s != ""
}

// IsFiniteNumber reports whether x is a number that is neither NaN nor ±Inf.
// Booleans and numeric strings are not numbers.
func IsFiniteNumber(x any) bool {
	_, ok := Number(x)
	return ok
}

// IsNullableString reports whether x is nil or a string.
func IsNullableString(x any) bool {
	if x == nil {
		return true
	}
	_, ok := x.(string)
	return ok
}

// IsNullableNumber reports whether x is nil or a finite number.
func IsNullableNumber(x any) bool {
	return x == nil || IsFiniteNumber(x)
}

// IsOneOf reports whether x is a string exactly equal to one of allowed.
// Matching is case-sensitive.
func IsOneOf(x any, allowed ...string) bool {
	s, ok := x.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// ToArrayOrEmpty returns x unchanged when it is an array and an empty,
// non-nil slice otherwise.
func ToArrayOrEmpty(x any) []any {
	if arr, ok := x.([]any); ok && arr != nil {
		return arr
	}
	return []any{}
}

// AsObject returns x as a JSON object. nil maps are not objects.
func AsObject(x any) (map[string]any, bool) {
	m, ok := x.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// Number returns x as a float64 when it is a finite number of any Go numeric
// kind produced by encoding/json or yaml.v3.
func Number(x any) (float64, bool) {
	var f float64
	switch v := x.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// String returns x when it is a string.
func String(x any) (string, bool) {
	s, ok := x.(string)
	return s, ok
}

// NullableString returns nil for a nil x, a pointer to the value for a
// string x, and ok=false for anything else.
func NullableString(x any) (*string, bool) {
	if x == nil {
		return nil, true
	}
	s, ok := x.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

// NullableNumber is the numeric counterpart of NullableString.
func NullableNumber(x any) (*float64, bool) {
	if x == nil {
		return nil, true
	}
	f, ok := Number(x)
	if !ok {
		return nil, false
	}
	return &f, true
}
