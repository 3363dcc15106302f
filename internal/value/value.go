package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a sealed interface representing a client field value.
// Only Null, String, Int and Raw implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents an absent or null field value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// String represents a text value.
type String string

func (String) value() {}

// Int represents an integer value. Always int64, never float64.
type Int int64

func (Int) value() {}

// Raw is any other decoded value (fraction, boolean, object, array, or an
// integer outside int64) kept opaque as its compact JSON text.
// Raw never matches a search; it groups by exact text.
type Raw string

func (Raw) value() {}

// IsNull reports whether v is Null. A Go nil is treated as Null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Text returns the text used for substring matching.
// Int renders in decimal. Returns false for Null.
func Text(v Value) (string, bool) {
	switch val := v.(type) {
	case String:
		return string(val), true
	case Int:
		return strconv.FormatInt(int64(val), 10), true
	default:
		return "", false
	}
}

// Key returns the exact grouping key for v.
//
// Strings are Go-quoted, ints are bare decimal, Raw values are prefixed
// with "raw:" and Null is "null", so String("1"), Int(1) and Raw("1.5")
// never collide. No normalization is applied: "A@x.com" and "a@x.com" are
// different keys.
func Key(v Value) string {
	switch val := v.(type) {
	case String:
		return strconv.Quote(string(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Raw:
		return "raw:" + string(val)
	default:
		return "null"
	}
}

// Marshal marshals a Value to JSON bytes.
// Uses type-switch dispatch so a nil interface encodes as null.
func Marshal(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil, Null:
		return []byte("null"), nil
	case String:
		return json.Marshal(string(val))
	case Int:
		return json.Marshal(int64(val))
	case Raw:
		if json.Valid([]byte(val)) {
			return []byte(val), nil
		}
		return json.Marshal(string(val))
	default:
		return nil, fmt.Errorf("unknown Value type: %T", v)
	}
}

// Format renders v for line-oriented text output:
// strings are double-quoted, ints and Raw values bare, Null as "nil".
func Format(v Value) string {
	switch val := v.(type) {
	case String:
		return strconv.Quote(string(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Raw:
		return string(val)
	default:
		return "nil"
	}
}

// FromAny converts a decoded Go value into a Value.
//
// nil becomes Null, string and []byte become String, and numbers holding
// an exact int64 (including integral floats such as 1.0 from YAML or CUE)
// become Int. Everything else is kept as Raw.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Value:
		return val
	case string:
		return String(val)
	case []byte:
		return String(val)
	case json.Number:
		if !strings.ContainsAny(string(val), ".eE") {
			if n, err := val.Int64(); err == nil {
				return Int(n)
			}
			return Raw(val)
		}
		if f, err := val.Float64(); err == nil {
			if n, ok := exactInt(f); ok {
				return Int(n)
			}
		}
		return Raw(val)
	case int:
		return Int(val)
	case int32:
		return Int(val)
	case int64:
		return Int(val)
	case uint:
		return fromUint(uint64(val))
	case uint32:
		return Int(val)
	case uint64:
		return fromUint(val)
	case float64:
		return fromFloat(val)
	case float32:
		return fromFloat(float64(val))
	default:
		return toRaw(v)
	}
}

func fromUint(n uint64) Value {
	if n > math.MaxInt64 {
		return Raw(strconv.FormatUint(n, 10))
	}
	return Int(n)
}

func fromFloat(f float64) Value {
	if n, ok := exactInt(f); ok {
		return Int(n)
	}
	return toRaw(f)
}

// exactInt reports whether f holds an int64 exactly.
func exactInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// toRaw encodes v as compact JSON. Values JSON cannot encode (NaN, maps with
// non-string keys) fall back to their fmt rendering.
func toRaw(v any) Value {
	data, err := json.Marshal(v)
	if err != nil {
		return Raw(fmt.Sprint(v))
	}
	return Raw(data)
}
