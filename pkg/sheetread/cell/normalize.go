package cell

import (
	"fmt"
	"math"
	"time"
)

// Bounds of the int64 range as float64. 2^63 itself is not an int64.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// Normalize maps a raw cell value to its normalized form. It never fails.
//
// Integral floats become Int, dates and date-times become Timestamp, and
// every other kind passes through unchanged. A nil raw value is the empty
// placeholder.
func Normalize(raw Raw) Value {
	switch v := raw.(type) {
	case nil:
		return Empty
	case Int:
		return v
	case Float:
		if i, ok := IntegralFloat(float64(v)); ok {
			return Int(i)
		}
		return v
	case String:
		return v
	case Bool:
		return v
	case Date:
		return Timestamp{time.Date(v.Year, v.Month, v.Day, 0, 0, 0, 0, time.UTC)}
	case DateTime:
		return Timestamp{v.Time}
	case Duration:
		return v
	case TimeOfDay:
		return v
	default:
		// Raw is sealed; reaching this means a case above is missing.
		panic(fmt.Sprintf("cell: unhandled raw value %T", raw))
	}
}

// NormalizeRow normalizes every cell of a row. The result has the same
// length as row and is never nil.
func NormalizeRow(row []Raw) []Value {
	out := make([]Value, len(row))
	for i, raw := range row {
		out[i] = Normalize(raw)
	}
	return out
}

// IntegralFloat reports whether f has no fractional part and fits in an
// int64, returning the truncated value when it does. NaN, infinities and
// values outside the int64 range are never integral.
func IntegralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t != f {
		return 0, false
	}
	if t < minInt64Float || t >= maxInt64Float {
		return 0, false
	}
	i := int64(t)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}

// Equal reports whether two normalized values are structurally equal.
// Floats compare by value with NaN equal to NaN; timestamps compare by
// instant.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Float:
		y, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}
		return x == y
	case Timestamp:
		y, ok := b.(Timestamp)
		return ok && x.Time.Equal(y.Time)
	default:
		return a == b
	}
}
