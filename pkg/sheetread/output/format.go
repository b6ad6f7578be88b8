// Package output renders materialized sheets as JSON or CSV.
package output

import (
	"math"
	"strconv"

	"github.com/ukaji3/sheetread-go/pkg/sheetread/cell"
)

// floatText renders non-finite floats, which JSON cannot carry as numbers.
func floatText(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// FormatValue renders a value as text.
func FormatValue(v cell.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case cell.Int:
		return strconv.FormatInt(int64(v), 10)
	case cell.Float:
		if s, ok := floatText(float64(v)); ok {
			return s
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case cell.String:
		return string(v)
	case cell.Bool:
		return strconv.FormatBool(bool(v))
	case cell.Timestamp:
		return v.String()
	case cell.Duration:
		return v.String()
	case cell.TimeOfDay:
		return v.String()
	}
	return ""
}

// jsonValue maps a value onto what the JSON encoder writes for it.
func jsonValue(v cell.Value) any {
	switch v := v.(type) {
	case cell.Int:
		return int64(v)
	case cell.Float:
		if s, ok := floatText(float64(v)); ok {
			return s
		}
		return float64(v)
	case cell.String:
		return string(v)
	case cell.Bool:
		return bool(v)
	case nil:
		return nil
	}
	return FormatValue(v)
}
