package common

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AtofDefault converts the provided string to a float falling back to the default when parsing fails.
func AtofDefault(value string, def float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return def
	}
	return parsed
}

// NumberDefault coerces an arbitrary decoded JSON value to a float64.
// Form-backed clients send numbers as strings; API clients send real numbers.
// Anything non-numeric falls back to the default instead of propagating NaN.
func NumberDefault(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return v
	case float32:
		return NumberDefault(float64(v), def)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		return AtofDefault(v.String(), def)
	case string:
		return AtofDefault(v, def)
	default:
		return def
	}
}

// PriceDefault coerces a decoded value to a non-negative unit price. Bad or
// negative input becomes zero, never an error.
func PriceDefault(value any) float64 {
	price := NumberDefault(value, 0)
	if price < 0 {
		return 0
	}
	return price
}

// FactorDefault coerces a decoded value to a quantity factor. Factors are at
// least 1 so a blank input never multiplies a line total to zero.
func FactorDefault(value any, prior float64) float64 {
	if prior < 1 {
		prior = 1
	}
	factor := NumberDefault(value, prior)
	if factor < 1 {
		return prior
	}
	return factor
}
