package finance

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts free-form numeric input to a float64.
// Interactive forms submit transiently empty or half-typed values; anything
// that fails to parse contributes zero instead of failing the edit.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RoundHalfUp rounds a value to the nearest whole currency unit.
func RoundHalfUp(v float64) float64 {
	return math.Round(v)
}
