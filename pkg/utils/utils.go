package utils

import (
	"math"
	"strings"
)

// Round rounds v to the given number of decimal places.
func Round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// Capitalize upper-cases the first rune and lower-cases the rest,
// mirroring the usual "title the single word" normalization.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
