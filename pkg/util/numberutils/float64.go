package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a float64 and returns any error that occurred during conversion.
// Surrounding whitespace is ignored.
func ToFloat64WithError(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// ToFloat64WithDefault converts the given string to a float64.
// If the string cannot be converted, it returns the provided default value.
func ToFloat64WithDefault(str string, defaultVal float64) float64 {
	if f, err := ToFloat64WithError(str); err == nil {
		return f
	}
	return defaultVal
}

// IsFloat64InRange checks if the given number is finite and within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return false
	}
	return num >= min && num <= max
}

// IsLatitude checks if the given number is a valid latitude in degrees.
func IsLatitude(num float64) bool {
	return IsFloat64InRange(num, -90, 90)
}

// IsLongitude checks if the given number is a valid longitude in degrees.
func IsLongitude(num float64) bool {
	return IsFloat64InRange(num, -180, 180)
}
