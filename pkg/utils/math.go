package utils

import "math"

// RoundDecimal rounds value half away from zero to the given number of
// decimal places. RoundDecimal(-0.12345, 3) returns -0.123.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
