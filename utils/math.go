package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	return math.Max(a, b)
}
