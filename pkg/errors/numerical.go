package errors

import (
	"math"
)

// CheckNumericalStability checks values for NaN or Inf and returns a
// NumericalInstabilityError if any is found.
func CheckNumericalStability(op string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(op, values)
		}
	}
	return nil
}

// CheckMatrix checks all entries of a matrix for NaN or Inf. The offending
// values are collected (up to ten) for the error message.
func CheckMatrix(op string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	var unstableValues []float64

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				unstableValues = append(unstableValues, v)
				if len(unstableValues) >= 10 {
					break
				}
			}
		}
		if len(unstableValues) >= 10 {
			break
		}
	}

	if len(unstableValues) > 0 {
		return NewNumericalInstabilityError(op, unstableValues)
	}

	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if the denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
