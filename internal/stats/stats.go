package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sum calculates the sum of a slice of float64 values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev calculates the population standard deviation (biased, divides by n)
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := stat.Mean(values, nil)
	return math.Sqrt(stat.MomentAbout(2, values, mean, nil))
}
