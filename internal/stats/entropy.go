package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ShannonEntropy calculates the Shannon entropy of a frequency distribution
// values: frequency counts or probabilities
// Returns entropy in bits (log base 2)
func ShannonEntropy(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := Sum(values)
	if sum == 0 {
		return 0
	}

	// Normalize to probabilities; stat.Entropy works in nats
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = v / sum
	}

	return stat.Entropy(probs) / math.Ln2
}

// NormalizedEntropy calculates the normalized Shannon entropy (0 to 1)
// Divides by log2(n) where n is the number of categories
func NormalizedEntropy(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}

	maxEntropy := math.Log2(float64(len(values)))
	if maxEntropy == 0 {
		return 0
	}

	return ShannonEntropy(values) / maxEntropy
}
