package eval

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Spearman computes the Spearman rank correlation coefficient: the Pearson
// correlation of the two sequences' ranks, with tied values assigned their
// average rank. Returns NaN for empty or length-mismatched input.
func Spearman(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	return stat.Correlation(ranks(x), ranks(y), nil)
}

// ranks assigns 1-based ranks, averaging over ties.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	out := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Positions i..j hold equal values; they share the average rank.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
