package scoring

import (
	"math"
	"sort"
)

// percentileRank returns the 0-100 rank of value within a population sorted
// ascending: the share of the population strictly below it. Ties share a
// rank, the minimum ranks 0 and the maximum ranks 100. A single-element
// population ranks 50, there being nothing to compare against.
func percentileRank(sorted []float64, value float64) float64 {
	n := len(sorted)
	if n <= 1 {
		return 50
	}
	below := sort.SearchFloat64s(sorted, value)
	return 100 * float64(below) / float64(n-1)
}

// orderStat returns the nearest-rank p-th percentile of a population sorted
// ascending, indexing at floor(p/100 * (n-1)) with no interpolation.
func orderStat(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(math.Floor(p / 100 * float64(n-1)))
	return sorted[idx]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
