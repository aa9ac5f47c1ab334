package dataset

import (
	"math"
	"sort"
)

// DefaultInsightRows is the size of the longest/shortest lists.
const DefaultInsightRows = 5

// TopN returns the n rows with the largest distance, or the smallest when
// ascending is set. Ties keep their original order and missing distances
// sort last in both directions.
func TopN(d Dataset, n int, ascending bool) Dataset {
	if n <= 0 || d.Len() == 0 {
		return Empty()
	}

	dist := d.Distances()
	order := make([]int, len(dist))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		x, y := dist[order[a]], dist[order[b]]
		switch {
		case math.IsNaN(x):
			return false
		case math.IsNaN(y):
			return true
		case ascending:
			return x < y
		default:
			return x > y
		}
	})

	if n > len(order) {
		n = len(order)
	}
	return d.Subset(order[:n])
}

// Longest is TopN by descending distance.
func Longest(d Dataset, n int) Dataset {
	return TopN(d, n, false)
}

// Shortest is TopN by ascending distance.
func Shortest(d Dataset, n int) Dataset {
	return TopN(d, n, true)
}
