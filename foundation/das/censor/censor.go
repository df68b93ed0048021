// Package censor selects the subset of grid cells an adversarial data
// provider withholds from every client.
package censor

import (
	"math"
	"math/rand/v2"

	"github.com/availsim/dassim/foundation/das/grid"
)

// Count returns the number of cells to censor for the given fraction:
// round(percent * total) clamped to [0, total].
func Count(percent float64, total int) int {
	count := int(math.Round(percent * float64(total)))
	if count < 0 {
		return 0
	}
	if count > total {
		return total
	}
	return count
}

// Select picks the censored subset uniformly at random without replacement.
// The returned set always has exactly Count(percent, n*n) cells.
func Select(rng *rand.Rand, n int, percent float64) []grid.Cell {
	total := n * n
	count := Count(percent, total)

	// Partial Fisher-Yates over the flat cell indices. Only the first
	// count positions need to be settled.
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.IntN(total-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	cells := make([]grid.Cell, count)
	for i := 0; i < count; i++ {
		cells[i] = grid.Cell{Row: indices[i] / n, Col: indices[i] % n}
	}
	return cells
}
