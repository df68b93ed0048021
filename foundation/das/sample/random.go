package sample

import (
	"math/rand/v2"

	"github.com/availsim/dassim/foundation/das/grid"
)

// randomSelect draws amount distinct cell coordinates uniformly at random
// from the n*n cells of the grid.
func randomSelect(rng *rand.Rand, n int, amount int, st Strategy) []grid.Cell {
	total := n * n
	if amount > total {
		amount = total
	}

	// Partial Fisher-Yates over the flat cell indices.
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < amount; i++ {
		j := i + rng.IntN(total-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	cells := make([]grid.Cell, amount)
	for i := 0; i < amount; i++ {
		cells[i] = grid.Cell{Row: indices[i] / n, Col: indices[i] % n}
	}
	return cells
}
