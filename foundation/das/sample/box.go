package sample

import (
	"math/rand/v2"

	"github.com/availsim/dassim/foundation/das/grid"
)

// boxSelect partitions the grid into width by height tiles and draws amount
// distinct tiles, returning every cell of each drawn tile. Validate
// guarantees the tile sides evenly divide the grid side.
func boxSelect(rng *rand.Rand, n int, amount int, st Strategy) []grid.Cell {
	tilesAcross := n / st.BoxWidth
	tilesDown := n / st.BoxHeight
	totalTiles := tilesAcross * tilesDown
	if amount > totalTiles {
		amount = totalTiles
	}

	// Partial Fisher-Yates over the flat tile indices.
	tiles := make([]int, totalTiles)
	for i := range tiles {
		tiles[i] = i
	}
	for i := 0; i < amount; i++ {
		j := i + rng.IntN(totalTiles-i)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}

	cells := make([]grid.Cell, 0, amount*st.BoxWidth*st.BoxHeight)
	for i := 0; i < amount; i++ {
		startRow := (tiles[i] / tilesAcross) * st.BoxHeight
		startCol := (tiles[i] % tilesAcross) * st.BoxWidth

		for r := startRow; r < startRow+st.BoxHeight; r++ {
			for c := startCol; c < startCol+st.BoxWidth; c++ {
				cells = append(cells, grid.Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}
