// Package grid represents the erasure-coded matrix as per-cell availability
// and confirmation state for data availability sampling.
package grid

import "fmt"

// Supported dimension modes. In 1D mode only rows participate in
// reconstruction, in 2D mode rows and columns both do.
const (
	Dims1D = 1
	Dims2D = 2
)

// Cell identifies a single coordinate in the grid.
type Cell struct {
	Row int
	Col int
}

// =============================================================================

// Grid is a square matrix of side n. Every cell carries two flags: available
// (false once censored) and confirmed (true once a client sample or a line
// reconstruction has verified it).
type Grid struct {
	n         int
	dims      int
	available []bool
	confirmed []bool
}

// New constructs an n by n grid with all cells available and unconfirmed.
func New(n int, dims int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid side must be positive, got %d", n)
	}
	if dims != Dims1D && dims != Dims2D {
		return nil, fmt.Errorf("dims must be %d or %d, got %d", Dims1D, Dims2D, dims)
	}

	available := make([]bool, n*n)
	for i := range available {
		available[i] = true
	}

	return &Grid{
		n:         n,
		dims:      dims,
		available: available,
		confirmed: make([]bool, n*n),
	}, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Dims returns the dimension mode of the grid.
func (g *Grid) Dims() int {
	return g.dims
}

// Total returns the total number of cells in the grid.
func (g *Grid) Total() int {
	return g.n * g.n
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// =============================================================================

// ApplyCensorship marks the given cells unavailable. A censored cell can
// never be confirmed by a direct sample, only by line reconstruction.
func (g *Grid) ApplyCensorship(cells []Cell) {
	for _, c := range cells {
		g.available[g.index(c)] = false
	}
}

// IsAvailable reports whether the cell's content is obtainable by a client.
func (g *Grid) IsAvailable(c Cell) bool {
	return g.available[g.index(c)]
}

// IsConfirmed reports whether the cell has been verified.
func (g *Grid) IsConfirmed(c Cell) bool {
	return g.confirmed[g.index(c)]
}

// MarkConfirmed records a successful client sample of the cell. Sampling an
// unavailable cell is a no-op since the client never receives the data. It
// reports whether the cell is confirmed after the call.
func (g *Grid) MarkConfirmed(c Cell) bool {
	i := g.index(c)
	if !g.available[i] {
		return false
	}
	g.confirmed[i] = true
	return true
}

// Recover marks the cell confirmed regardless of availability. It is meant
// for line reconstruction, where erasure coding recovers withheld cells from
// the rest of the line.
func (g *Grid) Recover(c Cell) {
	g.confirmed[g.index(c)] = true
}

// =============================================================================

// Row returns the ordered cells of row i for threshold checks.
func (g *Grid) Row(i int) []Cell {
	cells := make([]Cell, g.n)
	for j := 0; j < g.n; j++ {
		cells[j] = Cell{Row: i, Col: j}
	}
	return cells
}

// Col returns the ordered cells of column j for threshold checks.
func (g *Grid) Col(j int) []Cell {
	cells := make([]Cell, g.n)
	for i := 0; i < g.n; i++ {
		cells[i] = Cell{Row: i, Col: j}
	}
	return cells
}

// ConfirmedCount returns the number of confirmed cells in the whole grid.
func (g *Grid) ConfirmedCount() int {
	var count int
	for _, ok := range g.confirmed {
		if ok {
			count++
		}
	}
	return count
}

// LineCounts returns the confirmed-cell count per row and per column in a
// single scan of the grid.
func (g *Grid) LineCounts() (rows []int, cols []int) {
	rows = make([]int, g.n)
	cols = make([]int, g.n)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.confirmed[i*g.n+j] {
				rows[i]++
				cols[j]++
			}
		}
	}
	return rows, cols
}

// index converts a cell to its flat slice position.
func (g *Grid) index(c Cell) int {
	return c.Row*g.n + c.Col
}
