// Package recon implements the iterative row/column reconstruction that
// determines what fraction of the grid becomes provably available after
// sampling.
package recon

import "github.com/availsim/dassim/foundation/das/grid"

// Threshold returns the number of confirmed cells a line needs before the
// erasure code recovers the whole line. The pinned rule is half the line
// length rounded down, never less than one so an empty line can never
// reconstruct. This boundary governs every simulation outcome.
func Threshold(lineLen int) int {
	t := lineLen / 2
	if t < 1 {
		t = 1
	}
	return t
}

// Seed marks the union of all clients' sampled cells confirmed. Samples of
// censored cells fail silently since the client never receives the data. It
// returns the number of confirmed cells after seeding.
func Seed(g *grid.Grid, cells []grid.Cell) int {
	for _, c := range cells {
		g.MarkConfirmed(c)
	}
	return g.ConfirmedCount()
}

// Propagate runs full-line reconstruction to a fixpoint: any row (and in 2D
// mode any column) whose confirmed count reaches the threshold is recovered
// in full, censored cells included, and passes repeat until one completes
// without progress. It returns the number of passes executed. A pass can
// confirm at most one new full line short of the whole grid, so 2n passes
// bound the loop in a grid of side n.
func Propagate(g *grid.Grid) int {
	maxPasses := 2 * g.Size()

	for pass := 1; pass <= maxPasses; pass++ {
		changed := rowPass(g)
		if g.Dims() == grid.Dims2D {
			if colPass(g) {
				changed = true
			}
		}
		if !changed {
			return pass
		}
	}
	return maxPasses
}

// =============================================================================

// rowPass recovers every row at or above the threshold and reports whether
// any cell changed state.
func rowPass(g *grid.Grid) bool {
	n := g.Size()
	threshold := Threshold(n)
	rows, _ := g.LineCounts()

	var changed bool
	for i := 0; i < n; i++ {
		if rows[i] < threshold || rows[i] == n {
			continue
		}
		for _, c := range g.Row(i) {
			if !g.IsConfirmed(c) {
				g.Recover(c)
				changed = true
			}
		}
	}
	return changed
}

// colPass recovers every column at or above the threshold and reports
// whether any cell changed state.
func colPass(g *grid.Grid) bool {
	n := g.Size()
	threshold := Threshold(n)
	_, cols := g.LineCounts()

	var changed bool
	for j := 0; j < n; j++ {
		if cols[j] < threshold || cols[j] == n {
			continue
		}
		for _, c := range g.Col(j) {
			if !g.IsConfirmed(c) {
				g.Recover(c)
				changed = true
			}
		}
	}
	return changed
}
