package recon_test

import (
	"testing"

	"github.com/availsim/dassim/foundation/das/grid"
	"github.com/availsim/dassim/foundation/das/recon"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Threshold(t *testing.T) {
	type table struct {
		lineLen int
		exp     int
	}

	tt := []table{
		{lineLen: 4, exp: 2},
		{lineLen: 5, exp: 2},
		{lineLen: 8, exp: 4},
		{lineLen: 2, exp: 1},
		{lineLen: 1, exp: 1},
	}

	for _, tst := range tt {
		if got := recon.Threshold(tst.lineLen); got != tst.exp {
			t.Fatalf("Should get threshold %d for line length %d, got: %d", tst.exp, tst.lineLen, got)
		}
	}
}

func Test_RowReconstruction1D(t *testing.T) {
	t.Log("Given the need to reconstruct a full row from half its cells.")
	{
		t.Log("\tTest 0:\tWhen confirming 2 of 4 cells in one row of a 1D grid.")
		{
			g, err := grid.New(4, grid.Dims1D)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct grid: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct grid.", success)

			seeded := recon.Seed(g, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
			if seeded != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould seed 2 confirmed cells, got: %d", failed, seeded)
			}
			t.Logf("\t%s\tTest 0:\tShould seed 2 confirmed cells.", success)

			recon.Propagate(g)

			for _, c := range g.Row(0) {
				if !g.IsConfirmed(c) {
					t.Fatalf("\t%s\tTest 0:\tShould confirm the whole row, missing %+v.", failed, c)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould confirm the whole row.", success)

			if g.ConfirmedCount() != 4 {
				t.Fatalf("\t%s\tTest 0:\tShould not touch other rows, got %d confirmed.", failed, g.ConfirmedCount())
			}
			t.Logf("\t%s\tTest 0:\tShould not touch other rows.", success)
		}
	}
}

func Test_NoColumnPassIn1D(t *testing.T) {
	g, err := grid.New(4, grid.Dims1D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	// A full-threshold column must not propagate in 1D mode.
	recon.Seed(g, []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}})
	recon.Propagate(g)

	if g.ConfirmedCount() != 3 {
		t.Fatalf("Should leave the grid unchanged in 1D mode, got %d confirmed.", g.ConfirmedCount())
	}
}

func Test_AlternatingPropagation2D(t *testing.T) {
	t.Log("Given the need to alternate row and column passes to a fixpoint.")
	{
		t.Log("\tTest 0:\tWhen seeding 4 cells of a 4x4 2D grid.")
		{
			g, err := grid.New(4, grid.Dims2D)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct grid: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct grid.", success)

			// Row 0 crosses the threshold on its own; everything else
			// only reconstructs through alternating passes.
			recon.Seed(g, []grid.Cell{
				{Row: 0, Col: 0},
				{Row: 0, Col: 1},
				{Row: 1, Col: 2},
				{Row: 3, Col: 3},
			})

			passes := recon.Propagate(g)

			if g.ConfirmedCount() != g.Total() {
				t.Fatalf("\t%s\tTest 0:\tShould cascade to the full grid, got %d of %d.", failed, g.ConfirmedCount(), g.Total())
			}
			t.Logf("\t%s\tTest 0:\tShould cascade to the full grid.", success)

			if passes > 2*g.Size() {
				t.Fatalf("\t%s\tTest 0:\tShould stay within the pass bound, got: %d", failed, passes)
			}
			t.Logf("\t%s\tTest 0:\tShould stay within the pass bound.", success)
		}
	}
}

func Test_CensoredLineRecovery(t *testing.T) {
	g, err := grid.New(4, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	// Withhold all of row 1. No sample can land there, but full columns
	// recover it once rows 0 and 2 are confirmed.
	g.ApplyCensorship(g.Row(1))

	var seeds []grid.Cell
	seeds = append(seeds, g.Row(0)...)
	seeds = append(seeds, g.Row(2)...)
	recon.Seed(g, seeds)

	recon.Propagate(g)

	for _, c := range g.Row(1) {
		if !g.IsConfirmed(c) {
			t.Fatalf("Should recover the censored row through columns, missing %+v.", c)
		}
	}
}

func Test_SeedSkipsCensoredCells(t *testing.T) {
	g, err := grid.New(4, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	cell := grid.Cell{Row: 2, Col: 2}
	g.ApplyCensorship([]grid.Cell{cell})

	if seeded := recon.Seed(g, []grid.Cell{cell}); seeded != 0 {
		t.Fatalf("Should not seed a censored cell, got %d confirmed.", seeded)
	}
}

func Test_PropagationIdempotent(t *testing.T) {
	g, err := grid.New(4, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	recon.Seed(g, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}})
	recon.Propagate(g)
	first := snapshot(g)

	recon.Propagate(g)
	second := snapshot(g)

	for i := range first {
		if first[i] != second[i] {
			t.Fatal("Should reach the same fixpoint when propagating twice.")
		}
	}
}

func Test_PropagationMonotone(t *testing.T) {
	g, err := grid.New(4, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	recon.Seed(g, []grid.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 3, Col: 2}})
	before := snapshot(g)

	recon.Propagate(g)

	after := snapshot(g)
	for i := range before {
		if before[i] && !after[i] {
			t.Fatal("Should never unconfirm a cell during propagation.")
		}
	}
}

func Test_EmptySeedNeverReconstructs(t *testing.T) {
	g, err := grid.New(4, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	recon.Propagate(g)

	if g.ConfirmedCount() != 0 {
		t.Fatalf("Should reconstruct nothing from an empty seed, got: %d", g.ConfirmedCount())
	}
}

// snapshot captures the confirmed flag of every cell in row order.
func snapshot(g *grid.Grid) []bool {
	flags := make([]bool, 0, g.Total())
	for i := 0; i < g.Size(); i++ {
		for _, c := range g.Row(i) {
			flags = append(flags, g.IsConfirmed(c))
		}
	}
	return flags
}
