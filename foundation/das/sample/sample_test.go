package sample_test

import (
	"math/rand/v2"
	"testing"

	"github.com/availsim/dassim/foundation/das/grid"
	"github.com/availsim/dassim/foundation/das/sample"
)

func Test_Retrieve(t *testing.T) {
	st, err := sample.Retrieve(sample.StrategyRandom, 0, 0)
	if err != nil {
		t.Fatalf("Should retrieve the random strategy: %v", err)
	}
	if st.Name != sample.StrategyRandom {
		t.Fatalf("Should get the random strategy, got: %q", st.Name)
	}

	st, err = sample.Retrieve(sample.StrategyBox, 4, 2)
	if err != nil {
		t.Fatalf("Should retrieve the box strategy: %v", err)
	}
	if st.BoxWidth != 4 || st.BoxHeight != 2 {
		t.Fatalf("Should keep the tile size, got: %dx%d", st.BoxWidth, st.BoxHeight)
	}

	if _, err = sample.Retrieve("spiral", 0, 0); err == nil {
		t.Fatal("Should reject an unknown strategy name.")
	}
}

func Test_Validate(t *testing.T) {
	type table struct {
		name string
		st   sample.Strategy
		n    int
		ok   bool
	}

	tt := []table{
		{name: "random", st: sample.Random(), n: 16, ok: true},
		{name: "boxdivides", st: sample.Box(4, 2), n: 16, ok: true},
		{name: "boxwidth", st: sample.Box(3, 2), n: 16, ok: false},
		{name: "boxheight", st: sample.Box(4, 5), n: 16, ok: false},
		{name: "boxzero", st: sample.Box(0, 2), n: 16, ok: false},
		{name: "unknown", st: sample.Strategy{Name: "spiral"}, n: 16, ok: false},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			err := tst.st.Validate(tst.n)
			if tst.ok != (err == nil) {
				t.Fatalf("Test %s:\tShould get err == nil [%v], got: %v", tst.name, tst.ok, err)
			}
		}

		t.Run(tst.name, f)
	}
}

func Test_RandomSelect(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	st := sample.Random()

	const n = 8
	cells := st.Select(rng, n, 20)

	if len(cells) != 20 {
		t.Fatalf("Should draw exactly 20 cells, got: %d", len(cells))
	}

	g, err := grid.New(n, grid.Dims2D)
	if err != nil {
		t.Fatalf("Should be able to construct grid: %v", err)
	}

	seen := make(map[grid.Cell]bool)
	for _, c := range cells {
		if !g.Contains(c) {
			t.Fatalf("Should draw cells inside the grid, got: %+v", c)
		}
		if seen[c] {
			t.Fatalf("Should draw without replacement, got %+v twice.", c)
		}
		seen[c] = true
	}
}

func Test_RandomSelectClamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	st := sample.Random()

	cells := st.Select(rng, 2, 100)
	if len(cells) != 4 {
		t.Fatalf("Should clamp to the 4 distinct cells, got: %d", len(cells))
	}
	if st.MaxDraws(2) != 4 {
		t.Fatalf("Should report 4 distinct draws, got: %d", st.MaxDraws(2))
	}
}

func Test_BoxSelect(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	st := sample.Box(4, 2)

	const n = 8
	cells := st.Select(rng, n, 2)

	// Two distinct 4x2 tiles worth of cells.
	if len(cells) != 2*4*2 {
		t.Fatalf("Should draw two whole tiles, got %d cells.", len(cells))
	}

	seen := make(map[grid.Cell]bool)
	for _, c := range cells {
		if seen[c] {
			t.Fatalf("Should draw distinct tiles, got %+v twice.", c)
		}
		seen[c] = true
	}

	if st.MaxDraws(n) != (n/4)*(n/2) {
		t.Fatalf("Should report %d distinct tiles, got: %d", (n/4)*(n/2), st.MaxDraws(n))
	}
}

func Test_SelectZeroSamples(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	if cells := sample.Random().Select(rng, 4, 0); len(cells) != 0 {
		t.Fatalf("Should draw nothing for zero samples, got: %d", len(cells))
	}
	if cells := sample.Box(2, 2).Select(rng, 4, 0); len(cells) != 0 {
		t.Fatalf("Should draw nothing for zero samples, got: %d", len(cells))
	}
}
