// Package sample provides the different cell selection strategies a light
// client can use when querying the grid.
package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/availsim/dassim/foundation/das/grid"
)

// List of different sampling strategies.
const (
	StrategyRandom = "random"
	StrategyBox    = "box"
)

// Map of different sampling strategies with functions.
var strategies = map[string]selectFunc{
	StrategyRandom: randomSelect,
	StrategyBox:    boxSelect,
}

// selectFunc defines a function that picks the set of cells a single client
// queries. Implementations must draw without replacement and clamp to the
// number of distinct choices when amount exceeds it.
type selectFunc func(rng *rand.Rand, n int, amount int, st Strategy) []grid.Cell

// =============================================================================

// Strategy describes how each client picks the cells it queries. Different
// clients select independently and may overlap.
type Strategy struct {
	Name      string
	BoxWidth  int
	BoxHeight int
}

// Random constructs the uniform random point strategy.
func Random() Strategy {
	return Strategy{Name: StrategyRandom, BoxWidth: 1, BoxHeight: 1}
}

// Box constructs the tile strategy, which models spatially correlated
// sampling: each draw claims a whole width by height tile of the grid.
func Box(width int, height int) Strategy {
	return Strategy{Name: StrategyBox, BoxWidth: width, BoxHeight: height}
}

// Retrieve returns the strategy configured under the specified name.
func Retrieve(name string, boxWidth int, boxHeight int) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return Random(), nil
	case StrategyBox:
		return Box(boxWidth, boxHeight), nil
	}
	return Strategy{}, fmt.Errorf("strategy %q does not exist", name)
}

// Validate checks the strategy is usable against a grid of side n.
func (st Strategy) Validate(n int) error {
	if _, exists := strategies[st.Name]; !exists {
		return fmt.Errorf("strategy %q does not exist", st.Name)
	}

	if st.Name == StrategyBox {
		if st.BoxWidth < 1 || st.BoxHeight < 1 {
			return fmt.Errorf("box tile %dx%d must have positive sides", st.BoxWidth, st.BoxHeight)
		}
		if n%st.BoxWidth != 0 || n%st.BoxHeight != 0 {
			return fmt.Errorf("box tile %dx%d does not evenly divide grid side %d", st.BoxWidth, st.BoxHeight, n)
		}
	}

	return nil
}

// MaxDraws returns the number of distinct draws the strategy can make
// against a grid of side n: individual cells for the random strategy, whole
// tiles for the box strategy. Requests above this clamp.
func (st Strategy) MaxDraws(n int) int {
	if st.Name == StrategyBox {
		return (n / st.BoxWidth) * (n / st.BoxHeight)
	}
	return n * n
}

// Select picks the cells one client queries from an n by n grid. For the
// random strategy the result holds amount distinct cells; for the box
// strategy it holds every cell of amount distinct tiles. When amount exceeds
// the distinct choices left, all of them are returned and the caller can
// observe the clamp by comparing lengths.
func (st Strategy) Select(rng *rand.Rand, n int, amount int) []grid.Cell {
	fn, exists := strategies[st.Name]
	if !exists {

		// Validate catches this before any trial runs. Reaching here is
		// a programming error.
		panic(fmt.Sprintf("strategy %q does not exist", st.Name))
	}

	if amount <= 0 {
		return nil
	}
	return fn(rng, n, amount, st)
}
