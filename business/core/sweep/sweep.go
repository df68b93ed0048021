// Package sweep builds cartesian families of experiment configurations and
// runs them through the core engine.
package sweep

import (
	"fmt"

	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/das/sample"
)

// Params describes a cartesian sweep: one configuration is produced for
// every combination of the listed values.
type Params struct {
	Ns              []int
	Dims            []int
	Clients         []int
	PercentCensored []float64
	Samples         []int
	Strategies      []sample.Strategy
}

// Build expands the sweep into validated experiment configurations. Any
// combination failing validation aborts the build, so a bad sweep fails
// before a single trial runs.
func (p Params) Build() ([]experiment.Config, error) {
	var configs []experiment.Config

	for _, samples := range p.Samples {
		for _, clients := range p.Clients {
			for _, censored := range p.PercentCensored {
				for _, n := range p.Ns {
					for _, dims := range p.Dims {
						for _, st := range p.Strategies {
							cfg, err := experiment.New(n, dims, clients, censored, samples, st)
							if err != nil {
								return nil, fmt.Errorf("building config n[%d] dims[%d]: %w", n, dims, err)
							}
							configs = append(configs, cfg)
						}
					}
				}
			}
		}
	}

	return configs, nil
}

// =============================================================================

// SmallGrids returns the classic sweep over small grid sides with the
// uniform random point strategy.
func SmallGrids() Params {
	return Params{
		Ns:              []int{16, 32, 64, 128},
		Dims:            []int{1, 2},
		Clients:         steps(50, 1000, 50),
		PercentCensored: []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9},
		Samples:         []int{10, 15, 20, 25, 30, 35, 40},
		Strategies:      []sample.Strategy{sample.Random()},
	}
}

// BlockSampling expands the tile-size study: every tile shape whose area
// divides targetSamples gets a configuration requesting targetSamples worth
// of cells as whole tiles. Shapes that don't divide the budget are skipped.
func BlockSampling(n int, targetSamples int, clients []int) ([]experiment.Config, error) {
	var configs []experiment.Config

	sides := []int{1, 2, 4, 8, 16, 32, 64, 128}
	for _, nClients := range clients {
		for _, censored := range []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9} {
			for _, width := range sides {
				for _, height := range sides {
					area := width * height
					if area > targetSamples || targetSamples%area != 0 {
						continue
					}
					if n%width != 0 || n%height != 0 {
						continue
					}

					samples := targetSamples / area
					for _, dims := range []int{1, 2} {
						cfg, err := experiment.New(n, dims, nClients, censored, samples, sample.Box(width, height))
						if err != nil {
							return nil, fmt.Errorf("building config tile[%dx%d]: %w", width, height, err)
						}
						configs = append(configs, cfg)
					}
				}
			}
		}
	}

	return configs, nil
}

// steps returns the inclusive range from lo to hi in the given increments.
func steps(lo int, hi int, step int) []int {
	var vals []int
	for v := lo; v <= hi; v += step {
		vals = append(vals, v)
	}
	return vals
}
