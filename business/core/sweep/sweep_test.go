package sweep_test

import (
	"context"
	"testing"

	"github.com/availsim/dassim/business/core/sweep"
	"github.com/availsim/dassim/foundation/das/sample"
)

func Test_Build(t *testing.T) {
	p := sweep.Params{
		Ns:              []int{4, 8},
		Dims:            []int{1, 2},
		Clients:         []int{5},
		PercentCensored: []float64{0, 0.5},
		Samples:         []int{4},
		Strategies:      []sample.Strategy{sample.Random()},
	}

	configs, err := p.Build()
	if err != nil {
		t.Fatalf("Should be able to build the sweep: %v", err)
	}

	if len(configs) != 2*2*1*2*1*1 {
		t.Fatalf("Should build every combination, got: %d", len(configs))
	}
}

func Test_BuildRejectsInvalid(t *testing.T) {
	p := sweep.Params{
		Ns:              []int{4},
		Dims:            []int{2},
		Clients:         []int{5},
		PercentCensored: []float64{0},
		Samples:         []int{4},
		Strategies:      []sample.Strategy{sample.Box(3, 2)},
	}

	if _, err := p.Build(); err == nil {
		t.Fatal("Should reject a tile that does not divide the grid.")
	}
}

func Test_BlockSamplingSkipsBadTiles(t *testing.T) {
	configs, err := sweep.BlockSampling(16, 16, []int{10})
	if err != nil {
		t.Fatalf("Should be able to build the block sweep: %v", err)
	}
	if len(configs) == 0 {
		t.Fatal("Should produce configurations.")
	}

	for _, cfg := range configs {
		area := cfg.Strategy.BoxWidth * cfg.Strategy.BoxHeight
		if cfg.Samples*area != 16 {
			t.Fatalf("Should keep the cell budget fixed, got %d draws of %d cells.", cfg.Samples, area)
		}
		if 16%cfg.Strategy.BoxWidth != 0 || 16%cfg.Strategy.BoxHeight != 0 {
			t.Fatalf("Should only keep dividing tiles, got %dx%d.", cfg.Strategy.BoxWidth, cfg.Strategy.BoxHeight)
		}
	}
}

func Test_OrchestratorRun(t *testing.T) {
	p := sweep.Params{
		Ns:              []int{4},
		Dims:            []int{1, 2},
		Clients:         []int{3},
		PercentCensored: []float64{0, 1},
		Samples:         []int{4},
		Strategies:      []sample.Strategy{sample.Random()},
	}

	configs, err := p.Build()
	if err != nil {
		t.Fatalf("Should be able to build the sweep: %v", err)
	}

	o := sweep.NewOrchestrator(configs, sweep.OrchestratorConfig{
		Trials:     8,
		Workers:    2,
		MasterSeed: 1,
	})

	rows, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("Should be able to run the sweep: %v", err)
	}
	if len(rows) != len(configs) {
		t.Fatalf("Should produce one row per configuration, got: %d", len(rows))
	}

	completed, total := o.Progress()
	if completed != total {
		t.Fatalf("Should report full progress, got %d of %d.", completed, total)
	}

	for _, row := range rows {
		if row.Summary.Trials != 8 {
			t.Fatalf("Should run 8 trials per configuration, got: %d", row.Summary.Trials)
		}
		if row.Config.PercentCensored == 1 && row.Summary.MaxFraction != 0 {
			t.Fatalf("Should reconstruct nothing under full censorship, got: %v", row.Summary.MaxFraction)
		}
	}
}

func Test_OrchestratorCancel(t *testing.T) {
	configs, err := sweep.Params{
		Ns:              []int{4},
		Dims:            []int{2},
		Clients:         []int{3},
		PercentCensored: []float64{0},
		Samples:         []int{4},
		Strategies:      []sample.Strategy{sample.Random()},
	}.Build()
	if err != nil {
		t.Fatalf("Should be able to build the sweep: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := sweep.NewOrchestrator(configs, sweep.OrchestratorConfig{Trials: 8, Workers: 1})
	if _, err := o.Run(ctx); err == nil {
		t.Fatal("Should stop on a canceled context.")
	}
}
