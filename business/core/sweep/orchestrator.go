package sweep

import (
	"context"
	"sync/atomic"

	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/report"
)

// OrchestratorConfig represents the configuration required to start an
// orchestrator.
type OrchestratorConfig struct {
	Trials     int
	Workers    int
	MasterSeed uint64
	EvHandler  experiment.EventHandler
}

// Orchestrator runs every configuration of a sweep through the experiment
// runner and collects one report row per configuration. Configurations run
// one at a time; the trial-level parallelism inside the runner keeps the
// workers busy.
type Orchestrator struct {
	configs    []experiment.Config
	trials     int
	workers    int
	masterSeed uint64
	evHandler  experiment.EventHandler
	completed  atomic.Int64
}

// NewOrchestrator constructs an orchestrator for the specified sweep.
func NewOrchestrator(configs []experiment.Config, cfg OrchestratorConfig) *Orchestrator {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	trials := cfg.Trials
	if trials <= 0 {
		trials = 500
	}

	return &Orchestrator{
		configs:    configs,
		trials:     trials,
		workers:    cfg.Workers,
		masterSeed: cfg.MasterSeed,
		evHandler:  ev,
	}
}

// Progress returns how many configurations have completed and how many the
// sweep holds in total. It is safe to call while Run executes.
func (o *Orchestrator) Progress() (completed int, total int) {
	return int(o.completed.Load()), len(o.configs)
}

// Run executes the sweep and returns one row per configuration. The context
// is checked between configurations, so cancellation never tears down a
// trial midway.
func (o *Orchestrator) Run(ctx context.Context) ([]report.Row, error) {
	o.evHandler("sweep: run: started: configs[%d] trials[%d]", len(o.configs), o.trials)
	defer o.evHandler("sweep: run: completed")

	rows := make([]report.Row, 0, len(o.configs))

	for i, cfg := range o.configs {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		// Offset the master seed per configuration so two configurations
		// never replay the same trial streams.
		r, err := experiment.NewRunner(cfg, experiment.RunnerConfig{
			Workers:    o.workers,
			MasterSeed: o.masterSeed + uint64(i),
			EvHandler:  o.evHandler,
		})
		if err != nil {
			return rows, err
		}

		sum := r.Run(o.trials)
		rows = append(rows, report.Row{Config: cfg, Summary: sum})
		o.completed.Add(1)

		o.evHandler("sweep: config[%d/%d]: n[%d] dims[%d] success[%.4f] mean[%.4f]",
			i+1, len(o.configs), cfg.N, cfg.Dims, sum.SuccessRate, sum.MeanFraction)
	}

	return rows, nil
}
