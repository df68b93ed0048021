package experiment

import (
	"runtime"
	"sync"
)

// RunnerConfig represents the configuration required to start a runner.
type RunnerConfig struct {
	Workers    int
	MasterSeed uint64
	EvHandler  EventHandler
}

// Runner executes the trials of one experiment configuration across a pool
// of workers. Trials are fully independent: each one owns its grid, its
// censorship set, and a random stream derived from the master seed and the
// trial index, so scheduling order never changes the result.
type Runner struct {
	cfg        Config
	workers    int
	masterSeed uint64
	evHandler  EventHandler
}

// NewRunner constructs a runner for the specified experiment configuration.
func NewRunner(cfg Config, rcfg RunnerConfig) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if rcfg.EvHandler != nil {
			rcfg.EvHandler(v, args...)
		}
	}

	workers := rcfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Runner{
		cfg:        cfg,
		workers:    workers,
		masterSeed: rcfg.MasterSeed,
		evHandler:  ev,
	}, nil
}

// Run executes the specified number of trials and folds their results into
// a summary. Workers pull trial indices from a shared channel and keep a
// partial accumulator each; the partials merge after the pool drains, so the
// only synchronization point is the final reduction.
func (r *Runner) Run(trials int) Summary {
	r.evHandler("runner: run: started: trials[%d] workers[%d]", trials, r.workers)
	defer r.evHandler("runner: run: completed")

	if trials <= 0 {
		var acc Accumulator
		return acc.Summarize()
	}

	g := r.workers
	if g > trials {
		g = trials
	}

	trialC := make(chan int)
	partialC := make(chan Accumulator, g)

	// We don't want to hand out work until we know all the G's are up
	// and running.
	var wg sync.WaitGroup
	wg.Add(g)
	hasStarted := make(chan bool)

	for w := 0; w < g; w++ {
		go func() {
			defer wg.Done()
			hasStarted <- true

			var acc Accumulator
			for trial := range trialC {
				res := RunTrial(r.cfg, trial, TrialRNG(r.masterSeed, trial))
				acc.Add(res)
				r.evHandler("runner: trial[%d]: confirmed[%d/%d] available[%v]", trial, res.Confirmed, res.Total, res.Available)
			}
			partialC <- acc
		}()
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	for trial := 0; trial < trials; trial++ {
		trialC <- trial
	}
	close(trialC)
	wg.Wait()
	close(partialC)

	var acc Accumulator
	for partial := range partialC {
		acc.Merge(partial)
	}

	return acc.Summarize()
}
