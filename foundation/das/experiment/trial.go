package experiment

import (
	"math/rand/v2"

	"github.com/availsim/dassim/foundation/das/censor"
	"github.com/availsim/dassim/foundation/das/grid"
	"github.com/availsim/dassim/foundation/das/recon"
)

// TrialResult records the outcome of a single randomized trial as plain
// structured fields so callers can serialize it trivially.
type TrialResult struct {
	Trial            int     `json:"trial"`
	Censored         int     `json:"censored"`
	SamplesRequested int     `json:"samples_requested"`
	SamplesTaken     int     `json:"samples_taken"`
	Clamped          bool    `json:"clamped"`
	SeedConfirmed    int     `json:"seed_confirmed"`
	Confirmed        int     `json:"confirmed"`
	Total            int     `json:"total"`
	Fraction         float64 `json:"fraction"`
	Available        bool    `json:"available"`
	Passes           int     `json:"passes"`
}

// RunTrial executes one complete trial: build a fresh grid, censor it,
// collect every client's samples, and run reconstruction to its fixpoint.
// All state is local to the call, so independent callers can invoke it
// concurrently as long as each brings its own random stream.
func RunTrial(cfg Config, trial int, rng *rand.Rand) TrialResult {
	g, err := grid.New(cfg.N, cfg.Dims)
	if err != nil {

		// New validated the configuration already. Reaching here is a
		// programming error.
		panic(err)
	}

	censored := censor.Select(rng, cfg.N, cfg.PercentCensored)
	g.ApplyCensorship(censored)

	// Each client draws independently; the union of everything clients
	// received seeds reconstruction. Draws above the strategy's distinct
	// choices clamp, which the result records rather than hides.
	perClient := cfg.Samples
	if m := cfg.Strategy.MaxDraws(cfg.N); perClient > m {
		perClient = m
	}

	var sampled []grid.Cell
	for client := 0; client < cfg.Clients; client++ {
		sampled = append(sampled, cfg.Strategy.Select(rng, cfg.N, cfg.Samples)...)
	}

	seeded := recon.Seed(g, sampled)
	passes := recon.Propagate(g)

	confirmed := g.ConfirmedCount()
	total := g.Total()
	fraction := float64(confirmed) / float64(total)

	return TrialResult{
		Trial:            trial,
		Censored:         len(censored),
		SamplesRequested: cfg.Samples * cfg.Clients,
		SamplesTaken:     perClient * cfg.Clients,
		Clamped:          perClient < cfg.Samples,
		SeedConfirmed:    seeded,
		Confirmed:        confirmed,
		Total:            total,
		Fraction:         fraction,
		Available:        fraction >= cfg.AvailabilityThreshold,
		Passes:           passes,
	}
}
