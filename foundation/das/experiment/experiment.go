// Package experiment is the core API for the sampling simulation. It drives
// one configuration through many randomized trials and aggregates the
// availability outcomes.
package experiment

import (
	"fmt"

	"github.com/availsim/dassim/foundation/das/sample"
	"github.com/availsim/dassim/foundation/validate"
)

// EventHandler defines a function that is called when events occur in the
// processing of trials.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents one simulated deployment: the grid, the adversary, and
// the client population. Construct it with New so an invalid configuration
// fails before any trial runs.
type Config struct {
	N               int             `json:"n" validate:"required,gt=0"`
	Dims            int             `json:"dims" validate:"oneof=1 2"`
	Clients         int             `json:"n_clients" validate:"gte=0"`
	PercentCensored float64         `json:"percent_censored" validate:"gte=0,lte=1"`
	Samples         int             `json:"n_samples" validate:"gte=0"`
	Strategy        sample.Strategy `json:"strategy"`

	// AvailabilityThreshold is the confirmed fraction at which a trial
	// counts as fully available. New defaults it to 1.
	AvailabilityThreshold float64 `json:"availability_threshold" validate:"gte=0,lte=1"`
}

// New constructs a validated Config. The value is immutable once built:
// every trial receives it by value.
func New(n int, dims int, clients int, percentCensored float64, samples int, st sample.Strategy) (Config, error) {
	cfg := Config{
		N:                     n,
		Dims:                  dims,
		Clients:               clients,
		PercentCensored:       percentCensored,
		Samples:               samples,
		Strategy:              st,
		AvailabilityThreshold: 1,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration, including the cross-field rules the
// struct tags can't express.
func (cfg Config) Validate() error {
	if err := validate.Check(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	if cfg.Samples > cfg.N*cfg.N {
		return fmt.Errorf("n_samples %d exceeds the %d cells of the grid", cfg.Samples, cfg.N*cfg.N)
	}

	if err := cfg.Strategy.Validate(cfg.N); err != nil {
		return fmt.Errorf("validating strategy: %w", err)
	}

	return nil
}
