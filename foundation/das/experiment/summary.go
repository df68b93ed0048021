package experiment

import "github.com/google/uuid"

// Summary aggregates the outcomes of a whole run. It is the only value that
// survives past the runner's scope.
type Summary struct {
	RunID            uuid.UUID `json:"run_id"`
	Trials           int       `json:"trials"`
	SuccessRate      float64   `json:"success_rate"`
	MeanFraction     float64   `json:"mean_fraction"`
	VarianceFraction float64   `json:"variance_fraction"`
	MinFraction      float64   `json:"min_fraction"`
	MaxFraction      float64   `json:"max_fraction"`
	Clamped          bool      `json:"clamped"`
}

// =============================================================================

// Accumulator folds trial results into running sums. The fold is commutative
// and associative (up to floating point summation order), so partial
// accumulators from different workers can be merged in any order.
type Accumulator struct {
	trials    int
	successes int
	sum       float64
	sumSq     float64
	min       float64
	max       float64
	clamped   bool
}

// Add folds one trial result into the accumulator.
func (a *Accumulator) Add(res TrialResult) {
	if a.trials == 0 || res.Fraction < a.min {
		a.min = res.Fraction
	}
	if a.trials == 0 || res.Fraction > a.max {
		a.max = res.Fraction
	}

	a.trials++
	a.sum += res.Fraction
	a.sumSq += res.Fraction * res.Fraction
	if res.Available {
		a.successes++
	}
	if res.Clamped {
		a.clamped = true
	}
}

// Merge folds another accumulator into this one.
func (a *Accumulator) Merge(other Accumulator) {
	if other.trials == 0 {
		return
	}
	if a.trials == 0 || other.min < a.min {
		a.min = other.min
	}
	if a.trials == 0 || other.max > a.max {
		a.max = other.max
	}

	a.trials += other.trials
	a.successes += other.successes
	a.sum += other.sum
	a.sumSq += other.sumSq
	a.clamped = a.clamped || other.clamped
}

// Summarize produces the final summary with a fresh run id. Variance is the
// population variance of the reconstructed fraction.
func (a *Accumulator) Summarize() Summary {
	s := Summary{
		RunID:   uuid.New(),
		Trials:  a.trials,
		Clamped: a.clamped,
	}
	if a.trials == 0 {
		return s
	}

	n := float64(a.trials)
	mean := a.sum / n

	variance := a.sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	s.SuccessRate = float64(a.successes) / n
	s.MeanFraction = mean
	s.VarianceFraction = variance
	s.MinFraction = a.min
	s.MaxFraction = a.max
	return s
}
