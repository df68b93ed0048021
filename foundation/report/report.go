// Package report serializes experiment outcomes into row-oriented records
// for external analysis tooling.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/availsim/dassim/foundation/das/experiment"
)

// Header returns the column names for the record rows, in the order Strings
// produces them.
func Header() []string {
	return []string{
		"run_id",
		"dims",
		"n",
		"n_clients",
		"percent_censored",
		"n_samples",
		"strategy",
		"box_width",
		"box_height",
		"trials",
		"success_rate",
		"mean_fraction",
		"variance_fraction",
		"min_fraction",
		"max_fraction",
		"clamped",
	}
}

// Row pairs the configuration that was run with the summary it produced.
type Row struct {
	Config  experiment.Config
	Summary experiment.Summary
}

// Strings flattens the row into one CSV record.
func (r Row) Strings() []string {
	return []string{
		r.Summary.RunID.String(),
		fmt.Sprintf("%d", r.Config.Dims),
		fmt.Sprintf("%d", r.Config.N),
		fmt.Sprintf("%d", r.Config.Clients),
		fmt.Sprintf("%g", r.Config.PercentCensored),
		fmt.Sprintf("%d", r.Config.Samples),
		r.Config.Strategy.Name,
		fmt.Sprintf("%d", r.Config.Strategy.BoxWidth),
		fmt.Sprintf("%d", r.Config.Strategy.BoxHeight),
		fmt.Sprintf("%d", r.Summary.Trials),
		fmt.Sprintf("%.10f", r.Summary.SuccessRate),
		fmt.Sprintf("%.10f", r.Summary.MeanFraction),
		fmt.Sprintf("%.10f", r.Summary.VarianceFraction),
		fmt.Sprintf("%.10f", r.Summary.MinFraction),
		fmt.Sprintf("%.10f", r.Summary.MaxFraction),
		fmt.Sprintf("%v", r.Summary.Clamped),
	}
}

// =============================================================================

// Writer emits rows as CSV records.
type Writer struct {
	csv *csv.Writer
}

// NewWriter constructs a Writer and emits the header record.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Writer{csv: cw}, nil
}

// Write emits one row.
func (w *Writer) Write(r Row) error {
	return w.csv.Write(r.Strings())
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
