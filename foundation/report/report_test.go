package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/das/sample"
	"github.com/availsim/dassim/foundation/report"
)

func Test_Writer(t *testing.T) {
	cfg, err := experiment.New(4, 2, 3, 0.5, 4, sample.Box(2, 2))
	if err != nil {
		t.Fatalf("Should be able to construct config: %v", err)
	}

	res := experiment.RunTrial(cfg, 0, experiment.TrialRNG(1, 0))
	var acc experiment.Accumulator
	acc.Add(res)

	var buf bytes.Buffer
	w, err := report.NewWriter(&buf)
	if err != nil {
		t.Fatalf("Should be able to construct writer: %v", err)
	}
	if err := w.Write(report.Row{Config: cfg, Summary: acc.Summarize()}); err != nil {
		t.Fatalf("Should be able to write a row: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Should be able to flush: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Should produce valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Should produce a header and one row, got: %d", len(records))
	}
	if len(records[0]) != len(records[1]) {
		t.Fatalf("Should keep the row aligned with the header, got %d and %d columns.", len(records[0]), len(records[1]))
	}
	if records[1][6] != sample.StrategyBox {
		t.Fatalf("Should record the strategy name, got: %q", records[1][6])
	}
}
