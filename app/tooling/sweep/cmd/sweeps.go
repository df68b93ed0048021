package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/availsim/dassim/business/core/sweep"
	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/report"
	"github.com/spf13/cobra"
)

var (
	blockN       int
	blockSamples int
)

func init() {
	blockSamplingCmd.Flags().IntVar(&blockN, "n", 256, "Side length of the grid.")
	blockSamplingCmd.Flags().IntVar(&blockSamples, "target-samples", 1024, "Cell budget each client spends per trial.")

	rootCmd.AddCommand(smallGridsCmd)
	rootCmd.AddCommand(blockSamplingCmd)
}

var smallGridsCmd = &cobra.Command{
	Use:   "small-grids",
	Short: "Sweep small grid sides with uniform random sampling",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := sweep.SmallGrids().Build()
		if err != nil {
			return err
		}
		return runSweep(configs)
	},
}

var blockSamplingCmd = &cobra.Command{
	Use:   "block-sampling",
	Short: "Sweep tile shapes under a fixed cell budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		var clients []int
		for c := 10; c <= 300; c += 20 {
			clients = append(clients, c)
		}

		configs, err := sweep.BlockSampling(blockN, blockSamples, clients)
		if err != nil {
			return err
		}
		return runSweep(configs)
	},
}

// runSweep executes the configurations and writes the CSV report to the
// configured output.
func runSweep(configs []experiment.Config) error {

	// Only surface sweep-level progress on the terminal; per-trial events
	// would swamp it.
	ev := func(v string, args ...any) {
		if strings.HasPrefix(v, "sweep: ") {
			fmt.Fprintln(os.Stderr, fmt.Sprintf(v, args...))
		}
	}

	orc := sweep.NewOrchestrator(configs, sweep.OrchestratorConfig{
		Trials:     trials,
		Workers:    workers,
		MasterSeed: masterSeed,
		EvHandler:  ev,
	})

	rows, err := orc.Run(context.Background())
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w, err := report.NewWriter(out)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}
