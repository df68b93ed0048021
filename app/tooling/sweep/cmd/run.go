package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/availsim/dassim/foundation/das/experiment"
	"github.com/availsim/dassim/foundation/das/sample"
	"github.com/spf13/cobra"
)

var (
	gridSide  int
	dims      int
	clients   int
	censored  float64
	samples   int
	strategy  string
	boxWidth  int
	boxHeight int
)

func init() {
	runCmd.Flags().IntVarP(&gridSide, "n", "n", 64, "Side length of the grid.")
	runCmd.Flags().IntVarP(&dims, "dims", "d", 2, "Dimension mode, 1 or 2.")
	runCmd.Flags().IntVarP(&clients, "clients", "c", 100, "Number of sampling clients.")
	runCmd.Flags().Float64VarP(&censored, "censored", "p", 0.4, "Fraction of cells withheld, in [0,1].")
	runCmd.Flags().IntVarP(&samples, "samples", "k", 20, "Samples per client.")
	runCmd.Flags().StringVar(&strategy, "strategy", sample.StrategyRandom, "Sampling strategy: random or box.")
	runCmd.Flags().IntVar(&boxWidth, "box-width", 1, "Tile width for the box strategy.")
	runCmd.Flags().IntVar(&boxHeight, "box-height", 1, "Tile height for the box strategy.")

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single experiment configuration",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	st, err := sample.Retrieve(strategy, boxWidth, boxHeight)
	if err != nil {
		return err
	}

	cfg, err := experiment.New(gridSide, dims, clients, censored, samples, st)
	if err != nil {
		return err
	}

	runner, err := experiment.NewRunner(cfg, experiment.RunnerConfig{
		Workers:    workers,
		MasterSeed: masterSeed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "running %d trials: n[%d] dims[%d] clients[%d] censored[%g] samples[%d] strategy[%s]\n",
		trials, cfg.N, cfg.Dims, cfg.Clients, cfg.PercentCensored, cfg.Samples, cfg.Strategy.Name)

	sum := runner.Run(trials)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
