// Package cmd contains the sweep tooling commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	trials     int
	workers    int
	masterSeed uint64
	output     string
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&trials, "trials", "t", 500, "Number of randomized trials per configuration.")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Worker goroutines, 0 means one per CPU.")
	rootCmd.PersistentFlags().Uint64VarP(&masterSeed, "seed", "s", 1, "Master seed for the per-trial random streams.")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "CSV output path, empty writes to stdout.")
}

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Data availability sampling experiment runner",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
