package main

import (
	"fmt"

	"github.com/cwbudde/roots"
	"github.com/cwbudde/roots/internal/opt"
	"github.com/spf13/cobra"
)

var (
	scanCoeffs  []float64
	scanBegin   float64
	scanEnd     float64
	scanSamples int
	scanEps     float64
	scanMaxIter int
	scanSeed    int64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find all roots in an interval by grid scanning",
	Long: `Samples the polynomial on a grid over [begin, end], refines every
sign change to a root, and runs a stochastic minimizer on |f| to pick
up roots of even multiplicity the grid cannot bracket.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Float64SliceVar(&scanCoeffs, "coeffs", nil, "Polynomial coefficients, highest degree first")
	scanCmd.Flags().Float64Var(&scanBegin, "begin", -10, "Left end of the scan interval")
	scanCmd.Flags().Float64Var(&scanEnd, "end", 10, "Right end of the scan interval")
	scanCmd.Flags().IntVar(&scanSamples, "samples", 200, "Number of grid samples")
	scanCmd.Flags().Float64Var(&scanEps, "eps", 1e-9, "Convergence tolerance")
	scanCmd.Flags().IntVar(&scanMaxIter, "max-iter", 100, "Maximum iterations per root")
	scanCmd.Flags().Int64Var(&scanSeed, "seed", 1, "Random seed for the minimizer")
	scanCmd.MarkFlagRequired("coeffs")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanEnd <= scanBegin {
		return fmt.Errorf("end must be greater than begin")
	}
	if scanSamples < 2 {
		return fmt.Errorf("samples must be at least 2")
	}

	f := horner(scanCoeffs)
	conv := roots.SimpleConvergency[float64]{Eps: scanEps, MaxIter: scanMaxIter}
	optimizer := opt.NewMayfly(scanMaxIter, 20, scanSeed)

	found := opt.FindAllRoots(f, scanBegin, scanEnd, scanSamples, conv, optimizer)
	if len(found) == 0 {
		fmt.Println("No roots found in the interval.")
		return nil
	}

	for _, x := range found {
		fmt.Printf("%.12g\n", x)
	}
	return nil
}
