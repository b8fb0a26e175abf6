package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/roots"
	"github.com/cwbudde/roots/internal/opt"
	"github.com/spf13/cobra"
)

var (
	searchCoeffs  []float64
	searchBegin   float64
	searchEnd     float64
	searchMethod  string
	searchEps     float64
	searchMaxIter int
	searchGlobal  bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find a single root by bracketed iteration",
	Long: `Searches for one root of a polynomial inside [begin, end] using the
chosen iterative method. The function must change sign over the
interval for the bracketing methods to work.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Float64SliceVar(&searchCoeffs, "coeffs", nil, "Polynomial coefficients, highest degree first")
	searchCmd.Flags().Float64Var(&searchBegin, "begin", -1, "Left end of the search interval")
	searchCmd.Flags().Float64Var(&searchEnd, "end", 1, "Right end of the search interval")
	searchCmd.Flags().StringVar(&searchMethod, "method", "brent", "Method (bisection, secant, newton, regula-falsi, brent)")
	searchCmd.Flags().Float64Var(&searchEps, "eps", 1e-9, "Convergence tolerance")
	searchCmd.Flags().IntVar(&searchMaxIter, "max-iter", 100, "Maximum iterations")
	searchCmd.Flags().BoolVar(&searchGlobal, "global", false, "Minimize |f| with the mayfly optimizer instead of bracketing")
	searchCmd.MarkFlagRequired("coeffs")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchEnd <= searchBegin {
		return fmt.Errorf("end must be greater than begin")
	}

	f := horner(searchCoeffs)
	conv := roots.SimpleConvergency[float64]{Eps: searchEps, MaxIter: searchMaxIter}

	if searchGlobal {
		optimizer := opt.NewMayfly(searchMaxIter, 20, 1)
		x, y := optimizer.Run(func(x float64) float64 { return math.Abs(f(x)) }, searchBegin, searchEnd)
		if math.Abs(y) >= searchEps {
			return fmt.Errorf("no root found: |f(%g)| = %g exceeds eps", x, y)
		}
		fmt.Printf("%.12g\n", x)
		return nil
	}

	var root float64
	var err error
	switch searchMethod {
	case "bisection":
		root, err = roots.FindRootBisection(searchBegin, searchEnd, f, conv)
	case "secant":
		root, err = roots.FindRootSecant(searchBegin, searchEnd, f, conv)
	case "newton":
		df := horner(hornerDerivative(searchCoeffs))
		start := (searchBegin + searchEnd) / 2
		root, err = roots.FindRootNewtonRaphson(start, f, df, conv)
	case "regula-falsi":
		root, err = roots.FindRootRegulaFalsi(searchBegin, searchEnd, f, conv)
	case "brent":
		root, err = roots.FindRootBrent(searchBegin, searchEnd, f, conv)
	default:
		return fmt.Errorf("unknown method: %s", searchMethod)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("%.12g\n", root)
	return nil
}
