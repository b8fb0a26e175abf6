package main

import (
	"fmt"

	"github.com/cwbudde/roots"
	"github.com/spf13/cobra"
)

var solveCoeffs []float64

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find all real roots of a polynomial in closed form",
	Long: `Solves a polynomial of degree one through four analytically.
Coefficients are given highest degree first, e.g. --coeffs 1,-3,2
for x^2 - 3x + 2.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Float64SliceVar(&solveCoeffs, "coeffs", nil, "Polynomial coefficients, highest degree first")
	solveCmd.MarkFlagRequired("coeffs")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	tail, err := monicTail(solveCoeffs)
	if err != nil {
		return err
	}

	found, ok := roots.FindRootsSturm(tail)
	if !ok {
		return fmt.Errorf("no closed form for degree %d, use the scan command", len(tail))
	}

	if found.Len() == 0 {
		fmt.Println("No real roots.")
		return nil
	}

	for _, x := range found.Slice() {
		fmt.Printf("%.12g\n", x)
	}
	return nil
}
