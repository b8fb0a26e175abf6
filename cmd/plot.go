package main

import (
	"fmt"

	"github.com/cwbudde/roots"
	"github.com/cwbudde/roots/internal/opt"
	"github.com/cwbudde/roots/internal/render"
	"github.com/spf13/cobra"
)

var (
	plotCoeffs []float64
	plotBegin  float64
	plotEnd    float64
	plotOut    string
	plotTitle  string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the polynomial with its roots to a PNG",
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().Float64SliceVar(&plotCoeffs, "coeffs", nil, "Polynomial coefficients, highest degree first")
	plotCmd.Flags().Float64Var(&plotBegin, "begin", -10, "Left end of the plotted interval")
	plotCmd.Flags().Float64Var(&plotEnd, "end", 10, "Right end of the plotted interval")
	plotCmd.Flags().StringVar(&plotOut, "out", "roots.png", "Output PNG path")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "Plot title")
	plotCmd.MarkFlagRequired("coeffs")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotEnd <= plotBegin {
		return fmt.Errorf("end must be greater than begin")
	}

	f := horner(plotCoeffs)
	conv := roots.SimpleConvergency[float64]{Eps: 1e-9, MaxIter: 100}
	found := opt.FindAllRoots(f, plotBegin, plotEnd, 200, conv, opt.NewMayfly(100, 20, 1))

	opts := render.DefaultOptions()
	if plotTitle != "" {
		opts.Title = plotTitle
	} else {
		opts.Title = fmt.Sprintf("%d roots in [%g, %g]", len(found), plotBegin, plotEnd)
	}

	p, err := render.Curve(f, plotBegin, plotEnd, found, opts)
	if err != nil {
		return fmt.Errorf("failed to render curve: %w", err)
	}
	if err := render.SavePNG(p, plotOut, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", plotOut, err)
	}

	fmt.Printf("Wrote %s (%d roots marked)\n", plotOut, len(found))
	return nil
}
