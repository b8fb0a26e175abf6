// Package render draws function curves with root markers using gonum/plot.
// It backs both the plot CLI command and the server's plot.png endpoint.
package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Options controls the rendered plot.
type Options struct {
	Title   string
	Samples int // curve resolution, default 500
	Width   vg.Length
	Height  vg.Length
}

// DefaultOptions returns sensible defaults for a 6x4 inch PNG.
func DefaultOptions() Options {
	return Options{
		Samples: 500,
		Width:   6 * vg.Inch,
		Height:  4 * vg.Inch,
	}
}

// Curve builds a plot of f over [a, b] with the given roots marked on the
// x-axis. Non-finite samples are skipped so that poles don't blow up the
// y-range entirely.
func Curve(f func(float64) float64, a, b float64, roots []float64, opts Options) (*plot.Plot, error) {
	if b <= a {
		return nil, fmt.Errorf("invalid plot range [%g, %g]", a, b)
	}
	if opts.Samples < 2 {
		opts.Samples = 500
	}

	pts := make(plotter.XYs, 0, opts.Samples+1)
	width := (b - a) / float64(opts.Samples)
	for i := 0; i <= opts.Samples; i++ {
		x := a + float64(i)*width
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build curve line: %w", err)
	}
	plotutil.AddLines(p, line)

	if len(roots) > 0 {
		markers := make(plotter.XYs, 0, len(roots))
		for _, r := range roots {
			markers = append(markers, plotter.XY{X: r, Y: 0})
		}
		scatter, err := plotter.NewScatter(markers)
		if err != nil {
			return nil, fmt.Errorf("failed to build root markers: %w", err)
		}
		plotutil.AddScatters(p, scatter)
	}

	return p, nil
}

// WritePNG renders the plot as PNG into w.
func WritePNG(p *plot.Plot, w io.Writer, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

// SavePNG renders the plot as PNG to the given path.
func SavePNG(p *plot.Plot, path string, opts Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer file.Close()

	return WritePNG(p, file, opts)
}
