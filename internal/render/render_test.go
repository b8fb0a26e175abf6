package render

import (
	"bytes"
	"math"
	"testing"
)

func TestCurveWithRoots(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	p, err := Curve(f, -5, 5, []float64{-2, 2}, DefaultOptions())
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}
	if p == nil {
		t.Fatal("Expected non-nil plot")
	}
}

func TestCurveInvalidRange(t *testing.T) {
	f := func(x float64) float64 { return x }

	if _, err := Curve(f, 1, 1, nil, DefaultOptions()); err == nil {
		t.Fatal("Expected error for empty range")
	}
	if _, err := Curve(f, 2, 1, nil, DefaultOptions()); err == nil {
		t.Fatal("Expected error for inverted range")
	}
}

func TestCurveSkipsNonFinite(t *testing.T) {
	// 1/x has a pole at 0; the curve must still build.
	f := func(x float64) float64 { return 1 / x }

	p, err := Curve(f, -1, 1, nil, Options{Samples: 100})
	if err != nil {
		t.Fatalf("Curve failed on a function with a pole: %v", err)
	}
	if p == nil {
		t.Fatal("Expected non-nil plot")
	}
}

func TestWritePNG(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) }

	p, err := Curve(f, 0, 2*math.Pi, []float64{0, math.Pi, 2 * math.Pi}, DefaultOptions())
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(p, &buf, DefaultOptions()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	// PNG magic header
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("Output does not look like a PNG (%d bytes)", buf.Len())
	}
}

func TestSavePNG(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x }

	p, err := Curve(f, -2, 2, []float64{-1, 0, 1}, DefaultOptions())
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}

	path := t.TempDir() + "/curve.png"
	if err := SavePNG(p, path, DefaultOptions()); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
