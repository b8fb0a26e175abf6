package main

import "fmt"

// horner turns a coefficient slice (highest degree first) into a function.
func horner(c []float64) func(float64) float64 {
	coeffs := make([]float64, len(c))
	copy(coeffs, c)
	return func(x float64) float64 {
		var y float64
		for _, ci := range coeffs {
			y = y*x + ci
		}
		return y
	}
}

// hornerDerivative returns the derivative coefficients, highest degree first.
func hornerDerivative(c []float64) []float64 {
	if len(c) < 2 {
		return []float64{0}
	}
	n := len(c) - 1
	d := make([]float64, n)
	for i, ci := range c[:n] {
		d[i] = ci * float64(n-i)
	}
	return d
}

// monicTail strips leading zeros and scales the coefficients to a monic
// polynomial, returning everything after the implicit leading 1.
func monicTail(c []float64) ([]float64, error) {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	if i == len(c) {
		return nil, fmt.Errorf("polynomial has no nonzero coefficient")
	}

	lead := c[i]
	tail := make([]float64, len(c)-i-1)
	for j, cj := range c[i+1:] {
		tail[j] = cj / lead
	}
	return tail, nil
}
