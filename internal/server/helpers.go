package server

import (
	"fmt"
)

// normalizeCoefficients strips leading zero coefficients and divides the
// remainder by the leading one, yielding the tail of a monic polynomial.
// Real roots are unaffected by the scaling.
func normalizeCoefficients(c []float64) ([]float64, error) {
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

// polyFunc returns the polynomial with the given coefficients (highest
// degree first) as a plain function, evaluated by Horner's scheme.
func polyFunc(c []float64) func(float64) float64 {
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

// polyDerivative returns the coefficients of the derivative polynomial,
// highest degree first.
func polyDerivative(c []float64) []float64 {
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

// applyDefaults fills in defaults for optional request fields.
func applyDefaults(config *SolveConfig) {
	if config.Eps <= 0 {
		config.Eps = 1e-9
	}
	if config.MaxIter <= 0 {
		config.MaxIter = 100
	}
	if config.Kind == "iterative" && config.Method == "" {
		config.Method = "brent"
	}
	if config.Kind == "scan" && config.Samples <= 0 {
		config.Samples = 200
	}
}

// validateConfig rejects requests that cannot be solved.
func validateConfig(config SolveConfig) error {
	switch config.Kind {
	case "closed-form":
		if len(config.Coefficients) == 0 {
			return fmt.Errorf("coefficients are required for closed-form solves")
		}
	case "iterative":
		if len(config.Coefficients) == 0 {
			return fmt.Errorf("coefficients are required for iterative solves")
		}
		if config.Begin >= config.End {
			return fmt.Errorf("begin must be less than end")
		}
		switch config.Method {
		case "bisection", "secant", "newton", "regula-falsi", "brent":
		default:
			return fmt.Errorf("unknown method: %s", config.Method)
		}
	case "scan":
		if len(config.Coefficients) == 0 {
			return fmt.Errorf("coefficients are required for scan solves")
		}
		if config.Begin >= config.End {
			return fmt.Errorf("begin must be less than end")
		}
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind: %s", config.Kind)
	}
	return nil
}
