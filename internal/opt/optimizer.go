package opt

// Optimizer defines a 1-D global optimization algorithm interface
type Optimizer interface {
	// Run minimizes the objective over [lower, upper].
	// Returns: best argument and best objective value
	Run(eval func(float64) float64, lower, upper float64) (float64, float64)
}
