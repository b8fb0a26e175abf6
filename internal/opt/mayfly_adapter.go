package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer
// interface. It is used to locate root basins of |f| when a plain sign-change
// scan comes up empty, e.g. for roots of even multiplicity.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Run(eval func(float64) float64, lower, upper float64) (float64, float64) {
	config := mayfly.NewDefaultConfig()

	// The library optimizes over a parameter vector; our search space is 1-D.
	config.ObjectiveFunc = func(x []float64) float64 { return eval(x[0]) }
	config.ProblemSize = 1
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = lower
	config.UpperBound = upper

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fall back to the interval midpoint if optimization fails
		mid := (lower + upper) / 2
		return mid, eval(mid)
	}

	return result.GlobalBest.Position[0], result.GlobalBest.Cost
}
