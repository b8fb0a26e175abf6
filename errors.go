package roots

import "errors"

// Errors returned by the iterative searches. Use errors.Is to check for them.
var (
	// ErrNoBracketing indicates that the initial interval does not straddle
	// a sign change and neither endpoint is a root. No iteration is
	// performed in that case.
	ErrNoBracketing = errors.New("roots: interval does not bracket a root")

	// ErrNoConvergency indicates that the iteration budget was exhausted
	// before the convergence policy accepted a result.
	ErrNoConvergency = errors.New("roots: no convergence within the iteration limit")
)
