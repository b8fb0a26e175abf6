package roots

// Convergency decides when an iterative search is done. Implementations own
// all tolerances; the search loops themselves hard-code no epsilon and keep
// their own local iteration counters.
type Convergency[F Float] interface {
	// IsRootFound reports whether the function value y is close enough to
	// zero to accept the sample as a root.
	IsRootFound(y F) bool

	// IsConverged reports whether the interval has shrunk enough to accept
	// its midpoint as the root.
	IsConverged(iv Interval[F]) bool

	// IsIterationLimitReached reports whether the search should give up
	// after iter completed iterations.
	IsIterationLimitReached(iter int) bool
}

// SimpleConvergency is the default policy: a fixed absolute tolerance and a
// fixed iteration cap. It is stateless and may be shared across calls.
type SimpleConvergency[F Float] struct {
	Eps     F
	MaxIter int
}

// IsRootFound reports |y| < Eps.
func (c SimpleConvergency[F]) IsRootFound(y F) bool {
	return Abs(y) < c.Eps
}

// IsConverged reports |End.X - Begin.X| < Eps.
func (c SimpleConvergency[F]) IsConverged(iv Interval[F]) bool {
	return Abs(iv.End.X-iv.Begin.X) < c.Eps
}

// IsIterationLimitReached reports iter >= MaxIter.
func (c SimpleConvergency[F]) IsIterationLimitReached(iter int) bool {
	return iter >= c.MaxIter
}
