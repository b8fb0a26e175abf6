package roots

// Interval is a bracket of two samples. While bracketed, its endpoints
// straddle a sign change (or one of them is a root); the iterative searches
// only ever narrow it, replacing one endpoint at a time so the bracketing
// invariant is preserved.
type Interval[F Float] struct {
	Begin, End Sample[F]
}

// Middle returns the midpoint of the interval on the x axis.
// It is computed, not stored.
func (iv Interval[F]) Middle() F {
	return (iv.Begin.X + iv.End.X) / 2
}

// IsBracketed reports whether the endpoints confine a root.
func (iv Interval[F]) IsBracketed() bool {
	return iv.Begin.IsBracketedWith(iv.End)
}

// IsConverged reports whether the interval is small enough per the policy.
func (iv Interval[F]) IsConverged(c Convergency[F]) bool {
	return c.IsConverged(iv)
}
