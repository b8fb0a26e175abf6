package roots

// FindRootsLinear returns the real root of a linear equation a*x + b = 0.
// A degenerate equation (a == 0) has no computable root and yields the
// empty set.
func FindRootsLinear[F Float](a, b F) Roots[F] {
	if a == 0 {
		return NoRoots[F]()
	}
	return OneRoot(-b / a)
}
