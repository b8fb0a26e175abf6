package roots

// FindRootsCubic returns all real roots of a cubic equation
// a3*x^3 + a2*x^2 + a1*x + a0 = 0. Degenerate leading coefficients fall
// through to the lower-degree solvers; otherwise the equation is normalized
// or depressed and delegated.
func FindRootsCubic[F Float](a3, a2, a1, a0 F) Roots[F] {
	if a3 == 0 {
		return FindRootsQuadratic(a2, a1, a0)
	}
	if a2 == 0 && a1 == 0 {
		return OneRoot(Cbrt(-a0 / a3))
	}
	if a2 == 0 {
		return FindRootsCubicDepressed(a1/a3, a0/a3)
	}
	return FindRootsCubicNormalized(a2/a3, a1/a3, a0/a3)
}
