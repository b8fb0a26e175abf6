package roots

// FindRootsBiquadratic returns all real roots of a biquadratic equation
// a4*x^4 + a2*x^2 + a0 = 0 by substituting z = x^2 and keeping the
// non-negative roots of the resulting quadratic.
func FindRootsBiquadratic[F Float](a4, a2, a0 F) Roots[F] {
	if a4 == 0 {
		return FindRootsQuadratic(a2, F(0), a0)
	}

	r := NoRoots[F]()
	for _, z := range FindRootsQuadratic(a4, a2, a0).Slice() {
		switch {
		case z == 0:
			r = r.add(0)
		case z > 0:
			sq := Sqrt(z)
			r = r.add(-sq).add(sq)
		}
	}
	return r
}
