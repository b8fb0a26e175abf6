package roots

// FindRootsQuarticDepressed returns all real roots of a depressed quartic
// equation x^4 + a2*x^2 + a1*x + a0 = 0 by Ferrari's method: a root m of the
// resolvent cubic splits the quartic into two quadratics.
func FindRootsQuarticDepressed[F Float](a2, a1, a0 F) Roots[F] {
	if a1 == 0 {
		return FindRootsBiquadratic(F(1), a2, a0)
	}
	if a0 == 0 {
		// x * (x^3 + a2*x + a1) = 0
		return FindRootsCubicDepressed(a2, a1).add(0)
	}

	// Resolvent cubic: 8m^3 + 8*a2*m^2 + (2*a2^2 - 8*a0)*m - a1^2 = 0.
	// Its value at m=0 is -a1^2 < 0, so a positive real root exists; the
	// largest root is the positive one.
	resolvent := FindRootsCubic(F(8), 8*a2, 2*a2*a2-8*a0, -a1*a1)
	ms := resolvent.Slice()
	if len(ms) == 0 {
		return NoRoots[F]()
	}
	m := ms[len(ms)-1]
	if m <= 0 {
		return NoRoots[F]()
	}

	// (x^2 + a2/2 + m)^2 = (s*x - a1/(2s))^2 with s = sqrt(2m).
	s := Sqrt(2 * m)
	t := a1 / (2 * s)

	r := NoRoots[F]()
	for _, x := range FindRootsQuadratic(F(1), -s, a2/2+m+t).Slice() {
		r = r.add(x)
	}
	for _, x := range FindRootsQuadratic(F(1), s, a2/2+m-t).Slice() {
		r = r.add(x)
	}
	return r
}
