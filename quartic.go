package roots

// FindRootsQuartic returns all real roots of a quartic equation
// a4*x^4 + a3*x^3 + a2*x^2 + a1*x + a0 = 0. Degenerate leading coefficients
// fall through to the cubic solver; biquadratic and already-depressed shapes
// are delegated directly, and the general case is depressed by the
// substitution x = y - a3/(4*a4).
func FindRootsQuartic[F Float](a4, a3, a2, a1, a0 F) Roots[F] {
	if a4 == 0 {
		return FindRootsCubic(a3, a2, a1, a0)
	}

	b := a3 / a4
	c := a2 / a4
	d := a1 / a4
	e := a0 / a4

	if b == 0 {
		if d == 0 {
			return FindRootsBiquadratic(F(1), c, e)
		}
		return FindRootsQuarticDepressed(c, d, e)
	}

	p := c - 3*b*b/8
	q := d - b*c/2 + b*b*b/8
	rr := e - b*d/4 + b*b*c/16 - 3*b*b*b*b/256

	shift := b / 4
	r := NoRoots[F]()
	for _, y := range FindRootsQuarticDepressed(p, q, rr).Slice() {
		r = r.add(y - shift)
	}
	return r
}
