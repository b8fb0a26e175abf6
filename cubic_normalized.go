package roots

// FindRootsCubicNormalized returns all real roots of the normalized cubic
// equation x^3 + a2*x^2 + a1*x + a0 = 0. Three distinct real roots are
// computed by the trigonometric method, the remaining cases by Cardano's
// formula.
func FindRootsCubicNormalized[F Float](a2, a1, a0 F) Roots[F] {
	q := (3*a1 - a2*a2) / 9
	r := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	q3 := q * q * q
	d := q3 + r*r
	shift := a2 / 3

	switch {
	case d < 0:
		// Three distinct real roots.
		phi := Acos(r/Sqrt(-q3)) / 3
		k := 2 * Sqrt(-q)
		return ThreeRoots(
			k*Cos(phi)-shift,
			k*Cos(phi-TwoThirdPi[F]())-shift,
			k*Cos(phi+TwoThirdPi[F]())-shift,
		)
	case d == 0:
		// A simple root and a double one, reported once each.
		s := Cbrt(r)
		return TwoRoots(2*s-shift, -s-shift)
	default:
		sq := Sqrt(d)
		return OneRoot(Cbrt(r+sq) + Cbrt(r-sq) - shift)
	}
}
