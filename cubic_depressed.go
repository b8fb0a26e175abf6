package roots

// FindRootsCubicDepressed returns all real roots of a depressed cubic
// equation x^3 + a1*x + a0 = 0.
func FindRootsCubicDepressed[F Float](a1, a0 F) Roots[F] {
	if a1 == 0 {
		return OneRoot(Cbrt(-a0))
	}
	if a0 == 0 {
		// x * (x^2 + a1) = 0
		return FindRootsQuadratic(F(1), F(0), a1).add(0)
	}

	d := a0*a0/4 + a1*a1*a1/27
	switch {
	case d < 0:
		// d < 0 implies a1 < 0: three distinct real roots.
		a := Sqrt(-4 * a1 / 3)
		phi := Acos(-4*a0/(a*a*a)) / 3
		return ThreeRoots(
			a*Cos(phi),
			a*Cos(phi-TwoThirdPi[F]()),
			a*Cos(phi+TwoThirdPi[F]()),
		)
	case d == 0:
		// A simple root and a double one.
		return TwoRoots(3*a0/a1, -3*a0/(2*a1))
	default:
		sq := Sqrt(d)
		return OneRoot(Cbrt(-a0/2+sq) + Cbrt(-a0/2-sq))
	}
}
