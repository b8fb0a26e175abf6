package roots

// FindRootsQuadratic returns all real roots of a quadratic equation
// a*x^2 + b*x + c = 0. When a == 0 the equation degenerates to a linear one.
func FindRootsQuadratic[F Float](a, b, c F) Roots[F] {
	if a == 0 {
		return FindRootsLinear(b, c)
	}

	d := b*b - 4*a*c
	switch {
	case d < 0:
		return NoRoots[F]()
	case d == 0:
		return OneRoot(-b / (2 * a))
	default:
		sq := Sqrt(d)
		return TwoRoots((-b-sq)/(2*a), (-b+sq)/(2*a))
	}
}
