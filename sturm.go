package roots

// FindRootsSturm returns all real roots of the normalized polynomial
// x^n + a[0]*x^(n-1) + ... + a[n-1] by dispatching on the coefficient count
// to the matching closed-form solver. The second return value is false for
// degrees above four, which this routine does not compute; that is distinct
// from an empty root set, which is a present result. The dispatcher performs
// no algebra of its own.
func FindRootsSturm[F Float](a []F) (Roots[F], bool) {
	switch len(a) {
	case 0:
		return NoRoots[F](), true
	case 1:
		return FindRootsLinear(F(1), a[0]), true
	case 2:
		return FindRootsQuadratic(F(1), a[0], a[1]), true
	case 3:
		return FindRootsCubic(F(1), a[0], a[1], a[2]), true
	case 4:
		return FindRootsQuartic(F(1), a[0], a[1], a[2], a[3]), true
	default:
		return Roots[F]{}, false
	}
}
