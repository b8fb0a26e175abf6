package roots

// Sample is a point x together with its function value y = f(x).
// Samples are immutable once constructed and compared by value.
type Sample[F Float] struct {
	X, Y F
}

// IsBracketedWith reports whether s and other confine a root: their function
// values have opposite signs, or one of them is exactly zero.
func (s Sample[F]) IsBracketedWith(other Sample[F]) bool {
	if s.Y == 0 || other.Y == 0 {
		return true
	}
	return (s.Y < 0) != (other.Y < 0)
}
