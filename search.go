package roots

// The FindRoot* functions approximate a single root of an arbitrary function
// by iterative refinement. All of them delegate every tolerance and
// termination decision to the supplied Convergency and keep only a local
// iteration counter.

// FindRootBisection finds a root of f between a and b by repeated halving of
// the bracket. It returns ErrNoBracketing when f(a) and f(b) do not confine
// a root.
func FindRootBisection[F Float](a, b F, f func(F) F, conv Convergency[F]) (F, error) {
	iv := Interval[F]{
		Begin: Sample[F]{X: a, Y: f(a)},
		End:   Sample[F]{X: b, Y: f(b)},
	}
	if !iv.IsBracketed() {
		return 0, ErrNoBracketing
	}
	for iter := 1; ; iter++ {
		switch {
		case conv.IsRootFound(iv.Begin.Y):
			return iv.Begin.X, nil
		case conv.IsRootFound(iv.End.Y):
			return iv.End.X, nil
		case iv.IsConverged(conv):
			return iv.Middle(), nil
		}
		mid := Sample[F]{X: iv.Middle(), Y: f(iv.Middle())}
		if iv.Begin.IsBracketedWith(mid) {
			iv.End = mid
		} else {
			iv.Begin = mid
		}
		if conv.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}

// FindRootSecant finds a root of f starting from the two guesses first and
// second. The guesses need not bracket a root; the search fails with
// ErrNoConvergency when the secant degenerates or the iteration budget runs
// out.
func FindRootSecant[F Float](first, second F, f func(F) F, conv Convergency[F]) (F, error) {
	s0 := Sample[F]{X: first, Y: f(first)}
	s1 := Sample[F]{X: second, Y: f(second)}
	for iter := 1; ; iter++ {
		switch {
		case conv.IsRootFound(s0.Y):
			return s0.X, nil
		case conv.IsRootFound(s1.Y):
			return s1.X, nil
		case conv.IsConverged(Interval[F]{Begin: s0, End: s1}):
			return s1.X, nil
		}
		if s1.Y == s0.Y {
			return 0, ErrNoConvergency
		}
		x := s1.X - s1.Y*(s1.X-s0.X)/(s1.Y-s0.Y)
		s0, s1 = s1, Sample[F]{X: x, Y: f(x)}
		if conv.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}

// FindRootNewtonRaphson finds a root of f starting from the guess start,
// using the caller-supplied derivative df. A zero derivative stops the
// search with ErrNoConvergency since no step can be computed.
func FindRootNewtonRaphson[F Float](start F, f, df func(F) F, conv Convergency[F]) (F, error) {
	prev := Sample[F]{X: start, Y: f(start)}
	for iter := 1; ; iter++ {
		if conv.IsRootFound(prev.Y) {
			return prev.X, nil
		}
		d := df(prev.X)
		if d == 0 {
			return 0, ErrNoConvergency
		}
		x := prev.X - prev.Y/d
		next := Sample[F]{X: x, Y: f(x)}
		if conv.IsConverged(Interval[F]{Begin: prev, End: next}) {
			return next.X, nil
		}
		prev = next
		if conv.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}

// FindRootRegulaFalsi finds a root of f between a and b by the false
// position method with the Illinois anti-stagnation rule: when the same
// endpoint survives two iterations in a row, its function value is halved so
// the secant line is pulled toward the stagnant side.
func FindRootRegulaFalsi[F Float](a, b F, f func(F) F, conv Convergency[F]) (F, error) {
	iv := Interval[F]{
		Begin: Sample[F]{X: a, Y: f(a)},
		End:   Sample[F]{X: b, Y: f(b)},
	}
	if !iv.IsBracketed() {
		return 0, ErrNoBracketing
	}
	side := 0 // -1: Begin retained last iteration, +1: End retained
	for iter := 1; ; iter++ {
		switch {
		case conv.IsRootFound(iv.Begin.Y):
			return iv.Begin.X, nil
		case conv.IsRootFound(iv.End.Y):
			return iv.End.X, nil
		case iv.IsConverged(conv):
			return iv.Middle(), nil
		}
		denom := iv.End.Y - iv.Begin.Y
		if denom == 0 {
			return 0, ErrNoConvergency
		}
		x := (iv.Begin.X*iv.End.Y - iv.End.X*iv.Begin.Y) / denom
		next := Sample[F]{X: x, Y: f(x)}
		if iv.Begin.IsBracketedWith(next) {
			iv.End = next
			if side == -1 {
				iv.Begin.Y /= 2
			}
			side = -1
		} else {
			iv.Begin = next
			if side == 1 {
				iv.End.Y /= 2
			}
			side = 1
		}
		if conv.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}

// FindRootBrent finds a root of f between a and b by Brent's method: at
// every step the bisection result competes with a linear or inverse
// quadratic interpolation, and the interpolated point is taken only when it
// falls safely inside the current bracket. b tracks the best approximation,
// a the previous one, and cp an older point chosen so that b and cp always
// confine the root.
func FindRootBrent[F Float](left, right F, f func(F) F, conv Convergency[F]) (F, error) {
	a := Sample[F]{X: left, Y: f(left)}
	b := Sample[F]{X: right, Y: f(right)}
	if !a.IsBracketedWith(b) {
		return 0, ErrNoBracketing
	}
	cp := a
	for iter := 1; ; iter++ {
		if Abs(cp.Y) < Abs(b.Y) {
			a, b, cp = b, cp, b
		}
		if conv.IsRootFound(b.Y) {
			return b.X, nil
		}
		if conv.IsConverged(Interval[F]{Begin: b, End: cp}) {
			return b.X, nil
		}

		prev := b.X - a.X
		cb := cp.X - b.X
		step := cb / 2

		if Abs(a.Y) > Abs(b.Y) {
			var p, q F
			if a.X == cp.X {
				// Only two distinct points: linear interpolation.
				t1 := b.Y / a.Y
				p = cb * t1
				q = 1 - t1
			} else {
				// Inverse quadratic interpolation.
				q0 := a.Y / cp.Y
				t1 := b.Y / cp.Y
				t2 := b.Y / a.Y
				p = t2 * (cb*q0*(q0-t1) - (b.X-a.X)*(t1-1))
				q = (q0 - 1) * (t1 - 1) * (t2 - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if p < 3*cb*q/4 && p < Abs(prev*q/2) {
				step = p / q
			}
		}

		a = b
		b = Sample[F]{X: b.X + step, Y: f(b.X + step)}
		if b.Y != 0 && cp.Y != 0 && (b.Y > 0) == (cp.Y > 0) {
			cp = a
		}
		if conv.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}
