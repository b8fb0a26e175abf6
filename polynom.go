package roots

// Polynom is a normalized polynomial: the coefficients a[0..n-1] represent
// x^n + a[0]*x^(n-1) + ... + a[n-1]. The leading coefficient is implicitly 1
// and never stored; the empty polynom is the constant 1.
type Polynom[F Float] []F

// ValueAndDerivative is the result of evaluating a polynom and its first
// derivative at the same point in a single pass.
type ValueAndDerivative[F Float] struct {
	Value      Sample[F]
	Derivative F
}

// Value evaluates the polynom at x by Horner-style accumulation, summing
// from the constant term up while tracking the running power of x.
func (p Polynom[F]) Value(x F) F {
	var result F
	xn := F(1)
	for i := len(p) - 1; i >= 0; i-- {
		result += p[i] * xn
		xn *= x
	}
	// The implicit leading coefficient is 1.
	return result + xn
}

// ValueAndDerivative evaluates the polynom and its derivative at x in one
// pass. The derivative accumulates a*n*x^(n-1) using the one-step-lagged
// power xn1.
func (p Polynom[F]) ValueAndDerivative(x F) ValueAndDerivative[F] {
	xn := F(1)
	var value F

	var xn1 F
	var derivative F
	var n F

	for i := len(p) - 1; i >= 0; i-- {
		value += p[i] * xn
		derivative += p[i] * n * xn1
		xn1 = xn
		xn *= x
		n++
	}

	return ValueAndDerivative[F]{
		Value:      Sample[F]{X: x, Y: value + xn},
		Derivative: derivative + n*xn1,
	}
}

// Derivative returns the derivative of the polynom, re-normalized so that
// its leading coefficient is again 1: the i-th coefficient of the result is
// a[i]*(n-1-i)/n for a polynom of degree n.
func (p Polynom[F]) Derivative() Polynom[F] {
	n := len(p)
	if n == 0 {
		return nil
	}
	d := make(Polynom[F], n-1)
	for i := range d {
		d[i] = p[i] * F(n-1-i) / F(n)
	}
	return d
}

// verdict is the outcome of a single search step.
type verdict int

const (
	verdictContinue verdict = iota
	verdictRootFound
	verdictConverged
)

// step advances the bracketed search by one iteration. It first checks the
// terminal conditions (an endpoint is already a root, begin before end; the
// interval has converged), then computes a trial sample: the Newton-Raphson
// step from the midpoint if it stays inside the bracket and improves on the
// midpoint's residual, the midpoint itself otherwise. The trial sample
// replaces whichever endpoint keeps the bracket valid.
func (p Polynom[F]) step(iv *Interval[F], c Convergency[F]) (verdict, F) {
	switch {
	case c.IsRootFound(iv.Begin.Y):
		return verdictRootFound, iv.Begin.X
	case c.IsRootFound(iv.End.Y):
		return verdictRootFound, iv.End.X
	case iv.IsConverged(c):
		return verdictConverged, iv.Middle()
	}

	middle := p.ValueAndDerivative(iv.Middle())

	next := middle.Value
	if middle.Derivative != 0 {
		nr := middle.Value.X - middle.Value.Y/middle.Derivative
		if nr >= iv.Begin.X && nr <= iv.End.X {
			if y := p.Value(nr); Abs(y) < Abs(middle.Value.Y) {
				next = Sample[F]{X: nr, Y: y}
			}
		}
	}

	if iv.Begin.IsBracketedWith(next) {
		iv.End = next
	} else {
		iv.Begin = next
	}
	return verdictContinue, 0
}

// FindRoot searches the bracketed interval for a root of the polynom,
// combining Newton-Raphson steps with bisection so that every iteration
// narrows the bracket. It returns ErrNoBracketing without iterating when the
// interval does not confine a root at entry, and ErrNoConvergency when the
// policy's iteration limit is exhausted.
func (p Polynom[F]) FindRoot(iv *Interval[F], c Convergency[F]) (F, error) {
	if !iv.IsBracketed() {
		return 0, ErrNoBracketing
	}
	for iter := 1; ; iter++ {
		if v, root := p.step(iv, c); v != verdictContinue {
			return root, nil
		}
		if c.IsIterationLimitReached(iter) {
			return 0, ErrNoConvergency
		}
	}
}
