package roots

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point precisions the solvers are generic over.
// Arithmetic and comparison use the native operators; the transcendental
// helpers below route through float64, which is exact enough for both
// supported precisions.
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x. Negative arguments are allowed.
func Cbrt[F Float](x F) F {
	return F(math.Cbrt(float64(x)))
}

// Acos returns the arccosine of x in radians.
func Acos[F Float](x F) F {
	return F(math.Acos(float64(x)))
}

// Cos returns the cosine of x.
func Cos[F Float](x F) F {
	return F(math.Cos(float64(x)))
}

// Pow returns x**y.
func Pow[F Float](x, y F) F {
	return F(math.Pow(float64(x), float64(y)))
}

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Pi returns the constant pi at precision F.
func Pi[F Float]() F {
	return F(math.Pi)
}

// TwoThirdPi returns 2*pi/3, the phase offset between the three real roots
// of a cubic in the trigonometric method.
func TwoThirdPi[F Float]() F {
	return F(2 * math.Pi / 3)
}
