// Package roots finds real roots of single-variable equations f(x)=0.
//
// Closed-form solvers (FindRootsLinear through FindRootsQuartic) return all
// roots of low-degree polynomials at once. FindRootsSturm dispatches a
// normalized coefficient sequence to the matching closed-form solver. The
// FindRoot* functions approximate a root of an arbitrary function
// iteratively; success and failure conditions are customized through the
// Convergency interface. Only real roots are computed, and multiple roots
// are reported once.
package roots

// Roots holds up to four real roots in ascending order with duplicates
// collapsed. The zero value is the empty root set.
type Roots[F Float] struct {
	roots [4]F
	n     int
}

// NoRoots returns the empty root set.
func NoRoots[F Float]() Roots[F] {
	return Roots[F]{}
}

// OneRoot returns a root set holding a single root.
func OneRoot[F Float](x F) Roots[F] {
	return Roots[F]{roots: [4]F{x}, n: 1}
}

// TwoRoots returns a root set holding the given roots, ordered and deduplicated.
func TwoRoots[F Float](x1, x2 F) Roots[F] {
	return OneRoot(x1).add(x2)
}

// ThreeRoots returns a root set holding the given roots, ordered and deduplicated.
func ThreeRoots[F Float](x1, x2, x3 F) Roots[F] {
	return TwoRoots(x1, x2).add(x3)
}

// FourRoots returns a root set holding the given roots, ordered and deduplicated.
func FourRoots[F Float](x1, x2, x3, x4 F) Roots[F] {
	return ThreeRoots(x1, x2, x3).add(x4)
}

// add inserts x keeping ascending order. An exact duplicate is dropped.
func (r Roots[F]) add(x F) Roots[F] {
	i := 0
	for i < r.n && r.roots[i] < x {
		i++
	}
	if i < r.n && r.roots[i] == x {
		return r
	}
	copy(r.roots[i+1:r.n+1], r.roots[i:r.n])
	r.roots[i] = x
	r.n++
	return r
}

// Len returns the number of roots in the set.
func (r Roots[F]) Len() int {
	return r.n
}

// Slice returns the roots in ascending order. The returned slice is a copy.
func (r Roots[F]) Slice() []F {
	out := make([]F, r.n)
	copy(out, r.roots[:r.n])
	return out
}
