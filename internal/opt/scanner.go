package opt

import (
	"log/slog"

	"github.com/cwbudde/roots"
)

// ScanBrackets samples f at n+1 evenly spaced points over [a, b] and returns
// every sub-interval whose endpoints confine a root. Roots falling exactly on
// a grid point are caught by the bracketing test of the adjacent interval.
func ScanBrackets(f func(float64) float64, a, b float64, n int) []roots.Interval[float64] {
	if n < 1 || b <= a {
		return nil
	}

	var brackets []roots.Interval[float64]
	width := (b - a) / float64(n)

	prev := roots.Sample[float64]{X: a, Y: f(a)}
	for i := 1; i <= n; i++ {
		x := a + float64(i)*width
		cur := roots.Sample[float64]{X: x, Y: f(x)}
		if prev.IsBracketedWith(cur) {
			brackets = append(brackets, roots.Interval[float64]{Begin: prev, End: cur})
		}
		prev = cur
	}

	slog.Debug("Bracket scan complete", "range_begin", a, "range_end", b, "samples", n+1, "brackets", len(brackets))
	return brackets
}

// RefineBrackets runs the bracketed search on every interval and collects the
// roots that converge. Brackets that exhaust the iteration budget are skipped;
// duplicates from adjacent brackets touching the same grid-point root are
// collapsed by the tolerance of the policy: a root that forms a converged
// interval with the previous one is the same root seen twice.
func RefineBrackets(f func(float64) float64, brackets []roots.Interval[float64], conv roots.Convergency[float64]) []float64 {
	var found []float64
	for _, iv := range brackets {
		root, err := roots.FindRootBrent(iv.Begin.X, iv.End.X, f, conv)
		if err != nil {
			slog.Warn("Bracket did not converge", "begin", iv.Begin.X, "end", iv.End.X, "error", err)
			continue
		}
		if len(found) > 0 {
			prev := found[len(found)-1]
			gap := roots.Interval[float64]{
				Begin: roots.Sample[float64]{X: prev, Y: f(prev)},
				End:   roots.Sample[float64]{X: root, Y: f(root)},
			}
			if conv.IsConverged(gap) {
				continue
			}
		}
		found = append(found, root)
	}
	return found
}

// FindAllRoots scans [a, b] with n sample points and refines every bracket.
// When the scan finds no sign change, the optimizer (if any) is used to hunt
// for a minimum of |f|: a minimum at zero is a root of even multiplicity that
// a sign-change scan cannot see.
func FindAllRoots(f func(float64) float64, a, b float64, n int, conv roots.Convergency[float64], optimizer Optimizer) []float64 {
	brackets := ScanBrackets(f, a, b, n)
	if len(brackets) > 0 {
		return RefineBrackets(f, brackets, conv)
	}

	if optimizer == nil {
		return nil
	}

	abs := func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	}
	x, y := optimizer.Run(func(x float64) float64 { return abs(f(x)) }, a, b)
	if conv.IsRootFound(y) {
		slog.Debug("Optimizer located a root basin", "x", x, "residual", y)
		return []float64{x}
	}
	return nil
}
