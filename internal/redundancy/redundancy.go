// Package redundancy flags incoming cuts that add no information beyond
// what a pruner's store (or an earlier cut in the same batch) already
// captures. See spec §4.4.
package redundancy

import (
	"math"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
)

// DefaultTolerance is the default normalized-row comparison tolerance.
const DefaultTolerance = 1e-6

// row is a candidate or existing cut after normalize: a polyhedron-sense
// row with a non-negligible norm is scaled to a unit-norm coefficient
// vector, so that its direction and offset comparisons are
// scale-independent; other rows keep their raw coefficients.
type row struct {
	aHat []float64
	bHat float64
}

// normalize implements spec §4.4 step 1: a function-sense row is never
// rescaled (it already has consistent units), and a polyhedron-sense row
// with a near-zero coefficient vector is left alone to avoid dividing by
// (near) zero.
func normalize(a []float64, b float64, isFunction bool, tol float64) row {
	if isFunction {
		return row{aHat: a, bHat: b}
	}
	n := norm(a)
	if n < tol {
		return row{aHat: a, bHat: b}
	}
	aHat := make([]float64, len(a))
	for i, v := range a {
		aHat[i] = v / n
	}
	return row{aHat: aHat, bHat: b / n}
}

func norm(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}

func sameDirection(x, y []float64, tol float64) bool {
	for i := range x {
		if math.Abs(x[i]-y[i]) > tol {
			return false
		}
	}
	return true
}

// dominates reports whether existing already covers candidate: under a
// lower-bound sense (Max/GE) a candidate is redundant if it fails to raise
// the bound past existing by more than tol; under an upper-bound sense
// (Min/LE) it is redundant if it fails to lower it by more than tol.
func dominates(existing, candidate row, isLowerBound bool, tol float64) bool {
	if isLowerBound {
		return candidate.bHat <= existing.bHat+tol
	}
	return candidate.bHat >= existing.bHat-tol
}

// Filter reports, for each candidate row i, whether it is redundant given
// the existing store rows and the candidates that precede it in the same
// batch (first-match-wins: an earlier non-redundant candidate can render a
// later one redundant, but not the reverse). sense fixes whether a larger
// or smaller offset dominates; tol is the normalized-row comparison
// tolerance (DefaultTolerance if the caller has no reason to widen it).
func Filter(existingA [][]float64, existingB []float64, candA [][]float64, candB []float64, sense cut.Sense, tol float64) []bool {
	isFunction := sense.IsFunction()
	working := make([]row, 0, len(existingA)+len(candA))
	for i, a := range existingA {
		working = append(working, normalize(a, existingB[i], isFunction, tol))
	}

	redundant := make([]bool, len(candA))
	isLowerBound := sense.IsLowerBound()
	for i, a := range candA {
		r := normalize(a, candB[i], isFunction, tol)
		isRedundant := false
		for _, w := range working {
			if sameDirection(r.aHat, w.aHat, tol) && dominates(w, r, isLowerBound, tol) {
				isRedundant = true
				break
			}
		}
		redundant[i] = isRedundant
		if !isRedundant {
			working = append(working, r)
		}
	}
	return redundant
}
