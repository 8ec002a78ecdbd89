// Package solver defines the optional exact-pruning collaborator an
// AddCuts caller can plug in: a check beyond the tolerance-based
// redundancy.Filter that a candidate is dominated by the current store
// (spec §1's "does not run an LP to detect geometric redundancy beyond
// the tolerance check" — this is the seam that lets a caller do exactly
// that, without the core depending on it).
package solver

import (
	"context"
	"math"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

// Oracle consults an external or costlier redundancy check and parses a
// solver's sense tokens. Both methods are optional collaborators: a
// Pruner built without one falls back to the tolerance-based filter
// alone.
type Oracle interface {
	// IsRedundantExact reports whether the candidate (a,b) is dominated by
	// the cuts already in store, beyond what the tolerance-based filter
	// caught.
	IsRedundantExact(ctx context.Context, s *store.CutStore, sense cut.Sense, a []float64, b float64) (bool, error)
	// ParseSense maps a solver's textual sense token to cut.Sense.
	ParseSense(token string) (cut.Sense, error)
}

// NullOracle always reports "not redundant" and defers sense parsing to
// cut.ParseSense. It is the default: a Pruner built with no Oracle behaves
// exactly as if NullOracle were wired in.
type NullOracle struct{}

func (NullOracle) IsRedundantExact(ctx context.Context, s *store.CutStore, sense cut.Sense, a []float64, b float64) (bool, error) {
	return false, nil
}

func (NullOracle) ParseSense(token string) (cut.Sense, error) {
	return cut.ParseSense(token)
}

// HeuristicOracle flags a candidate as redundant when it is within angle
// and offset tolerance of an existing row, scanning every stored row with
// a cosine-distance test on the raw coefficients and offsets instead of
// the tolerance filter's normalized-row match. It costs more (O(n) exact comparisons per candidate against
// every row, independent of the filter's normalized-row shortcut) but
// stays stdlib-only.
type HeuristicOracle struct {
	AngleTol  float64
	OffsetTol float64
}

// NewHeuristicOracle builds a HeuristicOracle with the given tolerances.
func NewHeuristicOracle(angleTol, offsetTol float64) *HeuristicOracle {
	return &HeuristicOracle{AngleTol: angleTol, OffsetTol: offsetTol}
}

func (h *HeuristicOracle) IsRedundantExact(ctx context.Context, s *store.CutStore, sense cut.Sense, a []float64, b float64) (bool, error) {
	for i, row := range s.A {
		if cosineDistance(a, row) <= h.AngleTol && math.Abs(b-s.B[i]) <= h.OffsetTol {
			return true, nil
		}
	}
	return false, nil
}

func (h *HeuristicOracle) ParseSense(token string) (cut.Sense, error) {
	return cut.ParseSense(token)
}

// cosineDistance returns 1 - cos(angle between x and y), 0 for identical
// directions and degenerate (zero-length) vectors.
func cosineDistance(x, y []float64) float64 {
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(nx) * math.Sqrt(ny))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return 1 - cos
}
