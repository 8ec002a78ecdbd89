package redundancy

import (
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
)

func TestFilterFlagsLooserBoundAgainstExisting(t *testing.T) {
	existingA := [][]float64{{0, 1}}
	existingB := []float64{1}
	candA := [][]float64{{0, 1}}
	candB := []float64{2}

	got := Filter(existingA, existingB, candA, candB, cut.LE, DefaultTolerance)
	if !got[0] {
		t.Fatal("expected candidate with looser (larger) <= bound to be redundant")
	}
}

func TestFilterAdmitsStrictlyTighterBound(t *testing.T) {
	existingA := [][]float64{{0, 1}}
	existingB := []float64{1}
	candA := [][]float64{{0, 1}}
	candB := []float64{0}

	got := Filter(existingA, existingB, candA, candB, cut.LE, DefaultTolerance)
	if got[0] {
		t.Fatal("expected strictly tighter <= bound not to be flagged redundant")
	}
}

func TestFilterLowerBoundSenseInvertsDomination(t *testing.T) {
	existingA := [][]float64{{0, 1}}
	existingB := []float64{5}
	// A GE cut with a smaller offset is weaker and redundant against a
	// stronger existing lower bound.
	candA := [][]float64{{0, 1}}
	candB := []float64{1}

	got := Filter(existingA, existingB, candA, candB, cut.GE, DefaultTolerance)
	if !got[0] {
		t.Fatal("expected weaker GE candidate to be redundant against a tighter existing bound")
	}
}

func TestFilterDifferentDirectionNeverRedundant(t *testing.T) {
	existingA := [][]float64{{1, 0}}
	existingB := []float64{1}
	candA := [][]float64{{0, 1}}
	candB := []float64{1}

	got := Filter(existingA, existingB, candA, candB, cut.LE, DefaultTolerance)
	if got[0] {
		t.Fatal("rows pointing in different directions must never be flagged redundant")
	}
}

func TestFilterWithinBatchFirstMatchWins(t *testing.T) {
	candA := [][]float64{{0, 1}, {0, 1}}
	candB := []float64{0, 1}

	got := Filter(nil, nil, candA, candB, cut.LE, DefaultTolerance)
	if got[0] {
		t.Fatal("first candidate in the batch must never be redundant against a later one")
	}
	if !got[1] {
		t.Fatal("second candidate has a looser bound than the first and should be redundant")
	}
}
