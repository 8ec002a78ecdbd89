package territory

import (
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

func TestCutValueFunctionSense(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}}, []float64{3}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx := New(s, cut.Max)
	if got := idx.CutValue(0, []float64{2}); got != 5 {
		t.Fatalf("CutValue = %v, want 5", got)
	}
}

func TestAddStateAssignsArgmaxOwner(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}, {-1}}, []float64{0, 10}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx := New(s, cut.Max)
	idx.OnAppendN(2)
	idx.AddState([]float64{5})

	sizes := idx.Sizes()
	// cut0 value at x=5: 5+0=5. cut1 value: -5+10=5. Tie: first match wins.
	if sizes[0] != 1 || sizes[1] != 0 {
		t.Fatalf("sizes = %v, want [1 0] (tie resolved to first cut)", sizes)
	}
}

func TestUpdateTerritoryForNewCutStealsOnStrictImprovement(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}}, []float64{0}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx := New(s, cut.Max)
	idx.OnAppendN(1)
	idx.AddState([]float64{1}) // owned by cut 0, value 1

	if _, err := s.Append([][]float64{{2}}, []float64{0}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx.OnAppendN(1)

	sizes := idx.Sizes()
	if sizes[0] != 0 || sizes[1] != 1 {
		t.Fatalf("sizes = %v, want [0 1] (new cut strictly dominates at x=1)", sizes)
	}
}

func TestOnReplaceRehomesOrphans(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}, {0}}, []float64{0, 0}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx := New(s, cut.Max)
	idx.OnAppendN(2)
	idx.AddState([]float64{1}) // owned by cut 0 (value 1, vs cut 1's value 0)

	if err := s.ReplaceAt([]int{0}, [][]float64{{-1}}, []float64{0}); err != nil {
		t.Fatalf("ReplaceAt: %v", err)
	}
	idx.OnReplaceAt([]int{0})

	sizes := idx.Sizes()
	// cut0 now has value -1 at x=1; cut1 still has value 0. Orphan rehomes to cut1.
	if sizes[0] != 0 || sizes[1] != 1 {
		t.Fatalf("sizes = %v, want [0 1] (orphaned state rehomed to surviving cut)", sizes)
	}
}

func TestOnKeepOnlyDropsAndRehomes(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}, {0}, {-1}}, []float64{0, 0, 10}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	idx := New(s, cut.Max)
	idx.OnAppendN(3)
	idx.AddState([]float64{6}) // owned by cut 0 (value 6, vs 0 and -6+10=4)

	if err := s.KeepOnly([]int{1, 2}); err != nil {
		t.Fatalf("KeepOnly: %v", err)
	}
	idx.OnKeepOnly([]int{1, 2})

	sizes := idx.Sizes()
	if len(sizes) != 2 {
		t.Fatalf("len(sizes) = %d, want 2", len(sizes))
	}
	// Orphaned state rehomes to whichever surviving cut now has the
	// largest value; cut index 1 (old slot 2, value -6+10=4) wins.
	if sizes[1] != 1 {
		t.Fatalf("sizes = %v, want orphan rehomed to slot 1", sizes)
	}
}
