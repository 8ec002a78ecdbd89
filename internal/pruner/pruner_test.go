package pruner

import (
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
)

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	if _, err := NewDefaultAveragePruner(0, cut.LE, 3); err == nil {
		t.Fatal("expected configuration error for dim <= 0")
	}
	if _, err := NewDefaultAveragePruner(2, cut.LE, 0); err == nil {
		t.Fatal("expected configuration error for maxCuts == 0")
	}
	if _, err := NewDecayPruner(2, cut.LE, 3, 1.5, 0.5, 0, 0); err == nil {
		t.Fatal("expected configuration error for lambda outside (0,1)")
	}
}

func TestAddCutsEmptyBatch(t *testing.T) {
	p, err := NewDefaultAveragePruner(2, cut.LE, 3)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	status, err := p.AddCuts(nil, nil, nil)
	if err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if len(status) != 0 {
		t.Fatalf("status = %v, want empty", status)
	}
}

func TestAddCutsShapeMismatch(t *testing.T) {
	p, err := NewDefaultAveragePruner(2, cut.LE, 3)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	if _, err := p.AddCuts([][]float64{{1, 0}}, []float64{1, 2}, []bool{true}); err == nil {
		t.Fatal("expected shape error")
	}
	if _, err := p.AddCuts([][]float64{{1}}, []float64{1}, []bool{true}); err == nil {
		t.Fatal("expected shape error for wrong column count")
	}
}

func TestAddCutsAllRedundantLeavesStateUnchanged(t *testing.T) {
	p, err := NewDefaultAveragePruner(2, cut.GE, Unbounded)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	if _, err := p.AddCuts([][]float64{{1, 0}}, []float64{0}, []bool{true}); err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	status, err := p.AddCuts([][]float64{{1, 0}}, []float64{0}, []bool{false})
	if err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if status[0] != 0 {
		t.Fatalf("status = %v, want [0]", status)
	}
	if p.NCuts() != 1 {
		t.Fatalf("NCuts() = %d, want 1 (no state change)", p.NCuts())
	}
}

func TestRemoveCutsPreservesOrder(t *testing.T) {
	p, err := NewDefaultAveragePruner(1, cut.LE, Unbounded)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	if _, err := p.AddCuts([][]float64{{1}, {2}, {3}}, []float64{3, 2, 1}, []bool{false, false, false}); err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if err := p.RemoveCuts([]int{1}); err != nil {
		t.Fatalf("RemoveCuts: %v", err)
	}
	a, _ := p.Rows()
	if len(a) != 2 || a[0][0] != 1 || a[1][0] != 3 {
		t.Fatalf("rows = %v, want [[1] [3]]", a)
	}
	if len(p.GetTrust()) != 2 {
		t.Fatalf("len(trust) = %d, want 2", len(p.GetTrust()))
	}
}
