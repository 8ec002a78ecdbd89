package solver

import (
	"context"
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

func TestNullOracleNeverFlagsRedundant(t *testing.T) {
	s := store.New(2)
	if _, err := s.Append([][]float64{{1, 0}}, []float64{1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	var o NullOracle
	redundant, err := o.IsRedundantExact(context.Background(), s, cut.GE, []float64{1, 0}, 1)
	if err != nil {
		t.Fatalf("IsRedundantExact: %v", err)
	}
	if redundant {
		t.Fatal("NullOracle must never flag redundant")
	}
}

func TestNullOracleParseSenseDelegates(t *testing.T) {
	var o NullOracle
	sense, err := o.ParseSense("ge")
	if err != nil {
		t.Fatalf("ParseSense: %v", err)
	}
	if sense != cut.GE {
		t.Fatalf("want GE, got %v", sense)
	}
}

func TestHeuristicOracleFlagsNearIdenticalRow(t *testing.T) {
	s := store.New(2)
	if _, err := s.Append([][]float64{{1, 0}}, []float64{1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	o := NewHeuristicOracle(1e-9, 1e-9)
	redundant, err := o.IsRedundantExact(context.Background(), s, cut.GE, []float64{1, 0}, 1)
	if err != nil {
		t.Fatalf("IsRedundantExact: %v", err)
	}
	if !redundant {
		t.Fatal("expected exact duplicate row to be flagged redundant")
	}
}

func TestHeuristicOracleAdmitsDistinctDirection(t *testing.T) {
	s := store.New(2)
	if _, err := s.Append([][]float64{{1, 0}}, []float64{1}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	o := NewHeuristicOracle(1e-9, 1e-9)
	redundant, err := o.IsRedundantExact(context.Background(), s, cut.GE, []float64{0, 1}, 1)
	if err != nil {
		t.Fatalf("IsRedundantExact: %v", err)
	}
	if redundant {
		t.Fatal("orthogonal row must not be flagged redundant")
	}
}
