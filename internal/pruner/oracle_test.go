package pruner

import (
	"context"
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

// alwaysRedundantOracle flags every candidate as exactly redundant,
// letting the test observe that the oracle veto reaches AddCuts even when
// the tolerance-based filter would have admitted the candidate.
type alwaysRedundantOracle struct{}

func (alwaysRedundantOracle) IsRedundantExact(ctx context.Context, s *store.CutStore, sense cut.Sense, a []float64, b float64) (bool, error) {
	return true, nil
}

func (alwaysRedundantOracle) ParseSense(token string) (cut.Sense, error) {
	return cut.ParseSense(token)
}

func TestOracleVetoesCandidateTheFilterWouldAdmit(t *testing.T) {
	p, err := NewDefaultAveragePruner(1, cut.GE, 3)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	p.SetOracle(alwaysRedundantOracle{})

	status, err := p.AddCuts([][]float64{{1}}, []float64{1}, []bool{false})
	if err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if status[0] != 0 {
		t.Fatalf("want candidate rejected by oracle, got status %v", status)
	}
	if p.NCuts() != 0 {
		t.Fatalf("want 0 cuts admitted, got %d", p.NCuts())
	}
}

func TestNoOracleAdmitsNormally(t *testing.T) {
	p, err := NewDefaultAveragePruner(1, cut.GE, 3)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	status, err := p.AddCuts([][]float64{{1}}, []float64{1}, []bool{false})
	if err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if status[0] == 0 {
		t.Fatal("want candidate admitted with no oracle set")
	}
}
