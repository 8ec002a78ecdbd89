package persistence

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/pruner"
	"github.com/danielpatrickdp/cutpruner/internal/trust"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "snapshots.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadAverageRoundTrips(t *testing.T) {
	s := tempStore(t)

	p, err := pruner.NewDefaultAveragePruner(2, cut.GE, 3)
	if err != nil {
		t.Fatalf("NewDefaultAveragePruner: %v", err)
	}
	if _, err := p.AddCuts([][]float64{{1, 0}, {0, 1}}, []float64{1, 2}, []bool{false, false}); err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if err := p.UpdateStats(trust.Signal{SigmaRho: []float64{2, 0}}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}

	id, err := s.Save(p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty snapshot id")
	}

	loaded, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.NCuts() != p.NCuts() {
		t.Fatalf("NCuts mismatch: want %d got %d", p.NCuts(), loaded.NCuts())
	}
	if loaded.Dim() != p.Dim() || loaded.MaxCuts() != p.MaxCuts() || loaded.GetSense() != p.GetSense() {
		t.Fatal("configuration did not round-trip")
	}

	wantTrust := p.GetTrust()
	gotTrust := loaded.GetTrust()
	for i := range wantTrust {
		if wantTrust[i] != gotTrust[i] {
			t.Fatalf("trust[%d]: want %v got %v", i, wantTrust[i], gotTrust[i])
		}
	}

	wantIds := p.Ids()
	gotIds := loaded.Ids()
	for i := range wantIds {
		if wantIds[i] != gotIds[i] {
			t.Fatalf("ids[%d]: want %v got %v", i, wantIds[i], gotIds[i])
		}
	}

	if loaded.IDCursor() != p.IDCursor() {
		t.Fatalf("id cursor: want %d got %d", p.IDCursor(), loaded.IDCursor())
	}
}

func TestSaveAndLoadLevelOneReplaysStates(t *testing.T) {
	s := tempStore(t)

	p, err := pruner.NewLevelOnePruner(1, cut.Max, pruner.Unbounded, 0)
	if err != nil {
		t.Fatalf("NewLevelOnePruner: %v", err)
	}
	if _, err := p.AddCuts([][]float64{{1}, {-1}}, []float64{0, 0}, []bool{false, false}); err != nil {
		t.Fatalf("AddCuts: %v", err)
	}
	if err := p.UpdateStats(trust.Signal{States: [][]float64{{5}, {-5}, {5}}}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}

	id, err := s.Save(p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantTrust := p.GetTrust()
	gotTrust := loaded.GetTrust()
	for i := range wantTrust {
		if wantTrust[i] != gotTrust[i] {
			t.Fatalf("trust[%d]: want %v got %v (territory replay diverged)", i, wantTrust[i], gotTrust[i])
		}
	}
}

func TestLoadUnknownSnapshotReturnsNotFound(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Load("does-not-exist"); err != ErrSnapshotNotFound {
		t.Fatalf("want ErrSnapshotNotFound, got %v", err)
	}
}
