package trust

import (
	"testing"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

func TestLevelOneTrustTracksTerritorySize(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}, {-1}}, []float64{0, 0}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l := NewLevelOne(s, cut.Max)
	l.OnAppend([]bool{false, false})

	l.AddState([]float64{1})
	l.AddState([]float64{-1})

	got := l.Trust()
	if got[0] != 1 || got[1] != 1 {
		t.Fatalf("trust = %v, want [1 1] (one state each)", got)
	}
}

func TestLevelOneInitialTrustIsZero(t *testing.T) {
	l := &LevelOne{}
	if l.InitialTrust(true) != 0 || l.InitialTrust(false) != 0 {
		t.Fatal("LevelOne defines no my-cut bonus; initial trust must be 0 either way")
	}
}

func TestLevelOneUpdateStatsConsumesStates(t *testing.T) {
	s := store.New(1)
	if _, err := s.Append([][]float64{{1}}, []float64{0}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l := NewLevelOne(s, cut.Max)
	l.OnAppend([]bool{false})

	if err := l.UpdateStats(Signal{States: [][]float64{{1}, {2}}}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}
	if l.NStates() != 2 {
		t.Fatalf("NStates() = %d, want 2", l.NStates())
	}
	if got := l.Trust()[0]; got != 2 {
		t.Fatalf("trust[0] = %v, want 2", got)
	}
}
