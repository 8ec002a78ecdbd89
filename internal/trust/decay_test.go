package trust

import "testing"

func TestDecayAppliesLambdaEachRound(t *testing.T) {
	d := NewDecay(0.9)
	d.OnAppend([]bool{false})
	if err := d.UpdateStats(Signal{SigmaRho: []float64{0}}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}
	want := 0.5 * 0.9
	if d.trust[0] != want {
		t.Fatalf("trust[0] = %v, want %v", d.trust[0], want)
	}
}

func TestDecayIncrementsOnUse(t *testing.T) {
	d := NewDecay(0.9)
	d.OnAppend([]bool{false})
	if err := d.UpdateStats(Signal{SigmaRho: []float64{1}}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}
	want := 0.5*0.9 + 1
	if d.trust[0] != want {
		t.Fatalf("trust[0] = %v, want %v", d.trust[0], want)
	}
}

func TestDecayIsBetterAsymmetry(t *testing.T) {
	d := NewDecay(0.9)
	d.OnAppend([]bool{false})
	if d.IsBetter(0, true) {
		t.Fatal("a my-cut hypothesis must never lose the eviction contest")
	}
	if !d.IsBetter(0, false) {
		t.Fatal("an incumbent at exactly NewCutTrust should beat a tied non-my candidate")
	}
}
