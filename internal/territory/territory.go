// Package territory implements the LevelOne trust variant's state/territory
// index: for every sampled state point it tracks which cut is currently the
// pointwise-optimal supporting cut, so that a cut's trust can be defined as
// the size of the territory it owns. See spec §4.6.
package territory

import (
	"math"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
)

// Index owns the sampled state points and, for each current cut, the set of
// state indices it is the pointwise maximizer for. It reads cut data
// directly from the CutStore it was built against, so it must only be
// mutated (OnAppendN/OnReplaceAt/OnKeepOnly) after the matching store
// mutation has already landed.
type Index struct {
	store *store.CutStore
	sense cut.Sense

	states       [][]float64
	territories  []map[int]float64 // per cut index: stateIndex -> cutValue
}

// New creates an empty territory index bound to s. s's cuts are interpreted
// under sense for the purposes of CutValue.
func New(s *store.CutStore, sense cut.Sense) *Index {
	return &Index{store: s, sense: sense}
}

// NStates returns how many state points have been sampled so far.
func (idx *Index) NStates() int {
	return len(idx.states)
}

// States returns the sampled state points, in sampling order. Callers
// must not mutate the returned slice.
func (idx *Index) States() [][]float64 {
	return idx.states
}

// Sizes returns the territory size of each current cut, in store row order —
// this is LevelOne's trust vector (spec §4.2 "trust[i] = |territories[i]|").
func (idx *Index) Sizes() []float64 {
	out := make([]float64, len(idx.territories))
	for i, t := range idx.territories {
		out[i] = float64(len(t))
	}
	return out
}

// CutValue computes cut k's value at point x under idx's sense: <a,x>+b for
// a function sense, the signed distance (b-<a,x>)/||a|| for a polyhedron
// sense, negated whenever the sense is not a lower bound so that a larger
// value always means "more supportive" (spec §4.6).
func (idx *Index) CutValue(k int, x []float64) float64 {
	a := idx.store.A[k]
	b := idx.store.B[k]
	var v float64
	if idx.sense.IsFunction() {
		v = dot(a, x) + b
	} else {
		v = (b - dot(a, x)) / norm2(a)
	}
	if !idx.sense.IsLowerBound() {
		v = -v
	}
	return v
}

// argmax returns the index of the cut with the largest CutValue at x, first
// match winning ties (spec §4.6 "first-match wins on ties").
func (idx *Index) argmax(x []float64) (int, float64) {
	best := -1
	var bestVal float64
	for k := range idx.store.A {
		v := idx.CutValue(k, x)
		if best == -1 || v > bestVal {
			best = k
			bestVal = v
		}
	}
	return best, bestVal
}

// UpdateTerritoryForNewCut scans every other cut's territory and moves any
// state point where newCut now strictly dominates to newCut's territory.
// Ties keep the existing owner.
func (idx *Index) UpdateTerritoryForNewCut(newCut int) {
	for j, t := range idx.territories {
		if j == newCut {
			continue
		}
		for ix, v := range t {
			nv := idx.CutValue(newCut, idx.states[ix])
			if nv > v {
				delete(t, ix)
				idx.territories[newCut][ix] = nv
			}
		}
	}
}

// AddState samples a new state point x, assigns it to the argmax cut's
// territory, and returns the state's index.
func (idx *Index) AddState(x []float64) int {
	ix := len(idx.states)
	idx.states = append(idx.states, x)
	best, bestVal := idx.argmax(x)
	if best >= 0 {
		idx.territories[best][ix] = bestVal
	}
	return ix
}

// GiveTerritory rehomes an orphaned state (one whose owning cut was just
// removed or cleared) to the current argmax cut.
func (idx *Index) GiveTerritory(ix int) {
	best, bestVal := idx.argmax(idx.states[ix])
	if best >= 0 {
		idx.territories[best][ix] = bestVal
	}
}

// OnAppendN extends the territory table with n empty sets (for n freshly
// appended cuts) and runs UpdateTerritoryForNewCut for each of them.
func (idx *Index) OnAppendN(n int) {
	base := len(idx.territories)
	for i := 0; i < n; i++ {
		idx.territories = append(idx.territories, make(map[int]float64))
	}
	for i := 0; i < n; i++ {
		idx.UpdateTerritoryForNewCut(base + i)
	}
}

// OnReplaceAt clears the territories at slots (whose rows were just
// overwritten in the bound CutStore), reruns UpdateTerritoryForNewCut for
// each of them, then rehomes every orphaned state that those slots used to
// own (spec §4.6 "on replace of slots K").
func (idx *Index) OnReplaceAt(slots []int) {
	var orphans []int
	for _, s := range slots {
		for ix := range idx.territories[s] {
			orphans = append(orphans, ix)
		}
		idx.territories[s] = make(map[int]float64)
	}
	for _, s := range slots {
		idx.UpdateTerritoryForNewCut(s)
	}
	for _, ix := range orphans {
		idx.GiveTerritory(ix)
	}
}

// OnKeepOnly reprojects the territory table to the given index sequence,
// the same way CutStore.KeepOnly reprojects A/B/Ids, and rehomes any state
// whose owning cut was dropped (not present in keep).
func (idx *Index) OnKeepOnly(keep []int) {
	kept := make(map[int]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	var orphans []int
	for j, t := range idx.territories {
		if !kept[j] {
			for ix := range t {
				orphans = append(orphans, ix)
			}
		}
	}
	newTerritories := make([]map[int]float64, len(keep))
	for i, k := range keep {
		newTerritories[i] = idx.territories[k]
	}
	idx.territories = newTerritories
	for _, ix := range orphans {
		idx.GiveTerritory(ix)
	}
}

func dot(a, x []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * x[i]
	}
	return s
}

func norm2(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}
