package pruner

import (
	"context"

	"github.com/danielpatrickdp/cutpruner/internal/errs"
	"github.com/danielpatrickdp/cutpruner/internal/redundancy"
	"github.com/danielpatrickdp/cutpruner/internal/selector"
)

// AddCuts offers a batch of candidate cuts for admission. It returns one
// status entry per candidate, in input order: 0 if the candidate was
// rejected (redundant, or lost the eviction contest), otherwise the
// candidate's final 1-indexed slot.
//
// The batch runs through the redundancy filter first, then a capacity
// check; if the batch would overflow maxCuts, the eviction-retraction
// loop negotiates how many of the weakest incumbents actually get
// replaced, giving every unplaced my-cut priority over a plain candidate
// (spec §4.5).
func (p *Pruner) AddCuts(aNew [][]float64, bNew []float64, isMyCut []bool) ([]int, error) {
	if p.poisoned != nil {
		return nil, p.poisoned
	}
	if len(aNew) != len(bNew) || len(aNew) != len(isMyCut) {
		return nil, errs.NewShapeError("pruner.AddCuts", "A'/b'/isMyCut length mismatch")
	}
	for _, row := range aNew {
		if len(row) != p.dim {
			return nil, errs.NewShapeError("pruner.AddCuts", "row column count != dim")
		}
	}

	status := make([]int, len(aNew))

	redundant := redundancy.Filter(p.store.A, p.store.B, aNew, bNew, p.sense, p.tol)
	var candA [][]float64
	var candB []float64
	var candMy []bool
	var candOrig []int
	for i, r := range redundant {
		if r {
			status[i] = 0
			continue
		}
		if p.oracle != nil {
			exact, err := p.oracle.IsRedundantExact(context.Background(), p.store, p.sense, aNew[i], bNew[i])
			if err != nil {
				return nil, err
			}
			if exact {
				status[i] = 0
				continue
			}
		}
		candA = append(candA, aNew[i])
		candB = append(candB, bNew[i])
		candMy = append(candMy, isMyCut[i])
		candOrig = append(candOrig, i)
	}

	nCur := p.store.N()
	nNew := len(candA)
	if nNew == 0 {
		return status, nil
	}

	if p.maxCuts == Unbounded || nCur+nNew <= p.maxCuts {
		slots, err := p.store.Append(candA, candB)
		if err != nil {
			return nil, p.fail(errs.NewInvariantViolation("addCuts.append", err.Error()))
		}
		p.model.OnAppend(candMy)
		for i, s := range slots {
			status[candOrig[i]] = s + 1
		}
		if err := p.assertConsistent(); err != nil {
			return nil, err
		}
		return status, nil
	}

	take, nReplaced, R := p.negotiateEviction(nCur, nNew, candMy)

	myIdxs := make([]int, 0, nNew)
	otherIdxs := make([]int, 0, nNew)
	for i, my := range candMy {
		if my {
			myIdxs = append(myIdxs, i)
		} else {
			otherIdxs = append(otherIdxs, i)
		}
	}
	nMyAdmit := min(take, len(myIdxs))
	nOtherAdmit := take - nMyAdmit
	admitted := append(append([]int{}, myIdxs[len(myIdxs)-nMyAdmit:]...), otherIdxs[len(otherIdxs)-nOtherAdmit:]...)

	replaceRows := R[:nReplaced]
	replaceIdxs := admitted[:nReplaced]
	appendIdxs := admitted[nReplaced:]

	replaceA := make([][]float64, len(replaceIdxs))
	replaceB := make([]float64, len(replaceIdxs))
	replaceMy := make([]bool, len(replaceIdxs))
	for i, idx := range replaceIdxs {
		replaceA[i] = candA[idx]
		replaceB[i] = candB[idx]
		replaceMy[i] = candMy[idx]
	}
	if err := p.store.ReplaceAt(replaceRows, replaceA, replaceB); err != nil {
		return nil, p.fail(errs.NewInvariantViolation("addCuts.replace", err.Error()))
	}
	p.model.OnReplace(replaceRows, replaceMy)
	for i, idx := range replaceIdxs {
		status[candOrig[idx]] = replaceRows[i] + 1
	}

	if len(appendIdxs) > 0 {
		appendA := make([][]float64, len(appendIdxs))
		appendB := make([]float64, len(appendIdxs))
		appendMy := make([]bool, len(appendIdxs))
		for i, idx := range appendIdxs {
			appendA[i] = candA[idx]
			appendB[i] = candB[idx]
			appendMy[i] = candMy[idx]
		}
		slots, err := p.store.Append(appendA, appendB)
		if err != nil {
			return nil, p.fail(errs.NewInvariantViolation("addCuts.append", err.Error()))
		}
		p.model.OnAppend(appendMy)
		for i, idx := range appendIdxs {
			status[candOrig[idx]] = slots[i] + 1
		}
	}

	if err := p.assertConsistent(); err != nil {
		return nil, err
	}
	return status, nil
}

// negotiateEviction runs the retraction loop of spec §4.5 and returns the
// final admission count (take), how many of the selected victims actually
// get evicted (nReplaced), and the victim slots themselves (R, ordered
// weakest-first; R[:nReplaced] are the ones that survive the loop).
func (p *Pruner) negotiateEviction(nCur, nNew int, candMy []bool) (take, nReplaced int, R []int) {
	m := nCur + nNew - p.maxCuts
	if m > nCur {
		m = nCur
	}
	R = selector.ChooseToRemove(p.model.Trust(), p.store.Ids, m)

	take = p.maxCuts - nCur
	nReplaced = len(R)
	nMy := 0
	for _, my := range candMy {
		if my {
			nMy++
		}
	}

	for nReplaced > 0 && take+len(R)-nReplaced < nNew {
		victim := R[nReplaced-1]
		hypoMy := take < nMy
		if p.model.IsBetter(victim, hypoMy) {
			nReplaced--
		} else {
			take++
		}
	}
	if cap := p.maxCuts - nCur + nReplaced; take > cap {
		take = cap
	}
	return take, nReplaced, R
}
