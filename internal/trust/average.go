package trust

import (
	"math"

	"github.com/danielpatrickdp/cutpruner/internal/errs"
)

// useThreshold is the smallest |sigma*rho| a round's dual multiplier must
// clear to count as "used" this round, for both Average and Decay.
const useThreshold = 1e-6

// Average scores each cut by the fraction of rounds it was used in, out of
// the rounds it was present for: trust[i] = nUsed[i] / nWith[i].
type Average struct {
	NewCutTrust float64
	MyCutBonus  float64

	nUsed []int
	nWith []int
	trust []float64
}

// NewAverage builds an Average model with the default parameters
// (NewCutTrust 0.5, MyCutBonus 0).
func NewAverage() *Average {
	return &Average{NewCutTrust: 0.5, MyCutBonus: 0}
}

func (a *Average) InitialTrust(isMyCut bool) float64 {
	if isMyCut {
		return a.NewCutTrust + a.MyCutBonus
	}
	return a.NewCutTrust
}

func (a *Average) OnReplace(slots []int, isMyCut []bool) {
	for i, s := range slots {
		a.nUsed[s] = 0
		a.nWith[s] = 0
		a.trust[s] = a.InitialTrust(isMyCut[i])
	}
}

func (a *Average) OnAppend(isMyCut []bool) {
	for _, my := range isMyCut {
		a.nUsed = append(a.nUsed, 0)
		a.nWith = append(a.nWith, 0)
		a.trust = append(a.trust, a.InitialTrust(my))
	}
}

func (a *Average) OnKeepOnly(keep []int) {
	nUsed := make([]int, len(keep))
	nWith := make([]int, len(keep))
	trust := make([]float64, len(keep))
	for i, k := range keep {
		nUsed[i] = a.nUsed[k]
		nWith[i] = a.nWith[k]
		trust[i] = a.trust[k]
	}
	a.nUsed, a.nWith, a.trust = nUsed, nWith, trust
}

func (a *Average) UpdateStats(signal Signal) error {
	if len(signal.SigmaRho) != len(a.trust) {
		return errs.NewShapeError("trust.Average.UpdateStats", "len(sigmaRho) != current cut count")
	}
	for i, sr := range signal.SigmaRho {
		a.nWith[i]++
		if math.Abs(sr) > useThreshold {
			a.nUsed[i]++
		}
		if a.nWith[i] > 0 {
			a.trust[i] = float64(a.nUsed[i]) / float64(a.nWith[i])
		}
	}
	return nil
}

// IsBetter forces eviction whenever the candidate is a my-cut — a freshly
// generated my-cut is always treated as at least as good as any incumbent
// of the same kind. Otherwise an incumbent keeps its slot on a tie, so a
// plain candidate needs to be strictly better to dislodge an equally
// trusted, already-admitted cut.
func (a *Average) IsBetter(i int, hypotheticalMyCut bool) bool {
	if hypotheticalMyCut {
		return false
	}
	return a.trust[i] >= a.InitialTrust(false)
}

func (a *Average) Trust() []float64 {
	return a.trust
}

// RestoreTrust overwrites the trust vector directly, leaving nUsed/nWith
// at whatever OnAppend already seeded them to (typically zero) — a
// restored Average model has no observation history to reconstruct.
func (a *Average) RestoreTrust(values []float64) error {
	if len(values) != len(a.trust) {
		return errs.NewShapeError("trust.Average.RestoreTrust", "length mismatch")
	}
	copy(a.trust, values)
	return nil
}
