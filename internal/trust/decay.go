package trust

import (
	"math"

	"github.com/danielpatrickdp/cutpruner/internal/errs"
)

// Decay scores each cut by an exponentially decaying usage signal:
// trust <- lambda*trust, +1 whenever the round's dual multiplier clears
// useThreshold.
type Decay struct {
	Lambda      float64
	NewCutTrust float64
	MyCutBonus  float64

	trust []float64
}

// NewDecay builds a Decay model with the given lambda and the default
// NewCutTrust 0.5 and MyCutBonus 0. Lambda must lie in (0,1); callers
// constructing through pruner.NewDecayPruner get that checked there.
func NewDecay(lambda float64) *Decay {
	return &Decay{Lambda: lambda, NewCutTrust: 0.5, MyCutBonus: 0}
}

func (d *Decay) InitialTrust(isMyCut bool) float64 {
	if isMyCut {
		return d.NewCutTrust + d.MyCutBonus
	}
	return d.NewCutTrust
}

func (d *Decay) OnReplace(slots []int, isMyCut []bool) {
	for i, s := range slots {
		d.trust[s] = d.InitialTrust(isMyCut[i])
	}
}

func (d *Decay) OnAppend(isMyCut []bool) {
	for _, my := range isMyCut {
		d.trust = append(d.trust, d.InitialTrust(my))
	}
}

func (d *Decay) OnKeepOnly(keep []int) {
	trust := make([]float64, len(keep))
	for i, k := range keep {
		trust[i] = d.trust[k]
	}
	d.trust = trust
}

func (d *Decay) UpdateStats(signal Signal) error {
	if len(signal.SigmaRho) != len(d.trust) {
		return errs.NewShapeError("trust.Decay.UpdateStats", "len(sigmaRho) != current cut count")
	}
	for i, sr := range signal.SigmaRho {
		d.trust[i] *= d.Lambda
		if math.Abs(sr) > useThreshold {
			d.trust[i]++
		}
	}
	return nil
}

// IsBetter mirrors Average's rule: a my-cut candidate always forces
// eviction; a plain candidate needs to strictly clear the incumbent's
// trust, so a tie favors the already-admitted, older cut.
func (d *Decay) IsBetter(i int, hypotheticalMyCut bool) bool {
	if hypotheticalMyCut {
		return false
	}
	return d.trust[i] >= d.InitialTrust(false)
}

func (d *Decay) Trust() []float64 {
	return d.trust
}

// RestoreTrust overwrites the trust vector directly.
func (d *Decay) RestoreTrust(values []float64) error {
	if len(values) != len(d.trust) {
		return errs.NewShapeError("trust.Decay.RestoreTrust", "length mismatch")
	}
	copy(d.trust, values)
	return nil
}
