package pruner

import (
	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/errs"
	"github.com/danielpatrickdp/cutpruner/internal/trust"
)

// fail records err as the pruner's poison if it is an InvariantViolation,
// then returns it unchanged. Ordinary ConfigurationError/ShapeError
// results from bad caller input never poison the pruner — only an
// internal consistency failure does.
func (p *Pruner) fail(err error) error {
	if _, ok := err.(*errs.InvariantViolation); ok {
		p.poisoned = err
	}
	return err
}

// assertConsistent re-checks the invariants every mutating call must
// leave standing: the trust vector stays aligned with the store, and
// capacity is never exceeded.
func (p *Pruner) assertConsistent() error {
	if p.store.N() != len(p.model.Trust()) {
		return p.fail(errs.NewInvariantViolation("trust-alignment", "trust vector length diverged from store size"))
	}
	if p.maxCuts != Unbounded && p.store.N() > p.maxCuts {
		return p.fail(errs.NewInvariantViolation("capacity", "store size exceeds maxCuts"))
	}
	return nil
}

// NCuts returns the number of cuts currently held.
func (p *Pruner) NCuts() int {
	return p.store.N()
}

// IsEmpty reports whether the pruner currently holds no cuts.
func (p *Pruner) IsEmpty() bool {
	return p.store.N() == 0
}

// GetSense returns the sense the pruner was constructed with.
func (p *Pruner) GetSense() cut.Sense {
	return p.sense
}

// Dim returns the cut dimension the pruner was constructed with.
func (p *Pruner) Dim() int {
	return p.dim
}

// MaxCuts returns the configured capacity, or Unbounded.
func (p *Pruner) MaxCuts() int {
	return p.maxCuts
}

// GetTrust returns the current trust vector, in store row order.
func (p *Pruner) GetTrust() []float64 {
	return p.model.Trust()
}

// Ids returns the current cut ids, in store row order.
func (p *Pruner) Ids() []int64 {
	return p.store.Ids
}

// Rows returns the current cut matrix and offsets. Callers must not
// mutate the returned slices.
func (p *Pruner) Rows() ([][]float64, []float64) {
	return p.store.A, p.store.B
}

// IDCursor returns the current monotonic id counter.
func (p *Pruner) IDCursor() int64 {
	return p.store.IDCursor()
}

// Variant identifies the trust model a pruner was built with, and its
// construction parameters — enough for a caller (internal/persistence) to
// build an equivalent empty pruner via the matching New*Pruner
// constructor.
func (p *Pruner) Variant() (name string, newCutTrust, myCutBonus, lambda float64) {
	switch m := p.model.(type) {
	case *trust.Average:
		return "average", m.NewCutTrust, m.MyCutBonus, 0
	case *trust.Decay:
		return "decay", m.NewCutTrust, m.MyCutBonus, m.Lambda
	case *trust.LevelOne:
		return "levelone", 0, 0, 0
	default:
		return "unknown", 0, 0, 0
	}
}

// Restore repopulates an empty pruner directly from previously captured
// rows, offsets, ids, an id counter, and (variant-permitting) a trust
// vector or a sequence of states to replay — bypassing admission logic
// entirely. Used by internal/persistence to rehydrate a snapshot. Restored
// rows carry no my-cut bonus.
func (p *Pruner) Restore(a [][]float64, b []float64, ids []int64, idCursor int64, trustValues []float64, states [][]float64) error {
	if p.poisoned != nil {
		return p.poisoned
	}
	if err := p.store.LoadRaw(a, b, ids, idCursor); err != nil {
		return err
	}
	p.model.OnAppend(make([]bool, len(a)))
	if r, ok := p.model.(trust.Restorable); ok && trustValues != nil {
		if err := r.RestoreTrust(trustValues); err != nil {
			return err
		}
	}
	if len(states) > 0 {
		if err := p.model.UpdateStats(trust.Signal{States: states}); err != nil {
			return err
		}
	}
	return p.assertConsistent()
}

// States returns the sampled state points a LevelOne pruner has
// accumulated, or nil for any other variant.
func (p *Pruner) States() [][]float64 {
	if l, ok := p.model.(*trust.LevelOne); ok {
		return l.States()
	}
	return nil
}

// UpdateStats folds one round of feedback into the trust model.
func (p *Pruner) UpdateStats(signal trust.Signal) error {
	if p.poisoned != nil {
		return p.poisoned
	}
	return p.model.UpdateStats(signal)
}

// KeepOnlyCuts reprojects the store to exactly the rows named by keep, in
// the order given (which may reorder cuts).
func (p *Pruner) KeepOnlyCuts(keep []int) error {
	if p.poisoned != nil {
		return p.poisoned
	}
	return p.keepOnly(keep)
}

// RemoveCuts drops the rows named by rows, preserving the relative order
// of the survivors.
func (p *Pruner) RemoveCuts(rows []int) error {
	if p.poisoned != nil {
		return p.poisoned
	}
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r < 0 || r >= p.store.N() {
			return errs.NewShapeError("pruner.RemoveCuts", "index out of range")
		}
		drop[r] = true
	}
	keep := make([]int, 0, p.store.N()-len(drop))
	for i := 0; i < p.store.N(); i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return p.keepOnly(keep)
}

func (p *Pruner) keepOnly(keep []int) error {
	if err := p.store.KeepOnly(keep); err != nil {
		return err
	}
	p.model.OnKeepOnly(keep)
	return p.assertConsistent()
}
