// Package pruner implements the bounded, self-scoring cut collection: the
// admission/eviction engine that decides which affine half-space
// constraints survive in a fixed-capacity store. See spec §1, §4.5.
package pruner

import (
	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/errs"
	"github.com/danielpatrickdp/cutpruner/internal/solver"
	"github.com/danielpatrickdp/cutpruner/internal/store"
	"github.com/danielpatrickdp/cutpruner/internal/trust"
)

// Unbounded disables the capacity limit — a pruner built with this never
// evicts, only rejects redundant candidates.
const Unbounded = -1

// Default trust parameters, matching spec §4.2's worked examples.
const (
	DefaultNewCutTrust = 0.5
	DefaultMyCutBonus  = 0.0
	DefaultLambda      = 0.9
)

// Pruner is the bounded, self-scoring cut collection. It owns a CutStore
// and a trust.Model and keeps them in lockstep across every mutation. A
// Pruner that raises an errs.InvariantViolation is poisoned: every later
// call returns that same error without attempting further mutation.
type Pruner struct {
	dim     int
	sense   cut.Sense
	maxCuts int
	tol     float64

	store  *store.CutStore
	model  trust.Model
	oracle solver.Oracle

	poisoned error
}

// SetOracle wires an optional exact-pruning collaborator into AddCuts's
// redundancy pass. A candidate that survives the tolerance-based filter is
// then checked against oracle before admission; a nil oracle (the
// default) skips this check entirely. Must be set before the first
// AddCuts call to take effect consistently.
func (p *Pruner) SetOracle(oracle solver.Oracle) {
	p.oracle = oracle
}

func validateCommon(dim, maxCuts int, sense cut.Sense) error {
	if dim <= 0 {
		return errs.NewConfigurationError("dim", "must be positive")
	}
	if maxCuts != Unbounded && maxCuts < 1 {
		return errs.NewConfigurationError("maxCuts", "must be -1 (unbounded) or >= 1")
	}
	switch sense {
	case cut.Min, cut.Max, cut.LE, cut.GE:
	default:
		return errs.NewConfigurationError("sense", "unknown sense")
	}
	return nil
}

func newPruner(dim int, sense cut.Sense, maxCuts int, tol float64, model trust.Model) *Pruner {
	if tol == 0 {
		tol = 1e-6
	}
	return &Pruner{
		dim:     dim,
		sense:   sense,
		maxCuts: maxCuts,
		tol:     tol,
		store:   store.New(dim),
		model:   model,
	}
}

// NewAveragePruner builds a pruner scored by usage-frequency trust
// (trust §4.2 "Average"). tol is the redundancy comparison tolerance; pass
// 0 to use redundancy.DefaultTolerance.
func NewAveragePruner(dim int, sense cut.Sense, maxCuts int, newCutTrust, myCutBonus, tol float64) (*Pruner, error) {
	if err := validateCommon(dim, maxCuts, sense); err != nil {
		return nil, err
	}
	m := trust.NewAverage()
	m.NewCutTrust = newCutTrust
	m.MyCutBonus = myCutBonus
	return newPruner(dim, sense, maxCuts, tol, m), nil
}

// NewDecayPruner builds a pruner scored by exponentially decaying usage
// (spec §4.2 "Decay"). lambda must lie in (0,1).
func NewDecayPruner(dim int, sense cut.Sense, maxCuts int, lambda, newCutTrust, myCutBonus, tol float64) (*Pruner, error) {
	if err := validateCommon(dim, maxCuts, sense); err != nil {
		return nil, err
	}
	if lambda <= 0 || lambda >= 1 {
		return nil, errs.NewConfigurationError("lambda", "must lie in (0,1)")
	}
	m := trust.NewDecay(lambda)
	m.NewCutTrust = newCutTrust
	m.MyCutBonus = myCutBonus
	return newPruner(dim, sense, maxCuts, tol, m), nil
}

// NewDefaultAveragePruner builds an Average pruner with spec-default trust
// parameters and redundancy tolerance.
func NewDefaultAveragePruner(dim int, sense cut.Sense, maxCuts int) (*Pruner, error) {
	return NewAveragePruner(dim, sense, maxCuts, DefaultNewCutTrust, DefaultMyCutBonus, 0)
}

// NewDefaultDecayPruner builds a Decay pruner with spec-default lambda,
// trust parameters, and redundancy tolerance.
func NewDefaultDecayPruner(dim int, sense cut.Sense, maxCuts int) (*Pruner, error) {
	return NewDecayPruner(dim, sense, maxCuts, DefaultLambda, DefaultNewCutTrust, DefaultMyCutBonus, 0)
}

// NewLevelOnePruner builds a pruner scored by sampled-state territory
// ownership (spec §4.2 "LevelOne", §4.6).
func NewLevelOnePruner(dim int, sense cut.Sense, maxCuts int, tol float64) (*Pruner, error) {
	if err := validateCommon(dim, maxCuts, sense); err != nil {
		return nil, err
	}
	p := newPruner(dim, sense, maxCuts, tol, nil)
	p.model = trust.NewLevelOne(p.store, sense)
	return p, nil
}
