package config

import (
	"fmt"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/pruner"
	"github.com/danielpatrickdp/cutpruner/internal/solver"
)

// BuildPruner constructs a pruner from c's Pruner section, wiring in the
// Solver section's oracle. Variant construction (average/decay/levelone)
// mirrors pruner.Variant's reverse: the name this produced, fed back
// through one of these constructors, round-trips through
// internal/persistence.
func (c *Config) BuildPruner() (*pruner.Pruner, error) {
	sense, err := cut.ParseSense(c.Pruner.Sense)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var p *pruner.Pruner
	switch c.Pruner.Variant {
	case "average":
		p, err = pruner.NewAveragePruner(c.Pruner.Dim, sense, c.Pruner.MaxCuts, c.Pruner.NewCutTrust, c.Pruner.MyCutBonus, c.Pruner.Tolerance)
	case "decay":
		p, err = pruner.NewDecayPruner(c.Pruner.Dim, sense, c.Pruner.MaxCuts, c.Pruner.Lambda, c.Pruner.NewCutTrust, c.Pruner.MyCutBonus, c.Pruner.Tolerance)
	case "levelone":
		p, err = pruner.NewLevelOnePruner(c.Pruner.Dim, sense, c.Pruner.MaxCuts, c.Pruner.Tolerance)
	default:
		return nil, fmt.Errorf("config: unknown pruner variant %q", c.Pruner.Variant)
	}
	if err != nil {
		return nil, fmt.Errorf("config: build pruner: %w", err)
	}

	switch c.Solver.Mode {
	case "heuristic":
		p.SetOracle(solver.NewHeuristicOracle(c.Solver.AngleTol, c.Solver.OffsetTol))
	case "null", "":
		// no oracle: tolerance-based redundancy.Filter alone.
	default:
		return nil, fmt.Errorf("config: unknown solver mode %q", c.Solver.Mode)
	}

	return p, nil
}
