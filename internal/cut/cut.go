// Package cut defines the affine half-space constraint that a pruner
// admits, evicts, or rejects, and the sense under which a batch of cuts is
// interpreted.
package cut

import (
	"fmt"
	"strings"
)

// Sense fixes how every cut in a pruner is interpreted: as one piece of a
// piecewise-linear function (Min/Max) or as one face of a polyhedron (LE/GE).
type Sense int

const (
	// Min describes a concave function min_i <a_i,x> + b_i.
	Min Sense = iota
	// Max describes a convex function max_i <a_i,x> + b_i.
	Max
	// LE describes a polyhedron face <a_i,x> <= b_i.
	LE
	// GE describes a polyhedron face <a_i,x> >= b_i.
	GE
)

func (s Sense) String() string {
	switch s {
	case Min:
		return "min"
	case Max:
		return "max"
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// IsFunction reports whether the sense defines a piecewise-linear function
// (true) rather than a polyhedron (false). See the sense table in spec §3.
func (s Sense) IsFunction() bool {
	return s == Min || s == Max
}

// IsLowerBound reports whether the sense is the ">="/max half of its family.
func (s Sense) IsLowerBound() bool {
	return s == Max || s == GE
}

// ParseSense maps a case-insensitive textual token to a Sense. It is the
// "parsing the optimization sense" collaborator named as out of core scope
// in spec §1; callers that need to accept solver output strings should use
// internal/solver.Oracle.ParseSense, which defers to this for the common
// tokens and lets callers extend it for solver-specific spellings.
func ParseSense(token string) (Sense, error) {
	switch strings.ToLower(token) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "<=", "le":
		return LE, nil
	case ">=", "ge":
		return GE, nil
	default:
		return 0, fmt.Errorf("cut: unknown sense token %q", token)
	}
}
