// Package trust implements the three interchangeable trust-scoring variants
// a pruner can be built with: Average, Decay, and LevelOne. See spec §4.2.
package trust

// Signal carries the per-round feedback a pruner forwards to UpdateStats.
// SigmaRho is read by Average and Decay: one dual multiplier per current
// cut, aligned to store row order. States is read by LevelOne: state points
// newly visited this round, to be assigned to their argmax cut's territory.
type Signal struct {
	SigmaRho []float64
	States   [][]float64
}

// Model is the common contract every trust variant satisfies. A Pruner
// holds exactly one Model and keeps it in lockstep with every CutStore
// mutation: OnReplace/OnAppend/OnKeepOnly are called with the same slots or
// ordering CutStore was just given, and always after the store mutation has
// already landed.
type Model interface {
	// InitialTrust is the trust a cut is born with, before any feedback.
	InitialTrust(isMyCut bool) float64

	// OnReplace resets trust at slots to InitialTrust(isMyCut[i]).
	OnReplace(slots []int, isMyCut []bool)

	// OnAppend extends the trust vector with InitialTrust(isMyCut[i]) for
	// each newly appended cut.
	OnAppend(isMyCut []bool)

	// OnKeepOnly reprojects the trust vector to the given index sequence,
	// the same way CutStore.KeepOnly reprojects A/B/Ids.
	OnKeepOnly(keep []int)

	// UpdateStats folds one round of feedback into the trust vector.
	UpdateStats(signal Signal) error

	// IsBetter reports whether cut i is at least as good as a hypothetical
	// new cut with the given isMyCut flag — the question the eviction
	// retraction loop asks of each candidate victim (spec §4.5).
	IsBetter(i int, hypotheticalMyCut bool) bool

	// Trust returns the current trust vector, in store row order.
	Trust() []float64
}

// Restorable is satisfied by variants whose trust vector can be set
// directly from a previously captured value, rather than rebuilt from
// observation history. Average and Decay implement it; LevelOne does not,
// since its trust is derived from territory ownership and must instead be
// rebuilt by replaying sampled states through UpdateStats.
type Restorable interface {
	RestoreTrust(values []float64) error
}
