package trust

import (
	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/store"
	"github.com/danielpatrickdp/cutpruner/internal/territory"
)

// LevelOne scores each cut by the number of sampled states it is currently
// the pointwise-optimal supporter of. It carries no per-cut counters of its
// own: trust is read live off a territory.Index bound to the same
// CutStore, so the store must already reflect a mutation before the
// matching OnReplace/OnAppend/OnKeepOnly call reaches this model.
type LevelOne struct {
	idx *territory.Index
}

// NewLevelOne builds a LevelOne model bound to s, interpreting its cuts
// under sense.
func NewLevelOne(s *store.CutStore, sense cut.Sense) *LevelOne {
	return &LevelOne{idx: territory.New(s, sense)}
}

// InitialTrust is always 0: a cut is born owning no territory, and
// LevelOne defines no my-cut bonus.
func (l *LevelOne) InitialTrust(isMyCut bool) float64 {
	return 0
}

func (l *LevelOne) OnReplace(slots []int, isMyCut []bool) {
	l.idx.OnReplaceAt(slots)
}

func (l *LevelOne) OnAppend(isMyCut []bool) {
	l.idx.OnAppendN(len(isMyCut))
}

func (l *LevelOne) OnKeepOnly(keep []int) {
	l.idx.OnKeepOnly(keep)
}

// UpdateStats assigns every newly sampled state in signal.States to its
// argmax cut's territory.
func (l *LevelOne) UpdateStats(signal Signal) error {
	for _, x := range signal.States {
		l.idx.AddState(x)
	}
	return nil
}

// IsBetter uses the model-agnostic default: an incumbent is better than a
// hypothetical new cut only if it strictly out-owns that cut's initial
// (zero) trust. LevelOne defines no my-cut asymmetry, so both hypothetical
// flags compare against the same threshold.
func (l *LevelOne) IsBetter(i int, hypotheticalMyCut bool) bool {
	return l.Trust()[i] > l.InitialTrust(hypotheticalMyCut)
}

func (l *LevelOne) Trust() []float64 {
	return l.idx.Sizes()
}

// AddState samples a state point directly, outside of UpdateStats — used
// by callers (and tests) that want to seed territory ownership without
// going through the Signal indirection.
func (l *LevelOne) AddState(x []float64) int {
	return l.idx.AddState(x)
}

// NStates reports how many state points have been sampled so far.
func (l *LevelOne) NStates() int {
	return l.idx.NStates()
}

// States returns the sampled state points, in sampling order.
func (l *LevelOne) States() [][]float64 {
	return l.idx.States()
}
