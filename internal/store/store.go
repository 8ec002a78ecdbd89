// Package store owns the cut matrix, offsets, and ids that back a pruner
// (trust lives in trust.Model), and provides the append/replace/keep-only primitives the
// admission engine composes into addCuts. See spec §3, §4.1.
package store

import "github.com/danielpatrickdp/cutpruner/internal/errs"

// CutStore holds the dense cut matrix A (n rows by Dim columns), the offset
// vector b, and the monotonic id assigned to each row at creation or
// replacement. It does not own trust — trust.Model owns and mutates the
// trust vector in lockstep with every CutStore mutation, via the same
// slots/indices CutStore hands back.
type CutStore struct {
	Dim       int
	A         [][]float64
	B         []float64
	Ids       []int64
	idCursor  int64
}

// New creates an empty store for d-dimensional cuts.
func New(dim int) *CutStore {
	return &CutStore{Dim: dim}
}

// N returns the current number of cuts.
func (s *CutStore) N() int {
	return len(s.A)
}

// nextID draws one fresh id from the strictly increasing counter.
func (s *CutStore) nextID() int64 {
	s.idCursor++
	return s.idCursor
}

// Append extends the store by len(bNew) rows, assigning each a fresh id.
// It returns the slot indices the new rows landed at.
func (s *CutStore) Append(aNew [][]float64, bNew []float64) ([]int, error) {
	if len(aNew) != len(bNew) {
		return nil, errs.NewShapeError("store.Append", "len(A) != len(b)")
	}
	slots := make([]int, len(aNew))
	base := len(s.A)
	for i, row := range aNew {
		if len(row) != s.Dim {
			return nil, errs.NewShapeError("store.Append", "row column count != dim")
		}
		s.A = append(s.A, row)
		s.B = append(s.B, bNew[i])
		s.Ids = append(s.Ids, s.nextID())
		slots[i] = base + i
	}
	return slots, nil
}

// ReplaceAt overwrites the rows at the given indices with aNew/bNew and
// stamps each with a fresh id, so the replaced slot becomes the youngest
// cut in the store (spec §4.1, §9 "ids as age").
func (s *CutStore) ReplaceAt(rows []int, aNew [][]float64, bNew []float64) error {
	if len(rows) != len(aNew) || len(rows) != len(bNew) {
		return errs.NewShapeError("store.ReplaceAt", "rows/A/b length mismatch")
	}
	for i, r := range rows {
		if r < 0 || r >= len(s.A) {
			return errs.NewShapeError("store.ReplaceAt", "row index out of range")
		}
		if len(aNew[i]) != s.Dim {
			return errs.NewShapeError("store.ReplaceAt", "row column count != dim")
		}
		s.A[r] = aNew[i]
		s.B[r] = bNew[i]
		s.Ids[r] = s.nextID()
	}
	return nil
}

// KeepOnly projects A, B, and Ids to the sequence of indices in keep, in
// the order keep specifies (which may reorder cuts). Callers that also
// carry a trust.Model or a territory.Index must call the matching
// OnKeepOnly so every per-cut vector stays aligned with the new row order.
func (s *CutStore) KeepOnly(keep []int) error {
	newA := make([][]float64, len(keep))
	newB := make([]float64, len(keep))
	newIds := make([]int64, len(keep))
	for i, k := range keep {
		if k < 0 || k >= len(s.A) {
			return errs.NewShapeError("store.KeepOnly", "index out of range")
		}
		newA[i] = s.A[k]
		newB[i] = s.B[k]
		newIds[i] = s.Ids[k]
	}
	s.A, s.B, s.Ids = newA, newB, newIds
	return nil
}

// RemoveAt is KeepOnly(complement(rows)), preserving the relative order of
// the surviving rows.
func (s *CutStore) RemoveAt(rows []int) error {
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r < 0 || r >= len(s.A) {
			return errs.NewShapeError("store.RemoveAt", "index out of range")
		}
		drop[r] = true
	}
	keep := make([]int, 0, len(s.A)-len(drop))
	for i := range s.A {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return s.KeepOnly(keep)
}

// LoadRaw directly replaces A, B, and Ids and sets the id counter, bypassing
// every admission rule. Used only by internal/persistence to rehydrate a
// snapshot.
func (s *CutStore) LoadRaw(a [][]float64, b []float64, ids []int64, idCursor int64) error {
	if len(a) != len(b) || len(a) != len(ids) {
		return errs.NewShapeError("store.LoadRaw", "A/b/ids length mismatch")
	}
	for _, row := range a {
		if len(row) != s.Dim {
			return errs.NewShapeError("store.LoadRaw", "row column count != dim")
		}
	}
	s.A, s.B, s.Ids = a, b, ids
	s.idCursor = idCursor
	return nil
}

// IDCursor returns the current monotonic id counter (the last id issued).
func (s *CutStore) IDCursor() int64 {
	return s.idCursor
}

// RestoreIDCursor sets the id counter directly, so that ids issued
// afterwards continue strictly increasing from v. LoadRaw sets the counter
// the same way when a snapshot is rehydrated.
func (s *CutStore) RestoreIDCursor(v int64) {
	s.idCursor = v
}
