package persistence

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/danielpatrickdp/cutpruner/internal/cut"
	"github.com/danielpatrickdp/cutpruner/internal/pruner"
)

// #region vector-encoding
func encodeVector(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}
// #endregion vector-encoding

// Save writes p's full state as a new snapshot and returns its id.
func (s *Store) Save(p *pruner.Pruner) (string, error) {
	id := newSnapshotID()
	now := time.Now().UTC()
	variant, newCutTrust, myCutBonus, lambda := p.Variant()
	a, b := p.Rows()
	ids := p.Ids()
	trustVals := p.GetTrust()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO pruner_snapshots
			(snapshot_id, dim, sense, max_cuts, variant, new_cut_trust, my_cut_bonus, lambda, id_cursor, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Dim(), p.GetSense().String(), p.MaxCuts(), variant, newCutTrust, myCutBonus, lambda,
		p.IDCursor(), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	for slot := range a {
		_, err = tx.Exec(
			`INSERT INTO snapshot_cuts (snapshot_id, slot, cut_id, a_vector, b_offset, trust)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, slot, ids[slot], encodeVector(a[slot]), b[slot], trustVals[slot],
		)
		if err != nil {
			return "", fmt.Errorf("insert cut row %d: %w", slot, err)
		}
	}

	for i, x := range p.States() {
		_, err = tx.Exec(
			`INSERT INTO snapshot_states (snapshot_id, state_index, x_vector) VALUES (?, ?, ?)`,
			id, i, encodeVector(x),
		)
		if err != nil {
			return "", fmt.Errorf("insert state row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// ErrSnapshotNotFound is returned by Load when snapshotID names no row.
var ErrSnapshotNotFound = errors.New("persistence: snapshot not found")

// Load reconstructs a pruner from a previously saved snapshot.
func (s *Store) Load(snapshotID string) (*pruner.Pruner, error) {
	var m Meta
	var senseStr, createdStr string
	err := s.db.QueryRow(
		`SELECT dim, sense, max_cuts, variant, new_cut_trust, my_cut_bonus, lambda, id_cursor, created_at
		 FROM pruner_snapshots WHERE snapshot_id = ?`,
		snapshotID,
	).Scan(&m.Dim, &senseStr, &m.MaxCuts, &m.Variant, &m.NewCutTrust, &m.MyCutBonus, &m.Lambda, &m.IDCursor, &createdStr)
	if err == sql.ErrNoRows {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	m.SnapshotID = snapshotID
	m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	sense, err := cut.ParseSense(senseStr)
	if err != nil {
		return nil, fmt.Errorf("parse sense: %w", err)
	}

	p, err := newPrunerForVariant(m, sense)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT slot, cut_id, a_vector, b_offset, trust FROM snapshot_cuts
		 WHERE snapshot_id = ? ORDER BY slot ASC`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("query cuts: %w", err)
	}
	defer rows.Close()

	var a [][]float64
	var bOff []float64
	var ids []int64
	var trustVals []float64
	for rows.Next() {
		var slot int
		var id int64
		var vecBlob []byte
		var offset, tr float64
		if err := rows.Scan(&slot, &id, &vecBlob, &offset, &tr); err != nil {
			return nil, fmt.Errorf("scan cut row: %w", err)
		}
		a = append(a, decodeVector(vecBlob))
		bOff = append(bOff, offset)
		ids = append(ids, id)
		trustVals = append(trustVals, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cuts: %w", err)
	}

	stateRows, err := s.db.Query(
		`SELECT x_vector FROM snapshot_states WHERE snapshot_id = ? ORDER BY state_index ASC`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("query states: %w", err)
	}
	defer stateRows.Close()

	var states [][]float64
	for stateRows.Next() {
		var vecBlob []byte
		if err := stateRows.Scan(&vecBlob); err != nil {
			return nil, fmt.Errorf("scan state row: %w", err)
		}
		states = append(states, decodeVector(vecBlob))
	}
	if err := stateRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate states: %w", err)
	}

	// LevelOne's trust is derived from territory, not stored directly;
	// replaying states through Restore rebuilds it instead of RestoreTrust.
	var restoreTrust []float64
	if m.Variant != "levelone" {
		restoreTrust = trustVals
	}
	if err := p.Restore(a, bOff, ids, m.IDCursor, restoreTrust, states); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	return p, nil
}

func newPrunerForVariant(m Meta, sense cut.Sense) (*pruner.Pruner, error) {
	switch m.Variant {
	case "average":
		return pruner.NewAveragePruner(m.Dim, sense, m.MaxCuts, m.NewCutTrust, m.MyCutBonus, 0)
	case "decay":
		return pruner.NewDecayPruner(m.Dim, sense, m.MaxCuts, m.Lambda, m.NewCutTrust, m.MyCutBonus, 0)
	case "levelone":
		return pruner.NewLevelOnePruner(m.Dim, sense, m.MaxCuts, 0)
	default:
		return nil, fmt.Errorf("persistence: unknown variant %q", m.Variant)
	}
}
