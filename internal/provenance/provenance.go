// Package provenance records why a cut was admitted, replaced, or
// rejected. It is an optional sink: internal/pruner never imports it, so
// the core admission engine stays free of I/O (spec §1, "library, not a
// process"). Callers that want an audit trail wrap their own AddCuts call
// and feed the outcome to a Sink.
package provenance

import (
	"database/sql"
	"fmt"
	"time"
)

// Entry is a single provenance record: one cut's fate in one AddCuts call.
type Entry struct {
	SnapshotID  string // empty if this decision predates any snapshot
	CutID       int64
	TriggerType string // "add_cuts" | "keep_only" | "remove_cuts"
	Decision    string // "admit" | "replace" | "reject" | "evict"
	Reason      string
	CreatedAt   time.Time
}

// Sink accepts provenance entries. NullSink discards them; DBSink persists
// them to the shared provenance_log table.
type Sink interface {
	Log(entry Entry) error
}

// NullSink is the default, no-op sink.
type NullSink struct{}

func (NullSink) Log(Entry) error { return nil }

// DBSink writes entries to provenance_log, the same table a
// persistence.Store migrates — pass its DB() to share the connection.
type DBSink struct {
	db *sql.DB
}

// NewDBSink wraps db as a Sink. db must already have provenance_log
// migrated (persistence.Open does this).
func NewDBSink(db *sql.DB) *DBSink {
	return &DBSink{db: db}
}

func (s *DBSink) Log(entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO provenance_log (snapshot_id, cut_id, trigger_type, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.SnapshotID), entry.CutID, entry.TriggerType, entry.Decision,
		nullIfEmpty(entry.Reason), entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
