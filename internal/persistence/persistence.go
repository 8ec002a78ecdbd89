// Package persistence snapshots and restores a pruner's full state to
// SQLite. Persistence is an external collaborator the core is explicit
// about delegating (spec §1, §6): none of this is reachable from
// internal/pruner itself.
package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS pruner_snapshots (
	snapshot_id    TEXT PRIMARY KEY,
	dim            INTEGER NOT NULL,
	sense          TEXT NOT NULL,
	max_cuts       INTEGER NOT NULL,
	variant        TEXT NOT NULL,
	new_cut_trust  REAL NOT NULL,
	my_cut_bonus   REAL NOT NULL,
	lambda         REAL NOT NULL,
	id_cursor      INTEGER NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_cuts (
	snapshot_id    TEXT NOT NULL,
	slot           INTEGER NOT NULL,
	cut_id         INTEGER NOT NULL,
	a_vector       BLOB NOT NULL,
	b_offset       REAL NOT NULL,
	trust          REAL NOT NULL,
	PRIMARY KEY (snapshot_id, slot),
	FOREIGN KEY (snapshot_id) REFERENCES pruner_snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS snapshot_states (
	snapshot_id    TEXT NOT NULL,
	state_index    INTEGER NOT NULL,
	x_vector       BLOB NOT NULL,
	PRIMARY KEY (snapshot_id, state_index),
	FOREIGN KEY (snapshot_id) REFERENCES pruner_snapshots(snapshot_id)
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot_id   TEXT,
	cut_id        INTEGER NOT NULL,
	trigger_type  TEXT NOT NULL,
	decision      TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// Store manages pruner snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g.
// internal/provenance, which shares a connection with persistence).
func (s *Store) DB() *sql.DB {
	return s.db
}

// Meta is the snapshot's reconstruction recipe: Load uses it to rebuild an
// equivalent empty pruner via the matching New*Pruner constructor before
// calling Pruner.Restore.
type Meta struct {
	SnapshotID  string
	Dim         int
	Sense       string
	MaxCuts     int
	Variant     string
	NewCutTrust float64
	MyCutBonus  float64
	Lambda      float64
	IDCursor    int64
	CreatedAt   time.Time
}

func newSnapshotID() string {
	return uuid.New().String()
}
