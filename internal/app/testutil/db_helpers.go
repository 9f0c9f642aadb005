package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"voxscribe/internal/app/model"
)

const createHistoryTable = `CREATE TABLE IF NOT EXISTS history_entries (
	id TEXT PRIMARY KEY,
	source_name TEXT NOT NULL,
	text TEXT NOT NULL,
	confidence REAL NOT NULL,
	duration INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	status TEXT NOT NULL DEFAULT 'completed'
)`

// SetupHistorySQLite creates a SQLite database file holding entries in the
// history_entries table. It returns the DSN; the file is removed with the
// test's temp dir.
func SetupHistorySQLite(t *testing.T, entries []model.HistoryEntry) string {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "history.db")
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("Failed to open SQLite test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(createHistoryTable); err != nil {
		t.Fatalf("Failed to create history table: %v", err)
	}

	stmt, err := db.Prepare(`INSERT INTO history_entries
		(id, source_name, text, confidence, duration, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("Failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, e.SourceName, e.Text, e.Confidence, e.Duration, e.CreatedAt, string(e.Status)); err != nil {
			t.Fatalf("Failed to insert entry %s: %v", e.ID, err)
		}
	}
	return dsn
}
