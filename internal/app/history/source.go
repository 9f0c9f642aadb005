package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"voxscribe/internal/app/model"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Source supplies the entries a Store is built from.
type Source interface {
	Load(ctx context.Context) ([]model.HistoryEntry, error)
}

// StaticSource serves a fixed list.
type StaticSource []model.HistoryEntry

func (s StaticSource) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	return append([]model.HistoryEntry(nil), s...), nil
}

// seedFile is the on-disk layout of a YAML seed file
type seedFile struct {
	Entries []model.HistoryEntry `yaml:"entries"`
}

// FileSource reads entries from a YAML seed file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	data, err := os.ReadFile(os.ExpandEnv(s.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", s.Path, err)
	}

	if err := ValidateEntries(seed.Entries); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", s.Path, err)
	}
	return seed.Entries, nil
}

var entryValidator = validator.New()

// ValidateEntries defaults missing statuses to completed and checks field
// ranges and ID uniqueness.
func ValidateEntries(entries []model.HistoryEntry) error {
	seen := make(map[string]int, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Status == "" {
			e.Status = model.StatusCompleted
		}
		if err := entryValidator.Struct(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if !e.Status.Valid() {
			return fmt.Errorf("entry %d: unknown status %q", i, e.Status)
		}
		if prev, dup := seen[e.ID]; dup {
			return fmt.Errorf("entry %d: id %q already used by entry %d", i, e.ID, prev)
		}
		seen[e.ID] = i
	}
	return nil
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads entries from a table once, at load time. It never writes.
type SQLSource struct {
	DB    *sql.DB
	Table string
}

// OpenSQLSource opens a sqlite3 or postgres database for reading history.
func OpenSQLSource(driver, dsn, table string) (*SQLSource, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported history driver: %s", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}
	return &SQLSource{DB: db, Table: table}, nil
}

func (s *SQLSource) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	table := s.Table
	if table == "" {
		table = model.HistoryEntry{}.TableName()
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}

	query := fmt.Sprintf(`SELECT id, source_name, text, confidence, duration, created_at, status
		FROM %s ORDER BY created_at DESC, id`, table)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		var status string
		if err := rows.Scan(&e.ID, &e.SourceName, &e.Text, &e.Confidence, &e.Duration, &e.CreatedAt, &status); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Status = model.EntryStatus(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}

	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close closes the underlying database.
func (s *SQLSource) Close() error {
	return s.DB.Close()
}
