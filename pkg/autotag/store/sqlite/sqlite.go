package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and the row
// schema in place.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Wait instead of failing when another writer holds the lock
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS rows (
	id TEXT PRIMARY KEY,
	import_id TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL DEFAULT 'transaction',
	category TEXT NOT NULL DEFAULT '',
	sentiment TEXT NOT NULL DEFAULT '',
	fields TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rows_category ON rows(category);
CREATE INDEX IF NOT EXISTS idx_rows_kind ON rows(kind);
CREATE INDEX IF NOT EXISTS idx_rows_import ON rows(import_id);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutRow inserts or overwrites a row by ID. The creation time of an
// existing row survives the upsert.
func (s *sqliteStore) PutRow(ctx context.Context, r store.Row) error {
	if r.ID == "" {
		return fmt.Errorf("row has no id: %w", internalerr.ErrInvalidInput)
	}

	fieldsJSON, err := json.Marshal(r.Fields)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	category, sentiment := store.Labels(r.Fields)

	_, err = s.db.ExecContext(ctx, `
INSERT INTO rows (id, import_id, kind, category, sentiment, fields, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	import_id=excluded.import_id,
	kind=excluded.kind,
	category=excluded.category,
	sentiment=excluded.sentiment,
	fields=excluded.fields,
	updated_at=excluded.updated_at;
`,
		r.ID,
		r.ImportID,
		r.Kind,
		category,
		sentiment,
		string(fieldsJSON),
		r.CreatedAt.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
	)
	return err
}

// GetRow retrieves a row by ID
func (s *sqliteStore) GetRow(ctx context.Context, id string) (store.Row, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, import_id, kind, fields, created_at, updated_at
FROM rows WHERE id = ?;
`, id)

	r, err := scanRow(row)
	if err == sql.ErrNoRows {
		return store.Row{}, fmt.Errorf("row %q: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// ListRows retrieves matching rows, newest first
func (s *sqliteStore) ListRows(ctx context.Context, f store.Filter) ([]store.Row, error) {
	query := `SELECT id, import_id, kind, fields, created_at, updated_at FROM rows`

	var conds []string
	var args []interface{}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if f.Sentiment != "" {
		conds = append(conds, "sentiment = ?")
		args = append(args, f.Sentiment)
	}
	if f.Kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, f.Kind)
	}
	if f.ImportID != "" {
		conds = append(conds, "import_id = ?")
		args = append(args, f.ImportID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ReplaceRow updates an existing row in place, keeping its creation time
func (s *sqliteStore) ReplaceRow(ctx context.Context, r store.Row) error {
	fieldsJSON, err := json.Marshal(r.Fields)
	if err != nil {
		return err
	}
	category, sentiment := store.Labels(r.Fields)

	res, err := s.db.ExecContext(ctx, `
UPDATE rows
SET import_id=?, kind=?, category=?, sentiment=?, fields=?, updated_at=?
WHERE id=?;
`,
		r.ImportID,
		r.Kind,
		category,
		sentiment,
		string(fieldsJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
		r.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("row %q: %w", r.ID, internalerr.ErrNotFound)
	}
	return nil
}

// CountRows returns the total number of stored rows
func (s *sqliteStore) CountRows(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rows`).Scan(&n)
	return n, err
}

// CountByCategory returns row counts grouped by category
func (s *sqliteStore) CountByCategory(ctx context.Context) (map[string]int64, error) {
	return s.countBy(ctx, "category")
}

// CountBySentiment returns row counts grouped by sentiment label
func (s *sqliteStore) CountBySentiment(ctx context.Context) (map[string]int64, error) {
	return s.countBy(ctx, "sentiment")
}

func (s *sqliteStore) countBy(ctx context.Context, column string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) FROM rows WHERE %s != '' GROUP BY %s`, column, column, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(sc scanner) (store.Row, error) {
	var r store.Row
	var fieldsJSON, createdAt, updatedAt string

	if err := sc.Scan(&r.ID, &r.ImportID, &r.Kind, &fieldsJSON, &createdAt, &updatedAt); err != nil {
		return store.Row{}, err
	}
	if err := json.Unmarshal([]byte(fieldsJSON), &r.Fields); err != nil {
		return store.Row{}, err
	}

	var err error
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return store.Row{}, err
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return store.Row{}, err
	}
	return r, nil
}
