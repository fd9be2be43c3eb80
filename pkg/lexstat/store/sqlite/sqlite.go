package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/pair"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// timeLayout is fixed-width so ORDER BY created_at sorts chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
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

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
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
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	corpus_path TEXT,
	window_radius INTEGER NOT NULL,
	unigram_n INTEGER NOT NULL,
	cooccur_n INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS unigrams (
	run_id TEXT NOT NULL,
	token TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, token),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS cooccurrences (
	run_id TEXT NOT NULL,
	token_a TEXT NOT NULL,
	token_b TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, token_a, token_b),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run and both tables in a single transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run, unigram map[string]int64, cooccur map[pair.Pair]int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT OR REPLACE INTO runs (id, corpus_path, window_radius, unigram_n, cooccur_n, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CorpusPath, run.Window, run.UnigramN, run.CooccurN,
		run.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	uniStmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO unigrams (run_id, token, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer uniStmt.Close()
	for tok, n := range unigram {
		if _, err := uniStmt.ExecContext(ctx, run.ID, tok, n); err != nil {
			return fmt.Errorf("insert unigram %q: %w", tok, err)
		}
	}

	cooStmt, err := tx.PrepareContext(ctx, `
INSERT OR REPLACE INTO cooccurrences (run_id, token_a, token_b, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cooStmt.Close()
	for p, n := range cooccur {
		if _, err := cooStmt.ExecContext(ctx, run.ID, p.A, p.B, n); err != nil {
			return fmt.Errorf("insert pair (%s, %s): %w", p.A, p.B, err)
		}
	}

	return tx.Commit()
}

// GetRun returns a run's metadata.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, corpus_path, window_radius, unigram_n, cooccur_n, created_at
FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// LatestRun returns the most recently created run.
func (s *sqliteStore) LatestRun(ctx context.Context) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, corpus_path, window_radius, unigram_n, cooccur_n, created_at
FROM runs ORDER BY created_at DESC LIMIT 1`)
	return scanRun(row)
}

func scanRun(row *sql.Row) (store.Run, error) {
	var run store.Run
	var createdAt string
	err := row.Scan(&run.ID, &run.CorpusPath, &run.Window, &run.UnigramN,
		&run.CooccurN, &createdAt)
	if err == sql.ErrNoRows {
		return store.Run{}, internalerr.ErrNotFound
	}
	if err != nil {
		return store.Run{}, err
	}
	run.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	return run, nil
}

// LoadUnigram reconstructs a run's unigram table.
func (s *sqliteStore) LoadUnigram(ctx context.Context, runID string) (map[string]int64, error) {
	if err := s.checkRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT token, count FROM unigrams WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(map[string]int64)
	for rows.Next() {
		var tok string
		var n int64
		if err := rows.Scan(&tok, &n); err != nil {
			return nil, err
		}
		table[tok] = n
	}
	return table, rows.Err()
}

// LoadCooccur reconstructs a run's co-occurrence table, re-canonicalizing
// each pair on load.
func (s *sqliteStore) LoadCooccur(ctx context.Context, runID string) (map[pair.Pair]int64, error) {
	if err := s.checkRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT token_a, token_b, count FROM cooccurrences WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make(map[pair.Pair]int64)
	for rows.Next() {
		var a, b string
		var n int64
		if err := rows.Scan(&a, &b, &n); err != nil {
			return nil, err
		}
		table[pair.Make(a, b)] = n
	}
	return table, rows.Err()
}

func (s *sqliteStore) checkRun(ctx context.Context, runID string) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	return err
}
