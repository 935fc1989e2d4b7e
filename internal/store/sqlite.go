package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// keepRevisions bounds the per-key revision history.
const keepRevisions = 20

// SQLiteKV implements KV on a local SQLite file.
type SQLiteKV struct {
	db *sql.DB

	mu      sync.Mutex
	entropy io.Reader
}

// NewSQLiteKV opens or creates a SQLite database at the given path.
func NewSQLiteKV(dbPath string) (*SQLiteKV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteKV{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteKV) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteKV) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		version    INTEGER NOT NULL DEFAULT 1,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS kv_revisions (
		id         TEXT PRIMARY KEY,
		key        TEXT NOT NULL,
		version    INTEGER NOT NULL,
		value      TEXT NOT NULL,
		written_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_kv_revisions_key ON kv_revisions(key, version DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany writes every pair in a single transaction.
func (s *SQLiteKV) SetMany(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, key := range keys {
		if err := s.put(ctx, tx, now, key, values[key]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteKV) put(ctx context.Context, tx *sql.Tx, now time.Time, key, value string) error {
	var prevVersion int
	err := tx.QueryRowContext(ctx, `SELECT version FROM kv_entries WHERE key = ?`, key).Scan(&prevVersion)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read version %s: %w", key, err)
	}
	version := prevVersion + 1
	ts := now.Format(time.RFC3339)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, version, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, version = excluded.version,
		   updated_at = excluded.updated_at`,
		key, value, version, ts)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO kv_revisions (id, key, version, value, written_at) VALUES (?, ?, ?, ?, ?)`,
		s.newID(now), key, version, value, ts)
	if err != nil {
		return fmt.Errorf("record revision %s: %w", key, err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM kv_revisions WHERE key = ? AND version <= ?`, key, version-keepRevisions)
	if err != nil {
		return fmt.Errorf("prune revisions %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
