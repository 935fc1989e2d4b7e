package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string     `json:"db_path"`
	DBSizeBytes    int64      `json:"db_size_bytes"`
	TotalRevisions int        `json:"total_revisions"`
	Keys           []KeyStats `json:"keys"`
}

// KeyStats describes one persisted key.
type KeyStats struct {
	Key       string `json:"key"`
	Version   int    `json:"version"`
	Bytes     int    `json:"bytes"`
	UpdatedAt string `json:"updated_at"`
}

// Stats returns database statistics.
func (s *SQLiteKV) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_revisions`).Scan(&st.TotalRevisions)

	rows, err := s.db.QueryContext(ctx, `
		SELECT key, version, LENGTH(CAST(value AS BLOB)), updated_at
		FROM kv_entries ORDER BY key`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var k KeyStats
		rows.Scan(&k.Key, &k.Version, &k.Bytes, &k.UpdatedAt)
		st.Keys = append(st.Keys, k)
	}

	return st, rows.Err()
}
