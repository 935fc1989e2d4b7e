package store

import (
	"context"
	"fmt"
	"time"
)

// HistoryParams holds parameters for listing revisions of a key.
type HistoryParams struct {
	Key   string
	Limit int
}

// Revision is one past write of a key.
type Revision struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Version   int       `json:"version"`
	Value     string    `json:"value"`
	WrittenAt time.Time `json:"written_at"`
}

// History returns the most recent revisions of a key, newest first.
func (s *SQLiteKV) History(ctx context.Context, p HistoryParams) ([]Revision, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, key, version, value, written_at FROM kv_revisions
		 WHERE key = ? ORDER BY version DESC LIMIT ?`, p.Key, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var r Revision
		var writtenAt string
		if err := rows.Scan(&r.ID, &r.Key, &r.Version, &r.Value, &writtenAt); err != nil {
			return nil, err
		}
		r.WrittenAt, _ = time.Parse(time.RFC3339, writtenAt)
		revs = append(revs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(revs) == 0 {
		return nil, fmt.Errorf("no revisions for key %q", p.Key)
	}
	return revs, nil
}
