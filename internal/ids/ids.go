// Package ids hands out entity identifiers.
package ids

import (
	"math"
	"sync"
	"time"
)

// MaxID is the largest id the tracker accepts: the biggest integer a JSON
// number holds exactly. Stored or imported ids above it are rejected.
const MaxID int64 = 1<<53 - 1

// Sequence produces strictly increasing int64 ids. Ids track wall-clock
// milliseconds so they stay readable as creation times, but two calls in the
// same millisecond (or after the clock steps back) still get distinct,
// ordered values.
type Sequence struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewSequence returns a Sequence driven by now. A nil now uses time.Now.
func NewSequence(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last && s.last < math.MaxInt64 {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe records an id that already exists so later ids sort after it. Ids
// above MaxID are ignored.
func (s *Sequence) Observe(id int64) {
	if id > MaxID {
		return
	}
	s.mu.Lock()
	if id > s.last {
		s.last = id
	}
	s.mu.Unlock()
}
