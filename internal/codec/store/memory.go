package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
)

// InMemoryHistory keeps the most recent generation records in a bounded
// ring. Once full, the oldest record is dropped for each new one.
type InMemoryHistory struct {
	mu      sync.RWMutex
	records []entity.GenRecord
	start   int
	count   int
}

// NewInMemoryHistory creates a history holding at most size records.
func NewInMemoryHistory(size int) *InMemoryHistory {
	if size < 1 {
		size = 1
	}

	return &InMemoryHistory{
		records: make([]entity.GenRecord, size),
	}
}

// Append records one generated identifier.
func (s *InMemoryHistory) Append(ctx context.Context, rec entity.GenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (s.start + s.count) % len(s.records)
	s.records[idx] = rec

	if s.count < len(s.records) {
		s.count++
	} else {
		s.start = (s.start + 1) % len(s.records)
	}

	return nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns everything retained.
func (s *InMemoryHistory) List(ctx context.Context, limit int) ([]entity.GenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.count
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]entity.GenRecord, 0, n)
	for i := 0; i < n; i++ {
		idx := (s.start + s.count - 1 - i) % len(s.records)
		out = append(out, s.records[idx])
	}

	return out, nil
}
