package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore is a process-local Store. States are stored encoded so a
// caller never shares a pointer with another request.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	writes  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*domain.FormState, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && !s.now().Before(e.expires) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	var st domain.FormState
	if err := json.Unmarshal(e.data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, st *domain.FormState, ttl time.Duration) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries[id] = memoryEntry{data: data, expires: now.Add(ttl)}

	s.writes++
	if s.writes%256 == 0 {
		s.sweepLocked(now)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
}
