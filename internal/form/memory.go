package form

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Forms are kept serialized so callers
// never share state with the store.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	forms map[string]memoryEntry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose sessions live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, forms: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(_ context.Context, f *Form) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.forms[f.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(id)
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(*Form) error) (*Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.loadLocked(id)
	if err != nil {
		return nil, err
	}
	if err := fn(f); err != nil {
		return nil, err
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	s.forms[id] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return f, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, id)
	return nil
}

func (s *MemoryStore) loadLocked(id string) (*Form, error) {
	e, ok := s.forms[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.forms, id)
		return nil, ErrSessionNotFound
	}
	var f Form
	if err := json.Unmarshal(e.data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *MemoryStore) evictLocked() {
	now := s.now()
	for id, e := range s.forms {
		if !now.Before(e.expiresAt) {
			delete(s.forms, id)
		}
	}
}
