package session

import (
    "context"
    "sync"

    "github.com/raelyaan/venue-booking/internal/model"
)

// MemoryStore is a process-local Store backed by a map.  It is used when no
// Redis server is reachable at startup and by tests.  Records never expire;
// a restart drops all sessions.
type MemoryStore struct {
    mu       sync.RWMutex
    sessions map[string]model.Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
    return &MemoryStore{sessions: make(map[string]model.Session)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    sess, ok := s.sessions[id]
    if !ok {
        return nil, ErrNotFound
    }
    // Return a copy so callers cannot mutate the stored record in place.
    out := sess
    return &out, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *model.Session) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.sessions[sess.ID] = *sess
    return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.sessions, id)
    return nil
}
