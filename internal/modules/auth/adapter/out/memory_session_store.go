package out

import (
	"context"
	"sync"

	"projectbrain/internal/modules/auth/domain"
	authout "projectbrain/internal/modules/auth/port/out"
)

// MemorySessionStore keeps the session for the lifetime of the process.
type MemorySessionStore struct {
	mu      sync.RWMutex
	session domain.Session
}

func NewMemorySessionStore() authout.SessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load(_ context.Context) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}
