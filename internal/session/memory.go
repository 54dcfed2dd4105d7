package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

type memorySession struct {
	identity  models.Identity
	expiresAt time.Time
}

// MemoryStore is the in-process fallback used when no Redis is configured,
// and in tests. Reads are concurrent; expired entries are dropped lazily.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, identity *models.Identity) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		identity:  *identity,
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}
	if s.now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrNoSession
	}

	identity := sess.identity
	return &identity, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
