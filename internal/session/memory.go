package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

// MemoryStore keeps sessions in process memory for the process lifetime.
// There is no TTL; maxSessions (0 = unbounded) caps how many conversations
// can exist at once, which is the store's only eviction policy.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*models.ChatSession
	maxSessions int
}

func NewMemoryStore(maxSessions int) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]*models.ChatSession),
		maxSessions: maxSessions,
	}
}

func (s *MemoryStore) Create(_ context.Context) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return nil, ErrStoreFull
	}

	created := &models.ChatSession{
		ID:    uuid.NewString(),
		State: models.StateAskName,
	}
	s.sessions[created.ID] = created.Clone()
	return created, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return stored.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return ErrNotFound
	}
	s.sessions[session.ID] = session.Clone()
	return nil
}
