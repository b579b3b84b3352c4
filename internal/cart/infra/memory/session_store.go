package memory

import (
	"context"
	"sync"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

// SessionStore is an in-memory session cart store for tests and local
// development. Item slices are copied on the way in and out so callers
// never share backing arrays with the store.
type SessionStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.Item
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		carts: make(map[string][]domain.Item),
	}
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}

	out := make([]domain.Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, items []domain.Item) error {
	stored := make([]domain.Item, len(items))
	copy(stored, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = stored
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
