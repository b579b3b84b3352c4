package memory

import (
	"context"
	"sync"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

// OwnerStore is an in-memory durable-cart stand-in with the same row-level
// semantics as the Postgres store: one item per (user, game), inserts are
// idempotent, deletes of absent rows are no-ops.
type OwnerStore struct {
	mu    sync.RWMutex
	items map[string][]domain.Item
}

func NewOwnerStore() *OwnerStore {
	return &OwnerStore{
		items: make(map[string][]domain.Item),
	}
}

func (s *OwnerStore) ListByOwner(ctx context.Context, userID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.items[userID]
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *OwnerStore) Insert(ctx context.Context, userID string, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items[userID] {
		if it.ProductID == item.ProductID {
			return nil
		}
	}
	s.items[userID] = append(s.items[userID], item)
	return nil
}

func (s *OwnerStore) Delete(ctx context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[userID]
	for i, it := range items {
		if it.ProductID == productID {
			s.items[userID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *OwnerStore) Exists(ctx context.Context, userID, productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items[userID] {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *OwnerStore) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, userID)
	return nil
}
