package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/kvellan/gamestore/internal/cart/app"
	"github.com/kvellan/gamestore/internal/cart/domain"
)

const keyPrefix = "cart:session:"

type storedItem struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// SessionStore keeps the anonymous cart in Redis, one JSON value per
// session, expiring with the session TTL.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) ([]domain.Item, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("load session cart", err)
	}

	var stored []storedItem
	if err := json.Unmarshal([]byte(val), &stored); err != nil {
		return nil, storeErr("decode session cart", err)
	}

	items := make([]domain.Item, 0, len(stored))
	for _, it := range stored {
		items = append(items, domain.Item{ProductID: it.ProductID, AddedAt: it.AddedAt})
	}
	return items, nil
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, items []domain.Item) error {
	stored := make([]storedItem, 0, len(items))
	for _, it := range items {
		stored = append(stored, storedItem{ProductID: it.ProductID, AddedAt: it.AddedAt})
	}

	bin, err := json.Marshal(stored)
	if err != nil {
		return storeErr("encode session cart", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, bin, s.ttl).Err(); err != nil {
		return storeErr("save session cart", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return storeErr("delete session cart", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", app.ErrStoreUnavailable, op, err)
}
