package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

// Service is the single place that knows about the two backing stores.
// Callers hand in an Identity and never branch on authentication state
// themselves; store selection happens in resolveStore and nowhere else.
type Service struct {
	sessions SessionStore
	owners   OwnerStore
	catalog  CatalogReader
	log      *slog.Logger
}

func NewService(sessions SessionStore, owners OwnerStore, catalog CatalogReader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		sessions: sessions,
		owners:   owners,
		catalog:  catalog,
		log:      log,
	}
}

// GetCart materializes the current cart: items in insertion order joined
// with live catalog data, total at current prices. Read-only.
func (s *Service) GetCart(ctx context.Context, id domain.Identity) (domain.Cart, error) {
	store, err := s.resolveStore(id)
	if err != nil {
		return domain.Cart{}, err
	}

	items, err := store.list(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	return s.materialize(ctx, id.OwnerKey(), items)
}

// AddItem puts a game in the cart. Adding a game that is already present is
// a no-op; afterwards exactly one item exists for (owner, game).
func (s *Service) AddItem(ctx context.Context, id domain.Identity, productID string) (domain.Cart, error) {
	if _, err := s.catalog.GetGame(ctx, productID); err != nil {
		return domain.Cart{}, err
	}

	store, err := s.resolveStore(id)
	if err != nil {
		return domain.Cart{}, err
	}

	present, err := store.exists(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	if !present {
		item := domain.Item{ProductID: productID, AddedAt: time.Now().UTC()}
		if err := store.insert(ctx, item); err != nil {
			return domain.Cart{}, err
		}
	}

	return s.GetCart(ctx, id)
}

// RemoveItem deletes the game from the cart; removing an absent game is a
// no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, id domain.Identity, productID string) (domain.Cart, error) {
	store, err := s.resolveStore(id)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := store.remove(ctx, productID); err != nil {
		return domain.Cart{}, err
	}

	return s.GetCart(ctx, id)
}

// Contains reports whether the game is currently in the cart.
func (s *Service) Contains(ctx context.Context, id domain.Identity, productID string) (bool, error) {
	store, err := s.resolveStore(id)
	if err != nil {
		return false, err
	}
	return store.exists(ctx, productID)
}

// Merge folds the anonymous session cart into the user's durable cart.
// Logging in never merges implicitly; the edge invokes this explicitly once
// both ids are known. Items already in the user cart stay as they are, the
// session cart is cleared afterwards, and the merged cart is returned.
func (s *Service) Merge(ctx context.Context, id domain.Identity) (domain.Cart, error) {
	if !id.Authenticated() {
		return domain.Cart{}, ErrNotAuthenticated
	}

	userIdentity := domain.Identity{UserID: id.UserID}

	if id.SessionID == "" {
		return s.GetCart(ctx, userIdentity)
	}

	items, err := s.sessions.Load(ctx, id.SessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	for _, item := range items {
		present, err := s.owners.Exists(ctx, id.UserID, item.ProductID)
		if err != nil {
			return domain.Cart{}, err
		}
		if present {
			continue
		}
		if err := s.owners.Insert(ctx, id.UserID, item); err != nil {
			return domain.Cart{}, err
		}
	}

	if err := s.sessions.Delete(ctx, id.SessionID); err != nil {
		return domain.Cart{}, err
	}

	return s.GetCart(ctx, userIdentity)
}

// Clear empties the resolved cart.
func (s *Service) Clear(ctx context.Context, id domain.Identity) error {
	store, err := s.resolveStore(id)
	if err != nil {
		return err
	}
	return store.clear(ctx)
}

// materialize joins cart items with live catalog data. The catalog prices
// every game in the one store currency, so the total carries the first
// line's currency; an empty cart has no currency at all.
func (s *Service) materialize(ctx context.Context, ownerKey string, items []domain.Item) (domain.Cart, error) {
	lines := make([]domain.Line, 0, len(items))
	var total int64
	var currency string

	for _, item := range items {
		g, err := s.catalog.GetGame(ctx, item.ProductID)
		if errors.Is(err, ErrGameNotFound) {
			// The game was removed from the catalog after it was added:
			// drop the orphaned item so the total stays correct.
			s.log.DebugContext(ctx, "dropping cart item for missing game",
				slog.String("owner", ownerKey),
				slog.String("game_id", item.ProductID),
			)
			continue
		}
		if err != nil {
			return domain.Cart{}, err
		}

		lines = append(lines, domain.Line{
			ProductID: g.ID,
			Title:     g.Title,
			UnitPrice: domain.Money{Currency: g.Currency, Amount: g.Amount},
		})

		total += g.Amount
		if currency == "" {
			currency = g.Currency
		}
	}

	return domain.Cart{
		OwnerKey: ownerKey,
		Lines:    lines,
		Total:    domain.Money{Currency: currency, Amount: total},
	}, nil
}

// itemStore is the unified view over the two backing stores. Each method
// touches at most one item, so a cancelled call leaves no multi-step
// invariant half-applied.
type itemStore interface {
	list(ctx context.Context) ([]domain.Item, error)
	insert(ctx context.Context, item domain.Item) error
	remove(ctx context.Context, productID string) error
	exists(ctx context.Context, productID string) (bool, error)
	clear(ctx context.Context) error
}

func (s *Service) resolveStore(id domain.Identity) (itemStore, error) {
	if id.Authenticated() {
		return ownerItems{store: s.owners, userID: id.UserID}, nil
	}
	if id.SessionID == "" {
		return nil, ErrNoSession
	}
	return sessionItems{store: s.sessions, sessionID: id.SessionID}, nil
}

type ownerItems struct {
	store  OwnerStore
	userID string
}

func (o ownerItems) list(ctx context.Context) ([]domain.Item, error) {
	return o.store.ListByOwner(ctx, o.userID)
}

func (o ownerItems) insert(ctx context.Context, item domain.Item) error {
	return o.store.Insert(ctx, o.userID, item)
}

func (o ownerItems) remove(ctx context.Context, productID string) error {
	return o.store.Delete(ctx, o.userID, productID)
}

func (o ownerItems) exists(ctx context.Context, productID string) (bool, error) {
	return o.store.Exists(ctx, o.userID, productID)
}

func (o ownerItems) clear(ctx context.Context) error {
	return o.store.DeleteAll(ctx, o.userID)
}

type sessionItems struct {
	store     SessionStore
	sessionID string
}

func (s sessionItems) list(ctx context.Context) ([]domain.Item, error) {
	return s.store.Load(ctx, s.sessionID)
}

func (s sessionItems) insert(ctx context.Context, item domain.Item) error {
	items, err := s.store.Load(ctx, s.sessionID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ProductID == item.ProductID {
			return nil
		}
	}
	return s.store.Save(ctx, s.sessionID, append(items, item))
}

func (s sessionItems) remove(ctx context.Context, productID string) error {
	items, err := s.store.Load(ctx, s.sessionID)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.store.Save(ctx, s.sessionID, kept)
}

func (s sessionItems) exists(ctx context.Context, productID string) (bool, error) {
	items, err := s.store.Load(ctx, s.sessionID)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s sessionItems) clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.sessionID)
}
