package app

import (
	"context"
	"errors"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

var (
	// ErrGameNotFound is returned by AddItem when the game is not in the catalog.
	ErrGameNotFound = errors.New("game not found")

	// ErrStoreUnavailable wraps read/write failures of a backing store.
	ErrStoreUnavailable = errors.New("cart store unavailable")

	// ErrNotAuthenticated is returned by operations that need a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoSession is returned when an anonymous operation has no session id.
	ErrNoSession = errors.New("no session")

	// ErrInvalidOwner is returned by a durable store when the user id it was
	// handed cannot identify an owner.
	ErrInvalidOwner = errors.New("invalid owner id")
)

// SessionStore holds the anonymous cart. Items live and die with the browser
// session; the whole list is loaded and saved as one value.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.Item, error)
	Save(ctx context.Context, sessionID string, items []domain.Item) error
	Delete(ctx context.Context, sessionID string) error
}

// OwnerStore holds the authenticated cart durably, one row per
// (user, game). Implementations must scope every statement by userID.
type OwnerStore interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.Item, error)
	Insert(ctx context.Context, userID string, item domain.Item) error
	Delete(ctx context.Context, userID, productID string) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	DeleteAll(ctx context.Context, userID string) error
}

// Game is the slice of catalog data the cart needs for a line.
type Game struct {
	ID       string
	Title    string
	Currency string
	Amount   int64
}

// CatalogReader looks up live game data; prices are read at materialization
// time, never cached in the cart.
type CatalogReader interface {
	GetGame(ctx context.Context, id string) (Game, error)
}
