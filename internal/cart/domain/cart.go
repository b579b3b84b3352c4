package domain

import "time"

// Identity is the caller's authentication state as supplied by the edge.
// UserID is set once the shopper has logged in; SessionID identifies an
// anonymous browser session. Exactly one of them scopes the cart.
type Identity struct {
	UserID    string
	SessionID string
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// OwnerKey is the key every cart item is scoped by: the user id when
// authenticated, the session id otherwise.
func (i Identity) OwnerKey() string {
	if i.Authenticated() {
		return i.UserID
	}
	return i.SessionID
}

type Money struct {
	Currency string
	Amount   int64
}

// Item is one game held in a cart. A game appears at most once per owner;
// re-adding it is a no-op rather than an increment.
type Item struct {
	ProductID string
	AddedAt   time.Time
}

// Line is an Item joined with live catalog data.
type Line struct {
	ProductID string
	Title     string
	UnitPrice Money
}

// Cart is the materialized view built on every read: the owner's lines in
// insertion order plus the total at current catalog prices. It is never
// stored as its own entity.
type Cart struct {
	OwnerKey string
	Lines    []Line
	Total    Money
}

func (c Cart) Contains(productID string) bool {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}
