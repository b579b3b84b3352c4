package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kvellan/gamestore/internal/checkout/domain"
)

type fakeCart struct {
	items   map[string][]string
	cleared []string
}

func (f *fakeCart) key(s Shopper) string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.SessionID
}

func (f *fakeCart) Items(ctx context.Context, s Shopper) ([]string, error) {
	return f.items[f.key(s)], nil
}

func (f *fakeCart) Clear(ctx context.Context, s Shopper) error {
	f.cleared = append(f.cleared, f.key(s))
	f.items[f.key(s)] = nil
	return nil
}

type fakeCatalog struct {
	products map[string]Product
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (Product, error) {
	p, ok := f.products[id]
	if !ok {
		return Product{}, fmt.Errorf("unknown game %s", id)
	}
	return p, nil
}

type fakeOrders struct {
	created []domain.Quote
	fail    error
}

func (f *fakeOrders) Create(ctx context.Context, userID string, q domain.Quote) (domain.Receipt, error) {
	if f.fail != nil {
		return domain.Receipt{}, f.fail
	}
	f.created = append(f.created, q)
	return domain.Receipt{OrderID: "ord-1", Status: "PENDING", Total: q.Total}, nil
}

func newFixture() (*Service, *fakeCart, *fakeCatalog, *fakeOrders) {
	cart := &fakeCart{items: make(map[string][]string)}
	catalog := &fakeCatalog{products: map[string]Product{
		"g1": {ID: "g1", Title: "Starfall", Currency: "USD", Amount: 1000},
		"g2": {ID: "g2", Title: "Mirehold", Currency: "USD", Amount: 2550},
	}}
	orders := &fakeOrders{}
	return NewService(cart, catalog, orders, 4), cart, catalog, orders
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("prices lines in cart order and sums the total", func(t *testing.T) {
		svc, cart, _, _ := newFixture()
		cart.items["u1"] = []string{"g1", "g2"}

		q, err := svc.Quote(ctx, Shopper{UserID: "u1"})
		if err != nil {
			t.Fatalf("quote failed: %v", err)
		}

		if len(q.Lines) != 2 || q.Lines[0].ProductID != "g1" || q.Lines[1].ProductID != "g2" {
			t.Fatalf("unexpected lines: %+v", q.Lines)
		}
		if q.Total.Amount != 3550 || q.Total.Currency != "USD" {
			t.Fatalf("expected 3550 USD, got %+v", q.Total)
		}
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		svc, _, _, _ := newFixture()
		if _, err := svc.Quote(ctx, Shopper{UserID: "u1"}); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("unknown game fails the quote", func(t *testing.T) {
		svc, cart, _, _ := newFixture()
		cart.items["u1"] = []string{"g1", "missing"}
		if _, err := svc.Quote(ctx, Shopper{UserID: "u1"}); err == nil {
			t.Fatal("expected error for unknown game")
		}
	})
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the order and clears the cart", func(t *testing.T) {
		svc, cart, _, orders := newFixture()
		cart.items["u1"] = []string{"g1", "g2"}

		receipt, err := svc.Purchase(ctx, Shopper{UserID: "u1"})
		if err != nil {
			t.Fatalf("purchase failed: %v", err)
		}

		if receipt.OrderID == "" || receipt.Total.Amount != 3550 {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
		if len(orders.created) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders.created))
		}
		if len(cart.cleared) != 1 || cart.cleared[0] != "u1" {
			t.Fatalf("cart not cleared for buyer: %v", cart.cleared)
		}
	})

	t.Run("anonymous shopper -> ErrAnonymousCheckout", func(t *testing.T) {
		svc, cart, _, _ := newFixture()
		cart.items["sess"] = []string{"g1"}

		_, err := svc.Purchase(ctx, Shopper{SessionID: "sess"})
		if !errors.Is(err, ErrAnonymousCheckout) {
			t.Fatalf("expected ErrAnonymousCheckout, got %v", err)
		}
	})

	t.Run("order failure leaves the cart intact", func(t *testing.T) {
		svc, cart, _, orders := newFixture()
		cart.items["u1"] = []string{"g1"}
		orders.fail = errors.New("db down")

		if _, err := svc.Purchase(ctx, Shopper{UserID: "u1"}); err == nil {
			t.Fatal("expected purchase to fail")
		}
		if len(cart.cleared) != 0 {
			t.Fatalf("cart cleared despite failed order: %v", cart.cleared)
		}
	})
}
