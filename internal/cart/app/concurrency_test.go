package app_test

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/kvellan/gamestore/internal/cart/domain"
)

func TestConcurrentAddConvergesToOneItem(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newFixture()

	id := user()
	gameID := catalog.add("Starfall", 1999)

	const N = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(ctx, id, gameID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	cart, err := svc.GetCart(ctx, id)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected exactly 1 line, got %d", len(cart.Lines))
	}
	if cart.Total.Amount != 1999 {
		t.Fatalf("expected total 1999, got %d", cart.Total.Amount)
	}
}

func TestConcurrentRemoveIsSafe(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newFixture()

	id := user()
	gameID := catalog.add("Starfall", 1999)

	if _, err := svc.AddItem(ctx, id, gameID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	const N = 50
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.RemoveItem(ctx, id, gameID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent RemoveItem failed: %v", err)
	}

	cart, err := svc.GetCart(ctx, domain.Identity{UserID: id.UserID})
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
}
