package app

import (
	"context"
	"testing"

	"github.com/kvellan/gamestore/internal/catalog/domain"
)

type fakeRepo struct{}

func (fakeRepo) Create(ctx context.Context, g domain.Game) (domain.Game, error) { return g, nil }
func (fakeRepo) Get(ctx context.Context, id string) (domain.Game, error) {
	return domain.Game{}, nil
}
func (fakeRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Game, string, error) {
	return nil, "", nil
}

func TestCreateGameValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	valid := domain.Game{
		Title:     "Starfall",
		Developer: "Nightglass Studio",
		Price:     domain.Money{Currency: "USD", Amount: 1999},
	}

	t.Run("valid game -> created", func(t *testing.T) {
		g, err := svc.CreateGame(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Title != "Starfall" {
			t.Fatalf("got title %q", g.Title)
		}
	})

	t.Run("blank title -> invalid", func(t *testing.T) {
		g := valid
		g.Title = "   "
		if _, err := svc.CreateGame(context.Background(), g); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blank developer -> invalid", func(t *testing.T) {
		g := valid
		g.Developer = ""
		if _, err := svc.CreateGame(context.Background(), g); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("blank currency -> invalid", func(t *testing.T) {
		g := valid
		g.Price.Currency = "   "
		if _, err := svc.CreateGame(context.Background(), g); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("non-positive amount -> invalid", func(t *testing.T) {
		g := valid
		g.Price.Amount = 0
		if _, err := svc.CreateGame(context.Background(), g); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetGameValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	if _, err := svc.GetGame(context.Background(), "  "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
