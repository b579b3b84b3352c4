package app

import (
	"context"
	"errors"
	"testing"

	"github.com/kvellan/gamestore/internal/order/domain"
)

type fakeRepo struct {
	last domain.Order
}

func (f *fakeRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	f.last = order
	order.ID = "ord-1"
	return order, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return nil, nil
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	valid := domain.CreateOrderRequest{
		UserID:   "u1",
		Currency: "USD",
		Items: []domain.OrderItemRequest{
			{ProductID: "g1", Title: "Starfall", UnitAmount: 1000},
			{ProductID: "g2", Title: "Mirehold", UnitAmount: 2550},
		},
	}

	t.Run("sums the total and marks the order pending", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		order, err := svc.CreateOrder(ctx, valid)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if order.TotalAmount != 3550 {
			t.Fatalf("expected total 3550, got %d", order.TotalAmount)
		}
		if order.Status != OrderStatusPending {
			t.Fatalf("expected PENDING, got %s", order.Status)
		}
		if len(repo.last.Items) != 2 {
			t.Fatalf("expected 2 items persisted, got %d", len(repo.last.Items))
		}
	})

	t.Run("missing user -> invalid", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		req := valid
		req.UserID = ""
		if _, err := svc.CreateOrder(ctx, req); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("no items -> invalid", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		req := valid
		req.Items = nil
		if _, err := svc.CreateOrder(ctx, req); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("negative amount -> invalid", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		req := valid
		req.Items = []domain.OrderItemRequest{{ProductID: "g1", UnitAmount: -1}}
		if _, err := svc.CreateOrder(ctx, req); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})
}
