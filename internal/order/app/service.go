package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvellan/gamestore/internal/order/domain"
)

const OrderStatusPending = "PENDING"

var ErrInvalidOrder = errors.New("invalid order")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if req.UserID == "" {
		return domain.Order{}, fmt.Errorf("%w: missing user id", ErrInvalidOrder)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: no items", ErrInvalidOrder)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var totalAmount int64

	for i, item := range req.Items {
		if item.ProductID == "" {
			return domain.Order{}, fmt.Errorf("%w: item %d missing product id", ErrInvalidOrder, i)
		}
		if item.UnitAmount < 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d has negative amount %d", ErrInvalidOrder, i, item.UnitAmount)
		}

		items = append(items, domain.OrderItem{
			ProductID:  item.ProductID,
			Title:      item.Title,
			UnitAmount: item.UnitAmount,
		})
		totalAmount += item.UnitAmount
	}

	order := domain.Order{
		UserID:      req.UserID,
		Status:      OrderStatusPending,
		Currency:    req.Currency,
		TotalAmount: totalAmount,
		Items:       items,
	}

	return s.repo.CreateOrderTx(ctx, order)
}

func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidOrder)
	}
	return s.repo.ListByUser(ctx, userID)
}
