package adapter

import (
	"context"

	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
	checkoutdomain "github.com/kvellan/gamestore/internal/checkout/domain"
	orderapp "github.com/kvellan/gamestore/internal/order/app"
	orderdomain "github.com/kvellan/gamestore/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) Create(ctx context.Context, userID string, quote checkoutdomain.Quote) (checkoutdomain.Receipt, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			ProductID:  line.ProductID,
			Title:      line.Title,
			UnitAmount: line.Price.Amount,
		})
	}

	order, err := w.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		UserID:   userID,
		Currency: quote.Total.Currency,
		Items:    items,
	})
	if err != nil {
		return checkoutdomain.Receipt{}, err
	}

	return checkoutdomain.Receipt{
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     checkoutdomain.Money{Currency: order.Currency, Amount: order.TotalAmount},
		CreatedAt: order.CreatedAt,
	}, nil
}

var _ checkoutapp.OrderWriter = (*OrderServiceWriter)(nil)
