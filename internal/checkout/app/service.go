package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvellan/gamestore/internal/checkout/domain"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrAnonymousCheckout = errors.New("checkout requires a logged-in user")
)

// Shopper mirrors the caller's identity without importing the cart package.
type Shopper struct {
	UserID    string
	SessionID string
}

type CartReader interface {
	// Items returns the game ids in the shopper's cart, in insertion order.
	Items(ctx context.Context, s Shopper) ([]string, error)
	Clear(ctx context.Context, s Shopper) error
}

type Product struct {
	ID       string
	Title    string
	Currency string
	Amount   int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type OrderWriter interface {
	Create(ctx context.Context, userID string, quote domain.Quote) (domain.Receipt, error)
}

type Service struct {
	cart    CartReader
	catalog CatalogReader
	orders  OrderWriter

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, orders OrderWriter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		orders:        orders,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the shopper's current cart at live catalog prices. Lookups
// run concurrently with bounded parallelism; line order follows cart order.
func (s *Service) Quote(ctx context.Context, shopper Shopper) (domain.Quote, error) {
	ids, err := s.cart.Items(ctx, shopper)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(ids) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range ids {
		g.Go(func() error {
			product, err := s.catalog.GetProduct(ctx, ids[idx])
			if err != nil {
				return fmt.Errorf("failed to get game %s: %w", ids[idx], err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Title:     product.Title,
				Price: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var totalAmount int64
	for _, line := range lines {
		totalAmount += line.Price.Amount
	}

	return domain.Quote{
		Lines: lines,
		Total: domain.Money{
			// All catalog prices are in the one store currency.
			Currency: lines[0].Price.Currency,
			Amount:   totalAmount,
		},
	}, nil
}

// Purchase turns the cart into an order and empties the cart. Only
// authenticated shoppers can buy; the order write is transactional in the
// repository, the cart clear is a separate single-owner delete.
func (s *Service) Purchase(ctx context.Context, shopper Shopper) (domain.Receipt, error) {
	if shopper.UserID == "" {
		return domain.Receipt{}, ErrAnonymousCheckout
	}

	quote, err := s.Quote(ctx, shopper)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt, err := s.orders.Create(ctx, shopper.UserID, quote)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err := s.cart.Clear(ctx, shopper); err != nil {
		return domain.Receipt{}, fmt.Errorf("order %s created but cart not cleared: %w", receipt.OrderID, err)
	}

	return receipt, nil
}
