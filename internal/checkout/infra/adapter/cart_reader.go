package adapter

import (
	"context"

	cartapp "github.com/kvellan/gamestore/internal/cart/app"
	cartdomain "github.com/kvellan/gamestore/internal/cart/domain"
	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items(ctx context.Context, s checkoutapp.Shopper) ([]string, error) {
	cart, err := r.svc.GetCart(ctx, identity(s))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}
	return ids, nil
}

func (r *CartServiceReader) Clear(ctx context.Context, s checkoutapp.Shopper) error {
	return r.svc.Clear(ctx, identity(s))
}

func identity(s checkoutapp.Shopper) cartdomain.Identity {
	return cartdomain.Identity{UserID: s.UserID, SessionID: s.SessionID}
}
