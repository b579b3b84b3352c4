package adapter

import (
	"context"

	catalogapp "github.com/kvellan/gamestore/internal/catalog/app"
	checkoutapp "github.com/kvellan/gamestore/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (checkoutapp.Product, error) {
	g, err := r.svc.GetGame(ctx, productID)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:       g.ID,
		Title:    g.Title,
		Currency: g.Price.Currency,
		Amount:   g.Price.Amount,
	}, nil
}
