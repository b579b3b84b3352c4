package adapter

import (
	"context"
	"errors"
	"fmt"

	cartapp "github.com/kvellan/gamestore/internal/cart/app"
	catalogapp "github.com/kvellan/gamestore/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetGame(ctx context.Context, id string) (cartapp.Game, error) {
	g, err := r.svc.GetGame(ctx, id)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return cartapp.Game{}, fmt.Errorf("%w: %s", cartapp.ErrGameNotFound, id)
	}
	if err != nil {
		return cartapp.Game{}, err
	}

	return cartapp.Game{
		ID:       g.ID,
		Title:    g.Title,
		Currency: g.Price.Currency,
		Amount:   g.Price.Amount,
	}, nil
}
