package app

import (
	"context"

	"github.com/kvellan/gamestore/internal/catalog/domain"
)

type GameRepo interface {
	Create(ctx context.Context, g domain.Game) (domain.Game, error)
	Get(ctx context.Context, id string) (domain.Game, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]domain.Game, string, error)
}
