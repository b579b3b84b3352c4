package app

import (
	"context"
	"errors"
	"strings"

	"github.com/kvellan/gamestore/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo GameRepo
}

func NewService(repo GameRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateGame(ctx context.Context, g domain.Game) (domain.Game, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.Developer = strings.TrimSpace(g.Developer)
	g.Price.Currency = strings.TrimSpace(g.Price.Currency)

	if g.Title == "" || g.Developer == "" || g.Price.Currency == "" || g.Price.Amount <= 0 {
		return domain.Game{}, ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, g)
	if err != nil {
		return domain.Game{}, err
	}

	return created, nil
}

func (s *Service) GetGame(ctx context.Context, id string) (domain.Game, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Game{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListGames(ctx context.Context, query string, limit int, cursor string) ([]domain.Game, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}
