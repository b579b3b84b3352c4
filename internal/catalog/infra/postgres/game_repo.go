package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/kvellan/gamestore/internal/catalog/app"
	"github.com/kvellan/gamestore/internal/catalog/domain"
)

type GameRepo struct {
	db *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{db: db}
}

func (r *GameRepo) Create(ctx context.Context, g domain.Game) (domain.Game, error) {
	id := uuid.New()

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO games (id, title, developer, genre, description, price_amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		id, g.Title, g.Developer, g.Genre, g.Description, g.Price.Amount, g.Price.Currency,
	)

	if err := row.Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		return domain.Game{}, err
	}

	g.ID = id.String()
	return g, nil
}

func (r *GameRepo) Get(ctx context.Context, id string) (domain.Game, error) {
	gameID, err := uuid.Parse(id)
	if err != nil {
		return domain.Game{}, app.ErrInvalidInput
	}

	var g domain.Game
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, developer, genre, description, price_amount, currency, created_at, updated_at
		FROM games
		WHERE id = $1`,
		gameID,
	)

	err = row.Scan(
		&g.ID, &g.Title, &g.Developer, &g.Genre, &g.Description,
		&g.Price.Amount, &g.Price.Currency, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Game{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Game{}, err
	}

	return g, nil
}

func (r *GameRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Game, string, error) {
	var cur uuid.NullUUID
	if strings.TrimSpace(cursor) != "" {
		uid, err := uuid.Parse(strings.TrimSpace(cursor))
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		cur = uuid.NullUUID{UUID: uid, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, developer, genre, description, price_amount, currency, created_at, updated_at
		FROM games
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
		  AND ($2::uuid IS NULL OR id > $2)
		ORDER BY id
		LIMIT $3`,
		strings.TrimSpace(query), cur, limit,
	)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	out := make([]domain.Game, 0, limit)
	var nextCursor string

	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(
			&g.ID, &g.Title, &g.Developer, &g.Genre, &g.Description,
			&g.Price.Amount, &g.Price.Currency, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, "", err
		}
		out = append(out, g)
		nextCursor = g.ID
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}
