package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kvellan/gamestore/internal/cart/app"
	"github.com/kvellan/gamestore/internal/cart/domain"
)

// OwnerStore keeps the authenticated cart in Postgres, one row per
// (user, game). Every statement filters by user_id.
//
// Ids that do not parse as UUIDs identify nothing: reads treat them as
// absent and deletes no-op, matching the session store's behavior for the
// same inputs. Only Insert rejects them, with a typed sentinel.
type OwnerStore struct {
	db *sql.DB
}

func NewOwnerStore(db *sql.DB) *OwnerStore {
	return &OwnerStore{db: db}
}

func (s *OwnerStore) ListByOwner(ctx context.Context, userID string) ([]domain.Item, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, added_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY added_at, product_id`,
		userUUID,
	)
	if err != nil {
		return nil, storeErr("list cart items", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var productID uuid.UUID
		var item domain.Item
		if err := rows.Scan(&productID, &item.AddedAt); err != nil {
			return nil, storeErr("scan cart item", err)
		}
		item.ProductID = productID.String()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list cart items", err)
	}

	return items, nil
}

func (s *OwnerStore) Insert(ctx context.Context, userID string, item domain.Item) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: %s", app.ErrInvalidOwner, userID)
	}
	productUUID, err := uuid.Parse(item.ProductID)
	if err != nil {
		return fmt.Errorf("%w: %s", app.ErrGameNotFound, item.ProductID)
	}

	// ON CONFLICT keeps the insert idempotent under concurrent adds.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO NOTHING`,
		userUUID, productUUID, item.AddedAt,
	)
	if err != nil {
		return storeErr("insert cart item", err)
	}

	return nil
}

func (s *OwnerStore) Delete(ctx context.Context, userID, productID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		// Such a row cannot exist; deleting it is the usual no-op.
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND product_id = $2`,
		userUUID, productUUID,
	)
	if err != nil {
		return storeErr("delete cart item", err)
	}

	return nil
}

func (s *OwnerStore) Exists(ctx context.Context, userID, productID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		return false, nil
	}

	var exists bool
	row := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM cart_items
			WHERE user_id = $1 AND product_id = $2
		)`,
		userUUID, productUUID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, storeErr("check cart item", err)
	}

	return exists, nil
}

func (s *OwnerStore) DeleteAll(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userUUID)
	if err != nil {
		return storeErr("clear cart", err)
	}

	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", app.ErrStoreUnavailable, op, err)
}
