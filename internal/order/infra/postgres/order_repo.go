package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kvellan/gamestore/internal/order/domain"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// CreateOrderTx writes the order header and its items in one transaction.
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	userUUID, err := uuid.Parse(order.UserID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid user UUID: %w", err)
	}

	var created domain.Order

	err = r.execTX(ctx, func(tx *sql.Tx) error {
		orderID := uuid.New()

		row := tx.QueryRowContext(ctx, `
			INSERT INTO orders (id, user_id, status, currency, total_amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at, updated_at`,
			orderID, userUUID, order.Status, order.Currency, order.TotalAmount,
		)

		created = domain.Order{
			ID:          orderID.String(),
			UserID:      order.UserID,
			Status:      order.Status,
			Currency:    order.Currency,
			TotalAmount: order.TotalAmount,
		}
		if err := row.Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i, item := range order.Items {
			productUUID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("item %d: invalid product UUID: %w", i, err)
			}

			itemID := uuid.New()
			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, title, unit_amount)
				VALUES ($1, $2, $3, $4, $5)`,
				itemID, orderID, productUUID, item.Title, item.UnitAmount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}

			created.Items = append(created.Items, domain.OrderItem{
				ID:         itemID.String(),
				OrderID:    orderID.String(),
				ProductID:  item.ProductID,
				Title:      item.Title,
				UnitAmount: item.UnitAmount,
			})
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return created, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user UUID: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, currency, total_amount, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userUUID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o := domain.Order{UserID: userID}
		if err := rows.Scan(&o.ID, &o.Status, &o.Currency, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, title, unit_amount
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		it := domain.OrderItem{OrderID: orderID}
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Title, &it.UnitAmount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
