package domain

import "time"

type Order struct {
	ID          string
	UserID      string
	Status      string
	Currency    string
	TotalAmount int64
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Title      string
	UnitAmount int64
}

type CreateOrderRequest struct {
	UserID   string
	Currency string
	Items    []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID  string
	Title      string
	UnitAmount int64
}
