package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type Game struct {
	ID          string
	Title       string
	Developer   string
	Genre       string
	Description string
	Price       Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
