package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

// QuoteLine prices one game license; games are unit goods, so there is no
// quantity on a line.
type QuoteLine struct {
	ProductID string
	Title     string
	Price     Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

// Receipt is what the shopper gets back from a completed purchase.
type Receipt struct {
	OrderID   string
	Status    string
	Total     Money
	CreatedAt time.Time
}
