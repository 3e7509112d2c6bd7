package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusFinished OrderStatus = "finished"
)

// OrderLine is one cart row inside an order. Name and UnitPrice are
// snapshots taken at placement time and are never re-derived from the
// catalog, so orders stay stable when menu prices change later.
type OrderLine struct {
	CartID     string          `json:"cartId,omitempty"`
	MenuItemID int             `json:"id"`
	Name       string          `json:"name"`
	Size       string          `json:"size"`
	UnitPrice  decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// LineTotal returns UnitPrice * Quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID     int             `json:"id"`
	Items  []OrderLine     `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status OrderStatus     `json:"status"`
}

// SalesHistoryRecord is one day-reset settlement: the finished orders
// archived by the reset and their combined total. Records are append-only.
type SalesHistoryRecord struct {
	Date   time.Time       `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Orders []Order         `json:"orders"`
}
