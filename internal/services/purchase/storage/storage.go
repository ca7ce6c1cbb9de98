// Package storage defines persistence contracts for purchase service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested order record is missing or reclaimed.
	ErrNotFound = errors.New("record not found")
	// ErrTicketTypeNotFound indicates an unknown ticket type id.
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	// ErrDurationNotOffered indicates the ticket type does not offer the duration.
	ErrDurationNotOffered = errors.New("duration not offered for ticket type")
	// ErrSoldOut indicates the duration tier has reached its order limit.
	ErrSoldOut = errors.New("duration tier sold out")
	// ErrOrderExpired indicates the order's reservation deadline has elapsed.
	ErrOrderExpired = errors.New("order reservation expired")
	// ErrOrderAlreadyPurchased indicates the order was already purchased.
	ErrOrderAlreadyPurchased = errors.New("order already purchased")
	// ErrEmptyBasket indicates the order has no ticket selection yet.
	ErrEmptyBasket = errors.New("order basket is empty")
)

// TicketType stores one purchasable ticket kind. SoldOut is derived from live
// order counts at read time, never persisted.
type TicketType struct {
	ID      string
	Display string
	SoldOut bool
}

// Order stores one basket reservation or completed purchase.
//
// Exactly one of a future ReservedUntil or a set PurchasedAt holds for a live
// record; expired unpurchased records are deleted.
type Order struct {
	ID            string
	Type          *TicketType
	DurationDays  int
	PriceCents    int64
	ReservedUntil *time.Time
	PurchasedAt   *time.Time
}

// OrderStats stores one duration tier's live order count against its limit.
type OrderStats struct {
	DurationDays int
	OrderLimit   int
	OrderCount   int
}

// CatalogStore reads ticket reference data.
type CatalogStore interface {
	// TicketTypes returns all ticket types with freshly derived sold-out flags.
	TicketTypes(ctx context.Context) ([]TicketType, error)
	// TicketDurations returns the durations offered for one ticket type.
	TicketDurations(ctx context.Context, typeID string) ([]int, error)
}

// OrderStore persists order records and their inventory effects.
type OrderStore interface {
	// CreateOrder inserts an empty basket with no reservation deadline.
	CreateOrder(ctx context.Context, orderID string) (Order, error)
	// SetOrderTicket sets or replaces the basket's ticket selection, prices it,
	// and resets the reservation deadline. The tier capacity check and the
	// write happen in one transaction.
	SetOrderTicket(ctx context.Context, orderID, typeID string, durationDays int, reservedUntil time.Time) (Order, error)
	// GetOrder returns one order, reclaiming it first if its deadline elapsed.
	GetOrder(ctx context.Context, orderID string) (Order, error)
	// PurchaseOrder stamps the purchase time and clears the reservation
	// deadline in one transaction guarded by the order's current state.
	PurchaseOrder(ctx context.Context, orderID string) (Order, error)
	// RemoveOrder deletes one unpurchased order. Removing a missing or
	// purchased order is a no-op.
	RemoveOrder(ctx context.Context, orderID string) error
	// RemoveExpiredOrders deletes every unpurchased order whose deadline
	// elapsed and returns how many rows were reclaimed.
	RemoveExpiredOrders(ctx context.Context) (int, error)
	// OrderStats returns one row per duration tier with live order counts.
	OrderStats(ctx context.Context) ([]OrderStats, error)
}
