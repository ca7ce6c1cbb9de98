// Package sqlite provides a SQLite-backed purchase storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/festival-tickets/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists purchase state in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite purchase store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	// The _pragma form applies to every pooled connection.
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) clock() time.Time {
	if s == nil || s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// TicketTypes returns all ticket types in catalog order. A type reads as sold
// out when every duration it offers is at its tier limit.
func (s *Store) TicketTypes(ctx context.Context) ([]storage.TicketType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	nowMillis := toMillis(s.clock())

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT tt.id, tt.display,
		        NOT EXISTS (
		          SELECT 1
		            FROM ticket_type_durations ttd
		            JOIN duration_tiers dt ON dt.duration_days = ttd.duration_days
		           WHERE ttd.ticket_type_id = tt.id
		             AND dt.order_limit > (
		               SELECT COUNT(*)
		                 FROM orders o
		                WHERE o.duration_days = ttd.duration_days
		                  AND (o.purchased_at IS NOT NULL OR o.reserved_until > ?)
		             )
		        ) AS sold_out
		   FROM ticket_types tt
		  ORDER BY tt.position ASC, tt.id ASC`,
		nowMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var types []storage.TicketType
	for rows.Next() {
		var ticketType storage.TicketType
		var soldOut int64
		if err := rows.Scan(&ticketType.ID, &ticketType.Display, &soldOut); err != nil {
			return nil, fmt.Errorf("list ticket types: %w", err)
		}
		ticketType.SoldOut = soldOut != 0
		types = append(types, ticketType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	return types, nil
}

// TicketDurations returns the durations offered for one ticket type.
func (s *Store) TicketDurations(ctx context.Context, typeID string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	typeID = strings.TrimSpace(typeID)
	if typeID == "" {
		return nil, fmt.Errorf("ticket type id is required")
	}

	var exists int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM ticket_types WHERE id = ?`, typeID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("check ticket type: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT duration_days
		   FROM ticket_type_durations
		  WHERE ticket_type_id = ?
		  ORDER BY duration_days ASC`,
		typeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ticket durations: %w", err)
	}
	defer rows.Close()

	var durations []int
	for rows.Next() {
		var durationDays int
		if err := rows.Scan(&durationDays); err != nil {
			return nil, fmt.Errorf("list ticket durations: %w", err)
		}
		durations = append(durations, durationDays)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ticket durations: %w", err)
	}
	return durations, nil
}

// CreateOrder inserts an empty basket with no reservation deadline.
func (s *Store) CreateOrder(ctx context.Context, orderID string) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return storage.Order{}, fmt.Errorf("order id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO orders (id, created_at) VALUES (?, ?)`,
		orderID,
		toMillis(s.clock()),
	)
	if err != nil {
		return storage.Order{}, fmt.Errorf("create order: %w", err)
	}
	return storage.Order{ID: orderID}, nil
}

// SetOrderTicket sets or replaces the basket's ticket selection and resets the
// reservation deadline. The tier capacity predicate lives in the UPDATE's
// WHERE clause so the check and the write are one atomic statement.
func (s *Store) SetOrderTicket(ctx context.Context, orderID, typeID string, durationDays int, reservedUntil time.Time) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}
	orderID = strings.TrimSpace(orderID)
	typeID = strings.TrimSpace(typeID)
	if orderID == "" {
		return storage.Order{}, fmt.Errorf("order id is required")
	}
	if typeID == "" {
		return storage.Order{}, fmt.Errorf("ticket type id is required")
	}
	if durationDays <= 0 {
		return storage.Order{}, fmt.Errorf("duration days must be greater than zero")
	}
	nowMillis := toMillis(s.clock())

	var priceCents int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT price_cents
		   FROM ticket_type_durations
		  WHERE ticket_type_id = ? AND duration_days = ?`,
		typeID,
		durationDays,
	).Scan(&priceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists int
			typeErr := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM ticket_types WHERE id = ?`, typeID).Scan(&exists)
			if errors.Is(typeErr, sql.ErrNoRows) {
				return storage.Order{}, storage.ErrTicketTypeNotFound
			}
			if typeErr != nil {
				return storage.Order{}, fmt.Errorf("check ticket type: %w", typeErr)
			}
			return storage.Order{}, storage.ErrDurationNotOffered
		}
		return storage.Order{}, fmt.Errorf("price ticket: %w", err)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE orders
		    SET ticket_type_id = ?,
		        duration_days = ?,
		        price_cents = ?,
		        reserved_until = ?
		  WHERE id = ?
		    AND purchased_at IS NULL
		    AND (reserved_until IS NULL OR reserved_until > ?)
		    AND (SELECT order_limit FROM duration_tiers WHERE duration_days = ?) > (
		          SELECT COUNT(*)
		            FROM orders o
		           WHERE o.duration_days = ?
		             AND o.id <> ?
		             AND (o.purchased_at IS NOT NULL OR o.reserved_until > ?)
		        )`,
		typeID,
		durationDays,
		priceCents,
		toMillis(reservedUntil),
		orderID,
		nowMillis,
		durationDays,
		durationDays,
		orderID,
		nowMillis,
	)
	if err != nil {
		return storage.Order{}, fmt.Errorf("set order ticket: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Order{}, fmt.Errorf("set order ticket: %w", err)
	}
	if affected == 0 {
		if _, err := s.classifyStaleOrder(ctx, orderID, nowMillis); err != nil {
			return storage.Order{}, err
		}
		return storage.Order{}, storage.ErrSoldOut
	}
	return s.readOrder(ctx, orderID)
}

// GetOrder returns one order, reclaiming it first if its deadline elapsed.
func (s *Store) GetOrder(ctx context.Context, orderID string) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return storage.Order{}, fmt.Errorf("order id is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM orders
		  WHERE id = ? AND purchased_at IS NULL AND reserved_until IS NOT NULL AND reserved_until <= ?`,
		orderID,
		toMillis(s.clock()),
	); err != nil {
		return storage.Order{}, fmt.Errorf("reclaim expired order: %w", err)
	}
	return s.readOrder(ctx, orderID)
}

// PurchaseOrder stamps the purchase time and clears the reservation deadline.
// The state predicates live in the UPDATE's WHERE clause so a racing expiry
// sweep and a purchase resolve to exactly one winner.
func (s *Store) PurchaseOrder(ctx context.Context, orderID string) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return storage.Order{}, fmt.Errorf("order id is required")
	}
	nowMillis := toMillis(s.clock())

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE orders
		    SET purchased_at = ?, reserved_until = NULL
		  WHERE id = ?
		    AND purchased_at IS NULL
		    AND ticket_type_id IS NOT NULL
		    AND reserved_until > ?`,
		nowMillis,
		orderID,
		nowMillis,
	)
	if err != nil {
		return storage.Order{}, fmt.Errorf("purchase order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Order{}, fmt.Errorf("purchase order: %w", err)
	}
	if affected == 0 {
		hasTicket, err := s.classifyStaleOrder(ctx, orderID, nowMillis)
		if err != nil {
			return storage.Order{}, err
		}
		if !hasTicket {
			return storage.Order{}, storage.ErrEmptyBasket
		}
		return storage.Order{}, fmt.Errorf("purchase order: concurrent state change")
	}
	return s.readOrder(ctx, orderID)
}

// RemoveOrder deletes one unpurchased order. Missing or purchased orders are
// left untouched.
func (s *Store) RemoveOrder(ctx context.Context, orderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return fmt.Errorf("order id is required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM orders WHERE id = ? AND purchased_at IS NULL`,
		orderID,
	); err != nil {
		return fmt.Errorf("remove order: %w", err)
	}
	return nil
}

// RemoveExpiredOrders deletes every unpurchased order whose deadline elapsed.
func (s *Store) RemoveExpiredOrders(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM orders
		  WHERE purchased_at IS NULL AND reserved_until IS NOT NULL AND reserved_until <= ?`,
		toMillis(s.clock()),
	)
	if err != nil {
		return 0, fmt.Errorf("remove expired orders: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("remove expired orders: %w", err)
	}
	return int(affected), nil
}

// OrderStats returns one row per duration tier with live order counts.
func (s *Store) OrderStats(ctx context.Context) ([]storage.OrderStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT dt.duration_days, dt.order_limit,
		        (SELECT COUNT(*)
		           FROM orders o
		          WHERE o.duration_days = dt.duration_days
		            AND (o.purchased_at IS NOT NULL OR o.reserved_until > ?)
		        ) AS order_count
		   FROM duration_tiers dt
		  ORDER BY dt.duration_days ASC`,
		toMillis(s.clock()),
	)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	defer rows.Close()

	var stats []storage.OrderStats
	for rows.Next() {
		var row storage.OrderStats
		if err := rows.Scan(&row.DurationDays, &row.OrderLimit, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("order stats: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return stats, nil
}

// classifyStaleOrder turns a guarded write that matched no rows into the
// sentinel describing why. A nil error with the order still live means the
// caller's own predicate failed; hasTicket reports whether a ticket selection
// is present so the caller can tell an empty basket from a capacity failure.
func (s *Store) classifyStaleOrder(ctx context.Context, orderID string, nowMillis int64) (bool, error) {
	var typeID sql.NullString
	var reservedUntil sql.NullInt64
	var purchasedAt sql.NullInt64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT ticket_type_id, reserved_until, purchased_at FROM orders WHERE id = ?`,
		orderID,
	).Scan(&typeID, &reservedUntil, &purchasedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, storage.ErrNotFound
		}
		return false, fmt.Errorf("inspect order: %w", err)
	}
	if purchasedAt.Valid {
		return typeID.Valid, storage.ErrOrderAlreadyPurchased
	}
	if reservedUntil.Valid && reservedUntil.Int64 <= nowMillis {
		if _, err := s.sqlDB.ExecContext(
			ctx,
			`DELETE FROM orders WHERE id = ? AND purchased_at IS NULL`,
			orderID,
		); err != nil {
			return typeID.Valid, fmt.Errorf("reclaim expired order: %w", err)
		}
		return typeID.Valid, storage.ErrOrderExpired
	}
	return typeID.Valid, nil
}

func (s *Store) readOrder(ctx context.Context, orderID string) (storage.Order, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT o.id, o.ticket_type_id, tt.display, o.duration_days, o.price_cents,
		        o.reserved_until, o.purchased_at
		   FROM orders o
		   LEFT JOIN ticket_types tt ON tt.id = o.ticket_type_id
		  WHERE o.id = ?`,
		orderID,
	)

	var order storage.Order
	var typeID sql.NullString
	var display sql.NullString
	var durationDays sql.NullInt64
	var priceCents sql.NullInt64
	var reservedUntil sql.NullInt64
	var purchasedAt sql.NullInt64
	err := row.Scan(&order.ID, &typeID, &display, &durationDays, &priceCents, &reservedUntil, &purchasedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Order{}, storage.ErrNotFound
		}
		return storage.Order{}, fmt.Errorf("get order: %w", err)
	}

	if typeID.Valid {
		order.Type = &storage.TicketType{ID: typeID.String, Display: display.String}
	}
	if durationDays.Valid {
		order.DurationDays = int(durationDays.Int64)
	}
	if priceCents.Valid {
		order.PriceCents = priceCents.Int64
	}
	if reservedUntil.Valid {
		deadline := fromMillis(reservedUntil.Int64)
		order.ReservedUntil = &deadline
	}
	if purchasedAt.Valid {
		stamped := fromMillis(purchasedAt.Int64)
		order.PurchasedAt = &stamped
	}
	return order, nil
}

var _ storage.CatalogStore = (*Store)(nil)
var _ storage.OrderStore = (*Store)(nil)
