// Package purchase exposes purchase.v1 gRPC operations.
package purchase

import (
	"context"
	"errors"
	"strings"
	"time"

	purchasev1 "github.com/louisbranch/festival-tickets/api/gen/go/purchase/v1"
	"github.com/louisbranch/festival-tickets/internal/id"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/stats"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const defaultReservationTTL = 10 * time.Minute

// Service exposes purchase.v1 gRPC operations.
type Service struct {
	purchasev1.UnimplementedPurchaseServiceServer
	catalog     storage.CatalogStore
	orders      storage.OrderStore
	broadcaster *stats.Broadcaster
	ttl         time.Duration
	clock       func() time.Time
}

// NewService creates a purchase service backed by catalog and order storage.
// A non-positive ttl falls back to the default reservation TTL.
func NewService(catalog storage.CatalogStore, orders storage.OrderStore, broadcaster *stats.Broadcaster, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultReservationTTL
	}
	return &Service{
		catalog:     catalog,
		orders:      orders,
		broadcaster: broadcaster,
		ttl:         ttl,
		clock:       time.Now,
	}
}

// GetTicketTypes returns all ticket types with freshly derived sold-out flags.
func (s *Service) GetTicketTypes(ctx context.Context, in *purchasev1.GetTicketTypesRequest) (*purchasev1.GetTicketTypesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get ticket types request is required")
	}
	if s == nil || s.catalog == nil {
		return nil, status.Error(codes.Internal, "catalog store is not configured")
	}

	types, err := s.catalog.TicketTypes(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list ticket types: %v", err)
	}
	resp := &purchasev1.GetTicketTypesResponse{
		TicketTypes: make([]*purchasev1.TicketType, 0, len(types)),
	}
	for _, ticketType := range types {
		resp.TicketTypes = append(resp.TicketTypes, ticketTypeToProto(ticketType))
	}
	return resp, nil
}

// GetTicketDurations returns the durations offered for one ticket type.
func (s *Service) GetTicketDurations(ctx context.Context, in *purchasev1.GetTicketDurationsRequest) (*purchasev1.GetTicketDurationsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get ticket durations request is required")
	}
	if s == nil || s.catalog == nil {
		return nil, status.Error(codes.Internal, "catalog store is not configured")
	}
	typeID := strings.TrimSpace(in.GetTicketTypeId())
	if typeID == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket type id is required")
	}

	durations, err := s.catalog.TicketDurations(ctx, typeID)
	if err != nil {
		return nil, storageStatus("list ticket durations", err)
	}
	resp := &purchasev1.GetTicketDurationsResponse{
		TicketDurations: make([]int32, 0, len(durations)),
	}
	for _, durationDays := range durations {
		resp.TicketDurations = append(resp.TicketDurations, int32(durationDays))
	}
	return resp, nil
}

// AddTicketToBasket creates a fresh order reserving one ticket selection.
func (s *Service) AddTicketToBasket(ctx context.Context, in *purchasev1.AddTicketToBasketRequest) (*purchasev1.AddTicketToBasketResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "add ticket to basket request is required")
	}
	if s == nil || s.orders == nil {
		return nil, status.Error(codes.Internal, "order store is not configured")
	}
	typeID := strings.TrimSpace(in.GetTicketTypeId())
	if typeID == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket type id is required")
	}
	if in.GetDuration() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "duration must be greater than zero")
	}

	orderID, err := id.New()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate order id: %v", err)
	}
	if _, err := s.orders.CreateOrder(ctx, orderID); err != nil {
		return nil, status.Errorf(codes.Internal, "create order: %v", err)
	}

	reservedUntil := s.now().Add(s.ttl)
	record, err := s.orders.SetOrderTicket(ctx, orderID, typeID, int(in.GetDuration()), reservedUntil)
	if err != nil {
		// The fresh basket holds no inventory; drop it rather than leak it.
		_ = s.orders.RemoveOrder(ctx, orderID)
		return nil, storageStatus("add ticket to basket", err)
	}
	return &purchasev1.AddTicketToBasketResponse{
		Order: orderToProto(record),
	}, nil
}

// GetOrder returns one order by id.
func (s *Service) GetOrder(ctx context.Context, in *purchasev1.GetOrderRequest) (*purchasev1.GetOrderResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get order request is required")
	}
	if s == nil || s.orders == nil {
		return nil, status.Error(codes.Internal, "order store is not configured")
	}
	orderID := strings.TrimSpace(in.GetId())
	if orderID == "" {
		return nil, status.Error(codes.InvalidArgument, "order id is required")
	}

	record, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, storageStatus("get order", err)
	}
	return &purchasev1.GetOrderResponse{
		Order: orderToProto(record),
	}, nil
}

// PurchaseOrder completes one basket reservation.
func (s *Service) PurchaseOrder(ctx context.Context, in *purchasev1.PurchaseOrderRequest) (*purchasev1.PurchaseOrderResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "purchase order request is required")
	}
	if s == nil || s.orders == nil {
		return nil, status.Error(codes.Internal, "order store is not configured")
	}
	orderID := strings.TrimSpace(in.GetId())
	if orderID == "" {
		return nil, status.Error(codes.InvalidArgument, "order id is required")
	}

	record, err := s.orders.PurchaseOrder(ctx, orderID)
	if err != nil {
		return nil, storageStatus("purchase order", err)
	}
	return &purchasev1.PurchaseOrderResponse{
		Order: orderToProto(record),
	}, nil
}

// GetOrderStats returns one row per duration tier with live order counts.
func (s *Service) GetOrderStats(ctx context.Context, in *purchasev1.GetOrderStatsRequest) (*purchasev1.GetOrderStatsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get order stats request is required")
	}
	if s == nil || s.orders == nil {
		return nil, status.Error(codes.Internal, "order store is not configured")
	}

	rows, err := s.orders.OrderStats(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "order stats: %v", err)
	}
	resp := &purchasev1.GetOrderStatsResponse{
		OrderStats: make([]*purchasev1.OrderStats, 0, len(rows)),
	}
	for _, row := range rows {
		resp.OrderStats = append(resp.OrderStats, orderStatsToProto(row))
	}
	return resp, nil
}

// WatchOrderStats streams per-tier order statistics until the client goes
// away. The first snapshot is read directly so watchers never wait a full
// poll interval for data.
func (s *Service) WatchOrderStats(in *purchasev1.WatchOrderStatsRequest, stream purchasev1.PurchaseService_WatchOrderStatsServer) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "watch order stats request is required")
	}
	if s == nil || s.orders == nil {
		return status.Error(codes.Internal, "order store is not configured")
	}
	if s.broadcaster == nil {
		return status.Error(codes.Internal, "stats broadcaster is not configured")
	}
	ctx := stream.Context()

	initial, err := s.orders.OrderStats(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "order stats: %v", err)
	}
	if err := sendOrderStats(stream, initial); err != nil {
		return err
	}

	snapshots, unsubscribe := s.broadcaster.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots:
			if !ok {
				// Broadcaster stopped; the server is shutting down.
				return nil
			}
			if err := sendOrderStats(stream, snapshot); err != nil {
				return err
			}
		}
	}
}

func sendOrderStats(stream purchasev1.PurchaseService_WatchOrderStatsServer, rows []storage.OrderStats) error {
	for _, row := range rows {
		if err := stream.Send(orderStatsToProto(row)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) now() time.Time {
	if s != nil && s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// storageStatus maps storage sentinels onto the wire error taxonomy. Unknown
// failures surface as Internal with the failing operation named.
func storageStatus(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "order not found")
	case errors.Is(err, storage.ErrTicketTypeNotFound):
		return status.Error(codes.NotFound, "ticket type not found")
	case errors.Is(err, storage.ErrDurationNotOffered):
		return status.Error(codes.InvalidArgument, "duration not offered for ticket type")
	case errors.Is(err, storage.ErrSoldOut):
		return status.Error(codes.ResourceExhausted, "duration tier sold out")
	case errors.Is(err, storage.ErrOrderExpired):
		return status.Error(codes.FailedPrecondition, "order reservation expired")
	case errors.Is(err, storage.ErrOrderAlreadyPurchased):
		return status.Error(codes.FailedPrecondition, "order already purchased")
	case errors.Is(err, storage.ErrEmptyBasket):
		return status.Error(codes.FailedPrecondition, "order basket is empty")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func ticketTypeToProto(record storage.TicketType) *purchasev1.TicketType {
	return &purchasev1.TicketType{
		Id:      record.ID,
		Display: record.Display,
		SoldOut: record.SoldOut,
	}
}

func orderToProto(record storage.Order) *purchasev1.Order {
	out := &purchasev1.Order{
		Id:       record.ID,
		Duration: int32(record.DurationDays),
		Price:    float64(record.PriceCents) / 100,
	}
	if record.Type != nil {
		out.Type = ticketTypeToProto(*record.Type)
	}
	if record.ReservedUntil != nil {
		out.ReservedUntil = timestamppb.New(*record.ReservedUntil)
	}
	if record.PurchasedAt != nil {
		out.PurchasedAt = timestamppb.New(*record.PurchasedAt)
	}
	return out
}

func orderStatsToProto(row storage.OrderStats) *purchasev1.OrderStats {
	return &purchasev1.OrderStats{
		DurationDays: int32(row.DurationDays),
		OrderLimit:   int32(row.OrderLimit),
		OrderCount:   int32(row.OrderCount),
	}
}
