// Package purchaseclient implements a command-line client for the purchase
// service, covering every RPC the service exposes.
package purchaseclient

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	purchasev1 "github.com/louisbranch/festival-tickets/api/gen/go/purchase/v1"
	entrypoint "github.com/louisbranch/festival-tickets/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/festival-tickets/internal/platform/grpc"
	"github.com/louisbranch/festival-tickets/internal/platform/timeouts"
	"google.golang.org/grpc/status"
)

// Config holds purchase client command configuration.
type Config struct {
	Addr     string `env:"FESTIVAL_TICKETS_PURCHASE_ADDR" envDefault:"localhost:8092"`
	Op       string
	TypeID   string
	Duration int
	OrderID  string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The purchase gRPC server address")
	fs.StringVar(&cfg.Op, "op", "types", "Operation: types, durations, add, get, purchase, stats, watch")
	fs.StringVar(&cfg.TypeID, "type", "", "Ticket type id for durations and add")
	fs.IntVar(&cfg.Duration, "duration", 0, "Ticket duration in days for add")
	fs.StringVar(&cfg.OrderID, "order", "", "Order id for get and purchase")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run dials the purchase service and executes the configured operation.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	op := strings.TrimSpace(cfg.Op)
	switch op {
	case "types", "durations", "add", "get", "purchase", "stats", "watch":
	default:
		return fmt.Errorf("unknown operation %q", cfg.Op)
	}

	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		cfg.Addr,
		timeouts.GRPCDial,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("dial purchase service: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Printf("close purchase connection: %v", closeErr)
		}
	}()
	client := purchasev1.NewPurchaseServiceClient(conn)

	switch op {
	case "types":
		return listTicketTypes(ctx, client, out)
	case "durations":
		return listTicketDurations(ctx, client, cfg.TypeID, out)
	case "add":
		return addTicketToBasket(ctx, client, cfg.TypeID, cfg.Duration, out)
	case "get":
		return getOrder(ctx, client, cfg.OrderID, out)
	case "purchase":
		return purchaseOrder(ctx, client, cfg.OrderID, out)
	case "stats":
		return getOrderStats(ctx, client, out)
	default:
		return watchOrderStats(ctx, client, out)
	}
}

func listTicketTypes(ctx context.Context, client purchasev1.PurchaseServiceClient, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.GetTicketTypes(callCtx, &purchasev1.GetTicketTypesRequest{})
	if err != nil {
		return rpcError("get ticket types", err)
	}
	for _, ticketType := range resp.GetTicketTypes() {
		note := ""
		if ticketType.GetSoldOut() {
			note = " (sold out)"
		}
		fmt.Fprintf(out, "%s\t%s%s\n", ticketType.GetId(), ticketType.GetDisplay(), note)
	}
	return nil
}

func listTicketDurations(ctx context.Context, client purchasev1.PurchaseServiceClient, typeID string, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.GetTicketDurations(callCtx, &purchasev1.GetTicketDurationsRequest{TicketTypeId: typeID})
	if err != nil {
		return rpcError("get ticket durations", err)
	}
	for _, durationDays := range resp.GetTicketDurations() {
		fmt.Fprintf(out, "%d days\n", durationDays)
	}
	return nil
}

func addTicketToBasket(ctx context.Context, client purchasev1.PurchaseServiceClient, typeID string, durationDays int, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.AddTicketToBasket(callCtx, &purchasev1.AddTicketToBasketRequest{
		TicketTypeId: typeID,
		Duration:     int32(durationDays),
	})
	if err != nil {
		return rpcError("add ticket to basket", err)
	}
	printOrder(out, resp.GetOrder())
	return nil
}

func getOrder(ctx context.Context, client purchasev1.PurchaseServiceClient, orderID string, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.GetOrder(callCtx, &purchasev1.GetOrderRequest{Id: orderID})
	if err != nil {
		return rpcError("get order", err)
	}
	printOrder(out, resp.GetOrder())
	return nil
}

func purchaseOrder(ctx context.Context, client purchasev1.PurchaseServiceClient, orderID string, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.PurchaseOrder(callCtx, &purchasev1.PurchaseOrderRequest{Id: orderID})
	if err != nil {
		return rpcError("purchase order", err)
	}
	printOrder(out, resp.GetOrder())
	return nil
}

func getOrderStats(ctx context.Context, client purchasev1.PurchaseServiceClient, out io.Writer) error {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.GetOrderStats(callCtx, &purchasev1.GetOrderStatsRequest{})
	if err != nil {
		return rpcError("get order stats", err)
	}
	for _, row := range resp.GetOrderStats() {
		printOrderStats(out, row)
	}
	return nil
}

func watchOrderStats(ctx context.Context, client purchasev1.PurchaseServiceClient, out io.Writer) error {
	stream, err := client.WatchOrderStats(ctx, &purchasev1.WatchOrderStatsRequest{})
	if err != nil {
		return rpcError("watch order stats", err)
	}
	for {
		row, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return rpcError("watch order stats", err)
		}
		printOrderStats(out, row)
	}
}

func printOrder(out io.Writer, order *purchasev1.Order) {
	fmt.Fprintf(out, "order %s\n", order.GetId())
	if order.GetType() != nil {
		fmt.Fprintf(out, "  ticket: %s, %d days, %.2f\n", order.GetType().GetId(), order.GetDuration(), order.GetPrice())
	}
	if order.GetReservedUntil() != nil {
		fmt.Fprintf(out, "  reserved until %s\n", order.GetReservedUntil().AsTime().Format("2006-01-02 15:04:05"))
	}
	if order.GetPurchasedAt() != nil {
		fmt.Fprintf(out, "  purchased at %s\n", order.GetPurchasedAt().AsTime().Format("2006-01-02 15:04:05"))
	}
}

func printOrderStats(out io.Writer, row *purchasev1.OrderStats) {
	fmt.Fprintf(out, "%d days: %d/%d orders\n", row.GetDurationDays(), row.GetOrderCount(), row.GetOrderLimit())
}

func rpcError(op string, err error) error {
	if st, ok := status.FromError(err); ok {
		return fmt.Errorf("%s: %s: %s", op, st.Code(), st.Message())
	}
	return fmt.Errorf("%s: %w", op, err)
}
