package server

import (
	"context"
	"testing"
	"time"

	purchasev1 "github.com/louisbranch/festival-tickets/api/gen/go/purchase/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestServer_BasketPurchaseRoundTrip(t *testing.T) {
	dbPath := t.TempDir() + "/purchase.db"
	t.Setenv("FESTIVAL_TICKETS_PURCHASE_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial purchase server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := purchasev1.NewPurchaseServiceClient(conn)

	typesResp, err := client.GetTicketTypes(context.Background(), &purchasev1.GetTicketTypesRequest{})
	if err != nil {
		t.Fatalf("get ticket types: %v", err)
	}
	if len(typesResp.GetTicketTypes()) != 4 {
		t.Fatalf("ticket type count = %d, want 4", len(typesResp.GetTicketTypes()))
	}

	durationsResp, err := client.GetTicketDurations(context.Background(), &purchasev1.GetTicketDurationsRequest{
		TicketTypeId: "chalet3",
	})
	if err != nil {
		t.Fatalf("get ticket durations: %v", err)
	}
	if got := durationsResp.GetTicketDurations(); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("chalet3 durations = %v, want [3 4]", got)
	}

	addResp, err := client.AddTicketToBasket(context.Background(), &purchasev1.AddTicketToBasketRequest{
		TicketTypeId: "chalet3",
		Duration:     3,
	})
	if err != nil {
		t.Fatalf("add ticket to basket: %v", err)
	}
	order := addResp.GetOrder()
	if order.GetPrice() != 44.0 {
		t.Fatalf("price = %v, want 44.0", order.GetPrice())
	}
	if order.GetReservedUntil() == nil {
		t.Fatal("expected reserved_until on a fresh basket")
	}

	purchaseResp, err := client.PurchaseOrder(context.Background(), &purchasev1.PurchaseOrderRequest{
		Id: order.GetId(),
	})
	if err != nil {
		t.Fatalf("purchase order: %v", err)
	}
	if purchaseResp.GetOrder().GetPurchasedAt() == nil {
		t.Fatal("expected purchased_at after purchase")
	}
	if purchaseResp.GetOrder().GetReservedUntil() != nil {
		t.Fatal("expected reserved_until cleared after purchase")
	}

	getResp, err := client.GetOrder(context.Background(), &purchasev1.GetOrderRequest{Id: order.GetId()})
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if getResp.GetOrder().GetType().GetId() != "chalet3" {
		t.Fatalf("order type = %q, want chalet3", getResp.GetOrder().GetType().GetId())
	}

	statsResp, err := client.GetOrderStats(context.Background(), &purchasev1.GetOrderStatsRequest{})
	if err != nil {
		t.Fatalf("get order stats: %v", err)
	}
	var threeDay *purchasev1.OrderStats
	for _, row := range statsResp.GetOrderStats() {
		if row.GetDurationDays() == 3 {
			threeDay = row
		}
	}
	if threeDay == nil || threeDay.GetOrderCount() != 1 {
		t.Fatalf("3 day tier stats = %+v, want count 1", threeDay)
	}
}

func TestServer_WatchOrderStatsStreams(t *testing.T) {
	dbPath := t.TempDir() + "/purchase.db"
	t.Setenv("FESTIVAL_TICKETS_PURCHASE_DB_PATH", dbPath)
	t.Setenv("FESTIVAL_TICKETS_STATS_INTERVAL", "10ms")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial purchase server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := purchasev1.NewPurchaseServiceClient(conn)
	watchCtx, watchCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer watchCancel()

	stream, err := client.WatchOrderStats(watchCtx, &purchasev1.WatchOrderStatsRequest{})
	if err != nil {
		t.Fatalf("watch order stats: %v", err)
	}
	seen := make(map[int32]bool)
	// The seeded catalog has tiers for 3, 4, and 7 days.
	for len(seen) < 3 {
		row, recvErr := stream.Recv()
		if recvErr != nil {
			t.Fatalf("recv order stats: %v", recvErr)
		}
		seen[row.GetDurationDays()] = true
	}
}

func TestServer_ShutdownReleasesConnectedWatcher(t *testing.T) {
	dbPath := t.TempDir() + "/purchase.db"
	t.Setenv("FESTIVAL_TICKETS_PURCHASE_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial purchase server: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	client := purchasev1.NewPurchaseServiceClient(conn)
	watchCtx, watchCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer watchCancel()

	stream, err := client.WatchOrderStats(watchCtx, &purchasev1.WatchOrderStatsRequest{})
	if err != nil {
		t.Fatalf("watch order stats: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("recv initial order stats: %v", err)
	}

	// The watcher stays connected; shutdown must still complete.
	runCancel()
	select {
	case serveErr := <-serveDone:
		if serveErr != nil {
			t.Fatalf("serve: %v", serveErr)
		}
	case <-time.After(4 * time.Second):
		t.Fatal("server did not shut down while a watcher was connected")
	}

	if _, err := stream.Recv(); err == nil {
		t.Fatal("expected the watch stream to end after shutdown")
	}
}
