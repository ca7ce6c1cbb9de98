// Package server wires the purchase runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	purchasev1 "github.com/louisbranch/festival-tickets/api/gen/go/purchase/v1"
	"github.com/louisbranch/festival-tickets/internal/platform/config"
	purchaseservice "github.com/louisbranch/festival-tickets/internal/services/purchase/api/grpc/purchase"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/expiry"
	"github.com/louisbranch/festival-tickets/internal/services/purchase/stats"
	purchasesqlite "github.com/louisbranch/festival-tickets/internal/services/purchase/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const gracefulStopTimeout = 2 * time.Second

type serverEnv struct {
	DBPath         string        `env:"FESTIVAL_TICKETS_PURCHASE_DB_PATH"`
	ReservationTTL time.Duration `env:"FESTIVAL_TICKETS_RESERVATION_TTL" envDefault:"10m"`
	SweepInterval  time.Duration `env:"FESTIVAL_TICKETS_SWEEP_INTERVAL" envDefault:"5s"`
	StatsInterval  time.Duration `env:"FESTIVAL_TICKETS_STATS_INTERVAL" envDefault:"500ms"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "purchase.db")
	}
	return cfg
}

// Server hosts the purchase gRPC API, storage, and the background loops that
// reclaim expired reservations and feed stats watchers.
type Server struct {
	listener    net.Listener
	grpcServer  *grpc.Server
	health      *health.Server
	store       *purchasesqlite.Store
	sweeper     *expiry.Sweeper
	broadcaster *stats.Broadcaster
}

// New creates a configured purchase server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured purchase server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openPurchaseStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	broadcaster := stats.NewBroadcaster(store, env.StatsInterval)
	sweeper := expiry.NewSweeper(store, env.SweepInterval)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := purchaseservice.NewService(store, store, broadcaster, env.ReservationTTL)
	healthServer := health.NewServer()
	purchasev1.RegisterPurchaseServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("purchase.v1.PurchaseService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:    listener,
		grpcServer:  grpcServer,
		health:      healthServer,
		store:       store,
		sweeper:     sweeper,
		broadcaster: broadcaster,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a purchase server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server and background loops until context
// cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	loopCtx, stopLoops := context.WithCancel(ctx)
	var loops sync.WaitGroup
	loops.Add(2)
	go func() {
		defer loops.Done()
		s.sweeper.Run(loopCtx)
	}()
	go func() {
		defer loops.Done()
		s.broadcaster.Run(loopCtx)
	}()
	defer func() {
		stopLoops()
		loops.Wait()
	}()

	log.Printf("purchase server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		// Stopping the broadcaster first ends connected watch streams, so
		// graceful stop is not left waiting on them.
		stopLoops()
		loops.Wait()
		s.stopGRPC()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// stopGRPC drains in-flight RPCs, falling back to a hard stop when a client
// holds a stream open past the grace period.
func (s *Server) stopGRPC() {
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(gracefulStopTimeout):
		s.grpcServer.Stop()
		<-stopped
	}
}

// Close releases purchase server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close purchase store: %v", err)
		}
	}
}

func openPurchaseStore(path string) (*purchasesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := purchasesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open purchase sqlite store: %w", err)
	}
	return store, nil
}
