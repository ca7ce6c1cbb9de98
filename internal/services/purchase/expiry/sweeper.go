// Package expiry reclaims basket reservations whose deadline elapsed.
package expiry

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage"
)

const defaultSweepInterval = 5 * time.Second

// Sweeper periodically deletes expired unpurchased orders so their inventory
// slots return to the pool.
type Sweeper struct {
	store    storage.OrderStore
	interval time.Duration
	logf     func(string, ...any)
}

// NewSweeper creates a sweeper over the order store. A non-positive interval
// falls back to the default.
func NewSweeper(store storage.OrderStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		logf:     log.Printf,
	}
}

// Run sweeps on the configured interval until the context ends. Sweep failures
// are logged and retried on the next tick; reclaiming late is safe, never
// reclaiming is not.
func (s *Sweeper) Run(ctx context.Context) {
	if s == nil || s.store == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.store.RemoveExpiredOrders(ctx)
	if err != nil {
		if s.logf != nil && ctx.Err() == nil {
			s.logf("expiry sweep failed: %v", err)
		}
		return
	}
	if removed > 0 && s.logf != nil {
		s.logf("expiry sweep reclaimed %d reservation(s)", removed)
	}
}
