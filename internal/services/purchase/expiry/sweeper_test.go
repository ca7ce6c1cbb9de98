package expiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage"
)

type fakeOrderStore struct {
	storage.OrderStore

	mu      sync.Mutex
	calls   int
	removed int
	err     error
}

func (f *fakeOrderStore) RemoveExpiredOrders(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.removed, f.err
}

func (f *fakeOrderStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSweeperRemovesExpiredOrdersOnTicks(t *testing.T) {
	t.Parallel()

	store := &fakeOrderStore{removed: 2}
	sweeper := NewSweeper(store, 5*time.Millisecond)
	sweeper.logf = nil

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for store.callCount() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ticked twice")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestSweeperRetriesAfterFailure(t *testing.T) {
	t.Parallel()

	store := &fakeOrderStore{err: errors.New("database is locked")}
	sweeper := NewSweeper(store, 5*time.Millisecond)
	sweeper.logf = func(string, ...any) {}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for store.callCount() < 3 {
		select {
		case <-deadline:
			t.Fatal("sweeper stopped retrying after a failure")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestNewSweeperDefaultsInterval(t *testing.T) {
	t.Parallel()

	sweeper := NewSweeper(&fakeOrderStore{}, 0)
	if sweeper.interval != defaultSweepInterval {
		t.Fatalf("interval = %v, want %v", sweeper.interval, defaultSweepInterval)
	}
}
