// Package stats fans live order statistics out to streaming watchers.
package stats

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/festival-tickets/internal/services/purchase/storage"
)

const defaultPollInterval = 500 * time.Millisecond

// Source reads the current per-tier order statistics.
type Source interface {
	OrderStats(ctx context.Context) ([]storage.OrderStats, error)
}

// Broadcaster polls order statistics while watchers are subscribed and fans
// each snapshot out to them. Watchers that fall behind miss snapshots instead
// of blocking the poller.
type Broadcaster struct {
	source   Source
	interval time.Duration
	logf     func(string, ...any)

	mu          sync.Mutex
	subscribers map[chan []storage.OrderStats]struct{}
	closed      bool
}

// NewBroadcaster creates a broadcaster over the stats source. A non-positive
// interval falls back to the default.
func NewBroadcaster(source Source, interval time.Duration) *Broadcaster {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Broadcaster{
		source:      source,
		interval:    interval,
		logf:        log.Printf,
		subscribers: make(map[chan []storage.OrderStats]struct{}),
	}
}

// Subscribe registers one watcher and returns its snapshot channel plus a
// cancel function. The cancel function is idempotent. The channel closes when
// the broadcaster stops; subscribing after that returns an already closed
// channel.
func (b *Broadcaster) Subscribe() (<-chan []storage.OrderStats, func()) {
	ch := make(chan []storage.OrderStats, 1)

	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subscribers[ch] = struct{}{}
	}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Run polls on the configured interval until the context ends, then closes
// every subscriber channel so watchers unblock. Polls are skipped while nobody
// is subscribed; poll failures are logged and retried on the next tick.
func (b *Broadcaster) Run(ctx context.Context) {
	if b == nil || b.source == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer b.shutdown()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.poll(ctx)
		}
	}
}

func (b *Broadcaster) poll(ctx context.Context) {
	if b.subscriberCount() == 0 {
		return
	}
	snapshot, err := b.source.OrderStats(ctx)
	if err != nil {
		if b.logf != nil && ctx.Err() == nil {
			b.logf("order stats poll failed: %v", err)
		}
		return
	}
	b.publish(snapshot)
}

func (b *Broadcaster) publish(snapshot []storage.OrderStats) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Watcher has an undelivered snapshot; it reads newer data later.
		}
	}
}

func (b *Broadcaster) shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, ch)
	}
}

func (b *Broadcaster) subscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
