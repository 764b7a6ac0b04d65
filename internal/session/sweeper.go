package session

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically evicts idle sessions from a Store. It is owned by
// the top-level composition: nothing starts it as a package side effect.
type Sweeper struct {
	store    *Store
	interval time.Duration
	idle     time.Duration
}

// NewSweeper creates a sweeper that runs every interval and evicts
// sessions idle longer than idle.
func NewSweeper(store *Store, interval, idle time.Duration) *Sweeper {
	return &Sweeper{store: store, interval: interval, idle: idle}
}

// Start launches the background sweep goroutine. It stops when ctx is
// canceled.
func (w *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		log.Printf("session: sweeper started (interval=%s, idle=%s)", w.interval, w.idle)
		for {
			select {
			case <-ticker.C:
				if n := w.store.Sweep(time.Now(), w.idle); n > 0 {
					log.Printf("session: swept %d idle sessions, %d live", n, w.store.Len())
				}
			case <-ctx.Done():
				log.Printf("session: sweeper stopped: %v", ctx.Err())
				return
			}
		}
	}()
}
