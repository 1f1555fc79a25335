// Package deleteguard de-duplicates concurrent delete requests for the
// same customer id within a single process. It is advisory only: the
// transactional check-then-delete in the repository is what protects
// referential integrity, the guard just rejects redundant clicks.
package deleteguard

import (
	"context"
	"sync"
	"time"
)

type Guard struct {
	mu       sync.Mutex
	ttl      time.Duration
	inflight map[int64]time.Time

	now func() time.Time // test hook
}

func New(ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Guard{
		ttl:      ttl,
		inflight: make(map[int64]time.Time),
		now:      time.Now,
	}
}

// TryAcquire marks id as having a delete in flight. It reports false if
// a non-stale entry already exists. An entry older than the ttl counts
// as abandoned and is taken over, so a holder that crashed without
// releasing cannot block the id forever.
func (g *Guard) TryAcquire(id int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if started, ok := g.inflight[id]; ok && g.now().Sub(started) < g.ttl {
		return false
	}
	g.inflight[id] = g.now()
	return true
}

// Release must be called on every exit path of the guarded delete.
func (g *Guard) Release(id int64) {
	g.mu.Lock()
	delete(g.inflight, id)
	g.mu.Unlock()
}

// Sweep drops entries older than the ttl and returns how many were
// removed. TryAcquire already ignores stale entries, Sweep just bounds
// the map size.
func (g *Guard) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for id, started := range g.inflight {
		if g.now().Sub(started) >= g.ttl {
			delete(g.inflight, id)
			removed++
		}
	}
	return removed
}

// Run sweeps periodically until ctx is done.
func (g *Guard) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = g.ttl
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			g.Sweep()
		}
	}
}

// Len reports the number of tracked entries, stale included.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
