package analytics

import (
	"context"
	"sync"
)

type inflightEntry struct {
	gen    uint64
	cancel context.CancelFunc
}

// inflight tracks the newest request per key so a fresh call can cancel a
// stale one still on the wire. Keys are scoped per operation and ticker,
// e.g. "predict:INFY.NS".
type inflight struct {
	mu     sync.Mutex
	gen    uint64
	active map[string]inflightEntry
}

func newInflight() *inflight {
	return &inflight{
		active: make(map[string]inflightEntry),
	}
}

// begin registers a new request for key, cancelling any prior request still
// running under the same key. The returned done func must be called when the
// request finishes; it releases the slot unless a newer call already took it.
func (f *inflight) begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	if prior, ok := f.active[key]; ok {
		prior.cancel()
	}
	f.gen++
	gen := f.gen
	f.active[key] = inflightEntry{gen: gen, cancel: cancel}
	f.mu.Unlock()

	done := func() {
		f.mu.Lock()
		if current, ok := f.active[key]; ok && current.gen == gen {
			delete(f.active, key)
		}
		f.mu.Unlock()
		cancel()
	}
	return ctx, done
}
