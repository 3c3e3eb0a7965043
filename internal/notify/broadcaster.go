// Package notify implements the fire-and-forget ledger-changed broadcast.
// Notifications carry no payload; subscribers re-query whatever view they
// depend on.
package notify

import "sync"

// Broadcaster fans a payload-less signal out to any number of subscribers.
// Sends never block: a subscriber that has not drained its channel simply
// coalesces pending notifications into one.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[chan struct{}]struct{}
}

// New constructs an empty Broadcaster.
func New() *Broadcaster {
	return &Broadcaster{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the subscription.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// LedgerChanged signals every subscriber that the journal was written.
func (b *Broadcaster) LedgerChanged() {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default: // subscriber already has a pending signal
		}
	}
}
