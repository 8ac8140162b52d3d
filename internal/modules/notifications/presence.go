package notifications

import (
	"sync"

	"domainsmarket/internal/pkg/metrics"
)

// Presence tracks how many live connections each user currently holds. A
// user counts as online while at least one connection is open, so closing
// one of several tabs must not flip them offline. Single-process state:
// construct one per server, inject it where needed.
type Presence struct {
	mu     sync.Mutex
	counts map[int64]int
}

func NewPresence() *Presence {
	return &Presence{counts: make(map[int64]int)}
}

// MarkConnected registers one more connection for the user. Non-positive
// ids are ignored.
func (p *Presence) MarkConnected(userID int64) {
	if userID <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.counts[userID]++
	metrics.OnlineUsers.Set(float64(len(p.counts)))
}

// MarkDisconnected drops one connection and returns how many remain. The
// entry is removed when the count reaches zero; an unknown id stays a no-op
// at zero rather than going negative.
func (p *Presence) MarkDisconnected(userID int64) int {
	if userID <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	count, ok := p.counts[userID]
	if !ok {
		return 0
	}
	if count <= 1 {
		delete(p.counts, userID)
		metrics.OnlineUsers.Set(float64(len(p.counts)))
		return 0
	}
	p.counts[userID] = count - 1
	return count - 1
}

// ListOnline returns the ids of every user with at least one connection,
// in no particular order.
func (p *Presence) ListOnline() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]int64, 0, len(p.counts))
	for id := range p.counts {
		ids = append(ids, id)
	}
	return ids
}

func (p *Presence) IsOnline(userID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[userID] > 0
}
