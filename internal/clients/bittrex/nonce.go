package bittrex

import (
	"sync/atomic"
	"time"
)

// nonceSource hands out strictly increasing nonces derived from the wall clock.
// If the clock does not advance between two calls the previous value plus one is used.
type nonceSource struct {
	last atomic.Int64
	now  func() time.Time
}

func newNonceSource(now func() time.Time) *nonceSource {
	if now == nil {
		now = time.Now
	}

	return &nonceSource{now: now}
}

func (n *nonceSource) Next() int64 {
	for {
		last := n.last.Load()
		next := n.now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
