package kafka

import (
	"context"
	"sync"
	"time"
)

// Limiter bounds how many frames may be unresolved at once. Tokens are
// taken per emitted frame, returned on ack, and topped up on a timer so a
// stalled downstream cannot starve the consumer forever in auto mode.
type Limiter struct {
	capacity int64
	refill   int64

	mu     sync.Mutex
	tokens int64
	cond   *sync.Cond
	closed bool
}

func NewLimiter(cap, refill int64, tick time.Duration) *Limiter {
	l := &Limiter{
		capacity: cap,
		refill:   refill,
		tokens:   cap,
	}
	l.cond = sync.NewCond(&l.mu)

	go func() {
		t := time.NewTicker(tick)
		for range t.C {
			l.mu.Lock()
			if l.closed {
				l.mu.Unlock()
				return
			}
			l.tokens += l.refill
			if l.tokens > l.capacity {
				l.tokens = l.capacity
			}
			l.mu.Unlock()
			l.cond.Broadcast()
		}
	}()
	return l
}

func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	for l.tokens == 0 && ctx.Err() == nil {
		l.cond.Wait()
	}
	if ctx.Err() != nil {
		l.mu.Unlock()
		return ctx.Err()
	}
	l.tokens--
	l.mu.Unlock()
	return nil
}

func (l *Limiter) TryAcquire(n int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tokens < n {
		return false
	}
	l.tokens -= n
	return true
}

func (l *Limiter) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.cond.Broadcast()
}

func (l *Limiter) Release(n int64) {
	l.mu.Lock()
	l.tokens += n
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}
	l.mu.Unlock()
	l.cond.Broadcast()
}
