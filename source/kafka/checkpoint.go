package kafka

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

/* ───────────────────────── Tracker & BoundedTracker ────────────────────── */

type entry[T any] struct {
	pos        int64
	payload    T
	prev, next *entry[T]
}

// Tracker keeps an ordered ledger of in-flight payloads. Payloads may
// resolve out of order; the checkpoint only advances past a payload once
// everything tracked before it has resolved too.
type Tracker[T any] struct {
	cpPos      int64
	cpPay      *T
	head, tail *entry[T]
}

func NewTracker[T any]() *Tracker[T] { return &Tracker[T]{} }

// Track appends a payload of the given size and returns its resolve
// function. Resolving returns the highest fully-resolved payload so far.
func (t *Tracker[T]) Track(p T, size int64) func() *T {
	n := &entry[T]{payload: p, pos: size}
	if t.head == nil {
		t.head = n
	}
	if t.tail != nil {
		n.prev = t.tail
		n.pos += t.tail.pos
		t.tail.next = n
	} else {
		n.pos += t.cpPos
	}
	t.tail = n
	return func() *T {
		if n.prev != nil {
			n.prev.pos = n.pos
			n.prev.payload = n.payload
			n.prev.next = n.next
		} else {
			tmp := n.payload
			t.cpPay, t.cpPos = &tmp, n.pos
			t.head = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		} else {
			t.tail = n.prev
		}
		return t.cpPay
	}
}

func (t *Tracker[T]) Pending() int64 {
	if t.tail == nil {
		return 0
	}
	return t.tail.pos - t.cpPos
}

func (t *Tracker[T]) Highest() *T { return t.cpPay }

// BoundedTracker wraps a Tracker with a pending-size cap; Track blocks
// while the ledger is full.
type BoundedTracker[T any] struct {
	t    *Tracker[T]
	cap  int64
	cond *sync.Cond
}

func NewBoundedTracker[T any](cap int64) *BoundedTracker[T] {
	return &BoundedTracker[T]{t: NewTracker[T](), cap: cap, cond: sync.NewCond(&sync.Mutex{})}
}

// Track blocks when pending+batch exceeds the cap.
func (b *BoundedTracker[T]) Track(ctx context.Context, p T, batch int64) (func() *T, error) {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		b.cond.Broadcast()
	}()

	for pend := b.t.Pending(); pend > 0 && pend+batch > b.cap; pend = b.t.Pending() {
		b.cond.Wait()
		if err := ctx.Err(); err != nil {
			return nil, errors.New("checkpoint track context error")
		}
	}
	res := b.t.Track(p, batch)
	return func() *T {
		b.cond.L.Lock()
		defer b.cond.L.Unlock()
		r := res()
		b.cond.Broadcast()
		return r
	}, nil
}

func (b *BoundedTracker[T]) Pending() int64 { return b.t.Pending() }
func (b *BoundedTracker[T]) Highest() *T    { return b.t.Highest() }

/* ───────────────────────── Committer (commit helper) ───────────────────── */

// Committer decides *when* a driver should flush its offsets.
type Committer[T any] struct {
	bounded       *BoundedTracker[T]
	commitEveryNS int64
	lastCommitNS  int64
}

func NewCommitter[T any](cap int64, commitEvery time.Duration) *Committer[T] {
	return &Committer[T]{
		bounded:       NewBoundedTracker[T](cap),
		commitEveryNS: commitEvery.Nanoseconds(),
	}
}

// Track returns (resolveFn, err).
// After the driver has successfully emitted the payload, it must call the
// returned resolveFn(), which indicates whether a commit is now due.
func (c *Committer[T]) Track(ctx context.Context, payload T) (resolveFn func() (highest *T, shouldCommit bool), err error) {
	res, err := c.bounded.Track(ctx, payload, 1)
	if err != nil {
		return nil, err
	}
	return func() (*T, bool) {
		highest := res()
		now := time.Now().UnixNano()
		if atomic.LoadInt64(&c.lastCommitNS)+c.commitEveryNS <= now {
			atomic.StoreInt64(&c.lastCommitNS, now)
			return highest, true
		}
		return highest, false
	}, nil
}
