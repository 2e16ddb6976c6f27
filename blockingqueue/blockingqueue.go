package blockingqueue

import (
	"context"
	"fmt"
	"sync"

	base "github.com/xyhelper/boundedqueue"
)

// Queue is a bounded, blocking, concurrency-safe FIFO built on
// boundedqueue.Buffer. Put blocks while the queue is full, Take blocks while
// it is empty, and every successful Put or Take wakes all goroutines parked on
// the opposite side.
//
// All methods are safe for concurrent use by multiple goroutines. A Queue must
// not be copied after first use.
type Queue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	buf      *base.Buffer[T]
	closed   bool
	stats    Stats
}

// Stats is a snapshot of a queue's diagnostic counters.
type Stats struct {
	// Puts and Takes count successful operations, including TryPut/TryTake.
	// Drain is not counted.
	Puts, Takes uint64
	// PutWaits and TakeWaits count how many times a caller parked.
	PutWaits, TakeWaits uint64
	// HighWater is the maximum depth observed.
	HighWater int
}

// New creates a queue holding at most capacity elements.
// Returns ErrInvalidCapacity if capacity <= 0.
func New[T any](capacity int) (*Queue[T], error) {
	buf, err := base.NewBuffer[T](capacity)
	if err != nil {
		return nil, err
	}
	q := &Queue[T]{buf: buf}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[T any](capacity int) *Queue[T] {
	q, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

// Put appends v to the tail, blocking while the queue is full.
//
// Returns ErrClosed if the queue is closed before or while waiting. If ctx
// ends while waiting, returns an error matching both ErrCanceled and
// ctx.Err(); the queue is left unchanged. ctx is only consulted when Put would
// block, a Put into a queue with free space always succeeds. A nil ctx is
// treated as context.Background().
func (q *Queue[T]) Put(ctx context.Context, v T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.wait(ctx, q.notFull, q.buf.IsFull, &q.stats.PutWaits); err != nil {
		return err
	}
	q.push(v)
	return nil
}

// Take removes and returns the head element, blocking while the queue is
// empty.
//
// Returns ErrClosed if the queue is closed before or while waiting, even if
// elements remain (see Drain). Cancellation follows the same rules as Put.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.wait(ctx, q.notEmpty, q.buf.IsEmpty, &q.stats.TakeWaits); err != nil {
		var zero T
		return zero, err
	}
	return q.pop(), nil
}

// TryPut appends v only if there is free space, without blocking.
// Returns false when full, or ErrClosed when closed.
func (q *Queue[T]) TryPut(v T) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false, ErrClosed
	}
	if q.buf.IsFull() {
		return false, nil
	}
	q.push(v)
	return true, nil
}

// TryTake removes and returns the head element without blocking.
// ok is false when empty; err is ErrClosed when closed.
func (q *Queue[T]) TryTake() (v T, ok bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return v, false, ErrClosed
	}
	if q.buf.IsEmpty() {
		return v, false, nil
	}
	return q.pop(), true, nil
}

// Close transitions the queue to the closed state and wakes every parked
// Put and Take, which then return ErrClosed. Subsequent calls to Put, Take,
// TryPut and TryTake also return ErrClosed. Reports whether this call closed
// the queue; closing twice is a no-op.
func (q *Queue[T]) Close() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.closed = true
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
	return true
}

// Drain removes and returns all elements in FIFO order, without blocking.
// It works in any state, including after Close.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.buf.ToSlice()
	if len(out) > 0 {
		q.buf.Clear()
		q.notFull.Broadcast()
	}
	return out
}

// Len returns the number of elements currently queued. The value is a
// snapshot and may be stale by the time it is used.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.buf.Len()
	q.mu.Unlock()
	return n
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	// capacity never changes, no lock needed
	return q.buf.Cap()
}

// State returns a snapshot of the queue's state.
func (q *Queue[T]) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	switch {
	case q.closed:
		return StateClosed
	case q.buf.IsEmpty():
		return StateEmpty
	case q.buf.IsFull():
		return StateFull
	default:
		return StatePartial
	}
}

// Stats returns a snapshot of the diagnostic counters.
func (q *Queue[T]) Stats() Stats {
	q.mu.Lock()
	s := q.stats
	q.mu.Unlock()
	return s
}

// wait parks on c until blocked reports false. It must be called with q.mu
// held, and returns with q.mu held.
func (q *Queue[T]) wait(ctx context.Context, c *sync.Cond, blocked func() bool, waits *uint64) error {
	var stop func() bool
	defer func() {
		if stop != nil {
			stop()
		}
	}()
	for {
		if q.closed {
			return ErrClosed
		}
		if !blocked() {
			return nil
		}
		if stop == nil && ctx.Done() != nil {
			// Registered before the ctx check below. If ctx ends after that
			// check, the callback blocks on q.mu until c.Wait releases it, so
			// the broadcast cannot be lost.
			stop = context.AfterFunc(ctx, func() {
				q.mu.Lock()
				c.Broadcast()
				q.mu.Unlock()
			})
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}
		*waits++
		c.Wait()
	}
}

func (q *Queue[T]) push(v T) {
	q.buf.Push(v)
	q.stats.Puts++
	if n := q.buf.Len(); n > q.stats.HighWater {
		q.stats.HighWater = n
	}
	q.notEmpty.Broadcast()
}

func (q *Queue[T]) pop() T {
	v, _ := q.buf.Pop()
	q.stats.Takes++
	q.notFull.Broadcast()
	return v
}
