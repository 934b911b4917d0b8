package shm

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/chway/chstatus"
)

// generation is one immutable dataset snapshot plus its sequence number.
type generation[T any] struct {
	data T
	seq  uint64
}

// Region holds the two coexisting generations of a dataset and the
// mutex/condition-variable pair that arbitrates swaps against in-flight
// queries. The zero value is not usable; construct with NewRegion.
type Region[T any] struct {
	// pendingMu is pending_update_mutex: held briefly by every Acquire and
	// for the whole duration of a Swap.
	pendingMu sync.Mutex
	// queryMu guards queryCount and backs cond (query_mutex).
	queryMu    sync.Mutex
	cond       *sync.Cond // no_running_queries_condition
	queryCount int

	current atomic.Pointer[generation[T]]
}

// NewRegion constructs a Region whose initial generation holds data at
// sequence 0.
func NewRegion[T any](data T) *Region[T] {
	r := &Region[T]{}
	r.cond = sync.NewCond(&r.queryMu)
	r.current.Store(&generation[T]{data: data, seq: 0})
	return r
}

// Acquire begins one query against whichever generation is current: it
// takes pending_update_mutex briefly, then query_mutex to increment
// query_count, then releases pending_update_mutex. The caller must
// invoke release exactly once when the query is done with data; release
// never blocks.
func (r *Region[T]) Acquire() (data T, seq uint64, release func()) {
	r.pendingMu.Lock()
	r.queryMu.Lock()
	r.queryCount++
	r.queryMu.Unlock()
	r.pendingMu.Unlock()

	gen := r.current.Load()
	return gen.data, gen.seq, func() {
		r.queryMu.Lock()
		r.queryCount--
		if r.queryCount == 0 {
			r.cond.Broadcast()
		}
		r.queryMu.Unlock()
	}
}

// Seq returns the current generation's sequence number, so a long-lived
// caller can detect "a writer has swapped since I last acquired" and
// reopen its facade before running the next query.
func (r *Region[T]) Seq() uint64 { return r.current.Load().seq }

// Swap installs next as the current generation once every query holding
// the previous generation has released it: the writer waits on the
// no-running-queries condition until the query count reaches zero. Swap
// holds the pending-update mutex for its whole duration, so Acquire calls
// made meanwhile block until it returns; release takes only the query
// mutex, which cond.Wait gives up while waiting, so in-flight queries can
// always finish and writers and readers cannot deadlock.
//
// If ctx is cancelled before the wait condition is satisfied, Swap returns
// ctx.Err() and next is discarded.
func (r *Region[T]) Swap(ctx context.Context, next T) error {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.queryMu.Lock()
			r.cond.Broadcast()
			r.queryMu.Unlock()
		case <-done:
		}
	}()

	r.queryMu.Lock()
	for r.queryCount > 0 {
		if err := ctx.Err(); err != nil {
			r.queryMu.Unlock()
			return err
		}
		r.cond.Wait()
	}
	defer r.queryMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	prev := r.current.Load()
	r.current.Store(&generation[T]{data: next, seq: prev.seq + 1})
	return nil
}

// SwapWithTimeout is Swap bounded by timeout, translating a timed-out wait
// into chstatus.ErrSwapTimeout.
func (r *Region[T]) SwapWithTimeout(timeout time.Duration, next T) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := r.Swap(ctx, next); err != nil {
		if ctx.Err() != nil {
			return chstatus.ErrSwapTimeout
		}
		return err
	}
	return nil
}
