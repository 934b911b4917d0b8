package facade

import (
	"context"

	"github.com/katalvlaran/chway/shm"
)

// SharedMemoryFacade is the query-side handle onto a hot-swappable
// dataset. Every query acquires the current generation, reads through it,
// and releases; a new dataset swaps in without blocking in-flight
// queries.
type SharedMemoryFacade struct {
	region *shm.Region[*Dataset]
}

// NewSharedMemoryFacade wraps an already-loaded Dataset as generation 0.
func NewSharedMemoryFacade(initial *Dataset) *SharedMemoryFacade {
	return &SharedMemoryFacade{region: shm.NewRegion[*Dataset](initial)}
}

// QueryHandle is one query's borrowed reference to a dataset generation.
// Release must be called exactly once when the query is done reading.
type QueryHandle struct {
	Dataset *Dataset
	Seq     uint64
	Release func()
}

// Acquire borrows the current generation for the duration of one query.
func (f *SharedMemoryFacade) Acquire() QueryHandle {
	data, seq, release := f.region.Acquire()
	return QueryHandle{Dataset: data, Seq: seq, Release: release}
}

// Swap installs a newly loaded dataset as the next generation, waiting for
// every query holding the previous one to release it.
func (f *SharedMemoryFacade) Swap(ctx context.Context, next *Dataset) error {
	return f.region.Swap(ctx, next)
}

// Generation returns the currently installed generation's sequence number.
func (f *SharedMemoryFacade) Generation() uint64 { return f.region.Seq() }
