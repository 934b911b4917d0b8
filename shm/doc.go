// Package shm implements the two-generation dataset hot-swap: a writer
// prepares a new dataset region while queries keep running against the
// current one, then flips a generation counter once no query holds a
// reference to the old region. The arbitration is a pending-update mutex
// plus a query-count condition variable rather than a global reader-writer
// lock, so queries never serialize against each other.
package shm
