// Package pool implements a bounded, thread-safe pool of shared resources.
//
// Sweeps build a few simulated fabrics and let worker goroutines borrow
// them. Borrowing takes a permit from a golang.org/x/sync semaphore sized to
// the pool; a borrower that finds the pool empty waits, in arrival order,
// until another borrower puts an item back, or until its context ends. Holding more items than
// the pool has while waiting for another one deadlocks without a deadline.
package pool
