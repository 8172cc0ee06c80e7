package pool

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrForeignItem is returned by Put for an item that was not borrowed
// from the pool
var ErrForeignItem = errors.New("item does not belong to the pool")

// Pool hands out a fixed set of shared resources, one borrower at a time.
// Get blocks while every item is borrowed; waiters are served in arrival
// order.
type Pool[T comparable] struct {
	sem *semaphore.Weighted

	mu       sync.Mutex
	free     []T
	borrowed map[T]bool
	size     int
}

// New creates a pool over items
func New[T comparable](items ...T) *Pool[T] {
	p := &Pool[T]{
		sem:      semaphore.NewWeighted(int64(len(items))),
		free:     make([]T, len(items)),
		borrowed: make(map[T]bool, len(items)),
		size:     len(items),
	}
	copy(p.free, items)
	return p
}

// Get borrows an item, waiting until one is returned if necessary. It
// returns ctx.Err() if the context ends first.
func (p *Pool[T]) Get(ctx context.Context) (T, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		var zero T
		return zero, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Holding a permit guarantees a free item
	n := len(p.free)
	item := p.free[n-1]
	p.free = p.free[:n-1]
	p.borrowed[item] = true
	return item, nil
}

// Put returns a borrowed item to the pool
func (p *Pool[T]) Put(item T) error {
	p.mu.Lock()
	if !p.borrowed[item] {
		p.mu.Unlock()
		return ErrForeignItem
	}
	delete(p.borrowed, item)
	p.free = append(p.free, item)
	p.mu.Unlock()

	p.sem.Release(1)
	return nil
}

// Size returns the number of items managed by the pool
func (p *Pool[T]) Size() int {
	return p.size
}

// Available returns the number of items that are not borrowed
func (p *Pool[T]) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
