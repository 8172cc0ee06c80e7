package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPut(t *testing.T) {
	p := New("a", "b")
	assert.Equal(t, 2, p.Size())
	assert.Equal(t, 2, p.Available())

	ctx := context.Background()
	first, err := p.Get(ctx)
	require.NoError(t, err)
	second, err := p.Get(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, []string{first, second})
	assert.Equal(t, 0, p.Available())

	require.NoError(t, p.Put(first))
	assert.Equal(t, 1, p.Available())
}

func TestPutForeignItem(t *testing.T) {
	p := New(1, 2)
	assert.ErrorIs(t, p.Put(3), ErrForeignItem)

	item, err := p.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Put(item))
	assert.ErrorIs(t, p.Put(item), ErrForeignItem, "double put")
}

func TestGetBlocksUntilPut(t *testing.T) {
	p := New(1)
	item, err := p.Get(context.Background())
	require.NoError(t, err)

	got := make(chan int)
	go func() {
		v, err := p.Get(context.Background())
		assert.NoError(t, err)
		got <- v
	}()

	select {
	case <-got:
		t.Fatal("Get returned while pool was exhausted")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, p.Put(item))
	select {
	case v := <-got:
		assert.Equal(t, 1, v)
	case <-time.After(time.Second):
		t.Fatal("Get did not return after Put")
	}
}

func TestGetContextCancelled(t *testing.T) {
	p := New(1)
	_, err := p.Get(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = p.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCancelledWaiterKeepsCapacity(t *testing.T) {
	p := New("a")
	item, err := p.Get(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, p.Put(item))
	assert.Equal(t, 1, p.Available())

	got, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", got)
	assert.Equal(t, 0, p.Available())
}

func TestConcurrentBorrowers(t *testing.T) {
	p := New(1, 2, 3)

	var inUse, maxInUse int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := p.Get(context.Background())
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inUse, 1)
			for {
				m := atomic.LoadInt32(&maxInUse)
				if n <= m || atomic.CompareAndSwapInt32(&maxInUse, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inUse, -1)
			assert.NoError(t, p.Put(item))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxInUse, int32(3))
	assert.Equal(t, 3, p.Available())
}
