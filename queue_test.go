package gocoro

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInboundQueue_FIFO(t *testing.T) {
	q := newInboundQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	var out int
	assert.True(t, q.TryPop(&out))
	assert.Equal(t, 1, out)
	assert.True(t, q.TryPop(&out))
	assert.Equal(t, 2, out)
	assert.True(t, q.TryPop(&out))
	assert.Equal(t, 3, out)
}

func TestInboundQueue_TryPopEmpty(t *testing.T) {
	q := newInboundQueue[int]()
	var out int
	assert.False(t, q.TryPop(&out))
}

func TestInboundQueue_ConcurrentPushTryPop(t *testing.T) {
	q := newInboundQueue[int]()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(v int) {
			defer wg.Done()
			q.Push(v)
		}(i)
	}
	wg.Wait()

	seen := 0
	var out int
	for q.TryPop(&out) {
		seen++
	}
	assert.Equal(t, n, seen)
}
