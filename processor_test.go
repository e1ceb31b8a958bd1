package gocoro

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — single-threaded ordering, exercised against Processor directly
// (ProcessorPool with a single core and a single worker reduces to this).
//
// Run is started before any task is submitted, exactly like a live
// processor goroutine, and stop is only flipped once all ten tasks have
// been pushed — the real submit-then-finalize ordering, not an artificial
// stop-before-start setup.
func TestProcessor_SingleWorkerPreservesOrder(t *testing.T) {
	var stop atomic.Bool
	inbound := newInboundQueue[Task]()
	proc := newProcessor(0, inbound, &stop, 1, 0, NopLogger())

	var mu sync.Mutex
	var order []int

	done := make(chan struct{})
	go func() {
		defer close(done)
		proc.Run()
	}()

	for i := 0; i < 10; i++ {
		i := i
		inbound.Push(func(ord *Ordinator) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	stop.Store(true)
	<-done

	require.Len(t, order, 10)
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, order[i])
	}
}

// S2 — yielding interleave: with two workers on one processor, two tasks
// that Yield between steps interleave round-robin rather than running to
// completion back to back.
func TestProcessor_TwoWorkersInterleaveOnYield(t *testing.T) {
	var stop atomic.Bool
	inbound := newInboundQueue[Task]()
	proc := newProcessor(0, inbound, &stop, 2, 0, NopLogger())

	var mu sync.Mutex
	type step struct{ task, n int }
	var trace []step

	record := func(ord *Ordinator, task int) {
		for n := 0; n < 3; n++ {
			mu.Lock()
			trace = append(trace, step{task, n})
			mu.Unlock()
			if n < 2 {
				ord.Yield()
			}
		}
	}

	inbound.Push(func(ord *Ordinator) { record(ord, 0) })
	inbound.Push(func(ord *Ordinator) { record(ord, 1) })
	stop.Store(true)

	proc.Run()

	require.Len(t, trace, 6)

	var task0Steps, task1Steps, taskOrder []int
	for _, s := range trace {
		taskOrder = append(taskOrder, s.task)
		if s.task == 0 {
			task0Steps = append(task0Steps, s.n)
		} else {
			task1Steps = append(task1Steps, s.n)
		}
	}
	// Each task's own steps run in order...
	assert.Equal(t, []int{0, 1, 2}, task0Steps)
	assert.Equal(t, []int{0, 1, 2}, task1Steps)
	// ...but the two tasks interleave rather than running back to back:
	// without the Yield call above, task 0 would complete all three steps
	// before task 1 started at all.
	assert.NotEqual(t, []int{0, 0, 0, 1, 1, 1}, taskOrder)
	assert.NotEqual(t, []int{1, 1, 1, 0, 0, 0}, taskOrder)
}

func TestProcessor_PanickingTaskIsDroppedNotFatal(t *testing.T) {
	var stop atomic.Bool
	inbound := newInboundQueue[Task]()
	proc := newProcessor(0, inbound, &stop, 1, 0, NopLogger())

	var ranAfter bool
	inbound.Push(func(ord *Ordinator) { panic("boom") })
	inbound.Push(func(ord *Ordinator) { ranAfter = true })
	stop.Store(true)

	assert.NotPanics(t, func() { proc.Run() })
	assert.True(t, ranAfter)
}

func TestProcessor_QuiescenceWithNoTasks(t *testing.T) {
	var stop atomic.Bool
	inbound := newInboundQueue[Task]()
	proc := newProcessor(0, inbound, &stop, 3, 0, NopLogger())

	stop.Store(true)
	assert.NotPanics(t, func() { proc.Run() })
}
