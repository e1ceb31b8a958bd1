package gocoro

import (
	"fmt"
	"sync/atomic"
)

// Processor is the per-processor driver: it owns one Ordinator, W worker
// routines bound to an internal Channel, and reads tasks out of its
// inbound queue. Processor is translated from the original
// coro::Processor (processor_pool.h), substituting Ordinator/Channel's
// goroutine-backed mechanism for manual stack switching; its departures
// are noted on consumeTask and Run.
type Processor struct {
	ord      *Ordinator
	inbound  *inboundQueue[Task]
	internal *Channel[Task]
	workers  []int
	stop     *atomic.Bool
	logger   Logger
	id       int
}

func newProcessor(id int, inbound *inboundQueue[Task], stop *atomic.Bool, workersPerCore, stackLimit int, logger Logger) *Processor {
	p := &Processor{
		ord:     NewOrdinator(stackLimit),
		inbound: inbound,
		stop:    stop,
		logger:  logger,
		id:      id,
	}
	p.internal = NewChannel[Task](p.ord)
	p.workers = make([]int, 0, workersPerCore)
	for i := 0; i < workersPerCore; i++ {
		p.workers = append(p.workers, p.ord.Create(p.consumeTask))
	}
	return p
}

// consumeTask is the worker routine body: pop a task from the internal
// channel and run it, until the pool is stopping and both the internal
// channel and the inbound queue have drained. Translated from
// coro::Processor::ConsumeTask, with one deliberate departure: the
// original only checks the internal channel before exiting, which lets a
// worker return (and so finish, per Ordinator semantics) while its
// processor's inbound queue still holds tasks the scheduler has not yet
// had a chance to move onto the internal channel — those tasks are then
// pushed into a channel with no live taker and silently lost. Checking
// the inbound queue too keeps the worker alive until the scheduler has
// genuinely run out of work to hand it, matching spec.md's guarantee that
// every task submitted before Finalize runs exactly once.
func (p *Processor) consumeTask() {
	for {
		var t Task
		if p.internal.Pop(&t) {
			p.safeExecute(t)
		}
		if p.stop.Load() && p.internal.IsEmpty() && p.inbound.IsEmpty() {
			break
		}
	}
}

// safeExecute runs t with panic recovery, grounded in
// eventloop.Loop.safeExecute: a task that panics is logged and dropped,
// per spec.md §4.4's guidance for languages with recoverable panics. t
// receives the worker's own Ordinator, so it may call Yield to hand
// control back to the processor between steps.
func (p *Processor) safeExecute(t Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked, dropping",
				F("processor", p.id),
				F("panic", fmt.Sprintf("%v", r)),
			)
		}
	}()
	t(p.ord)
}

// Run is the scheduler loop, executed in this Processor's scheduler
// context (never inside a routine). It repeatedly visits every worker:
// move at most one task from the inbound queue into the internal channel,
// then resume that worker. Once the pool is stopping and both the inbound
// queue and the internal channel are empty, it closes the internal channel
// so idle workers return from Pop and finish. It exits once a full pass
// makes no progress — translated from coro::Processor::Run, except that the
// original also waits for a worker to have finished before closing.
func (p *Processor) Run() {
	p.logger.Info("processor starting", F("processor", p.id), F("workers", len(p.workers)))

	workDone := false
	for !workDone {
		workDone = true
		for _, w := range p.workers {
			var t Task
			if p.inbound.TryPop(&t) {
				workDone = false
				p.internal.Push(t)
			}

			if ret := p.ord.Resume(w); ret != -2 {
				workDone = false
			}

			// An idle worker waits inside Pop and never returns -2 until
			// the channel is closed, so closing must not wait for one.
			if p.stop.Load() && p.internal.IsEmpty() && p.inbound.IsEmpty() {
				p.internal.Close()
			}
		}
	}

	for _, w := range p.workers {
		p.ord.Destroy(w)
	}

	p.logger.Info("processor stopped", F("processor", p.id))
}
