package gocoro

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProcessorPool owns C processors, each with its own inbound task queue
// and goroutine, and round-robin dispatches submitted tasks across them.
// Translated from coro::ProcessorPool (processor_pool.h), substituting
// golang.org/x/sync/errgroup for the manual vector of std::thread plus
// join loop — same "own C threads, join all C on Finalize" behavior.
type ProcessorPool struct {
	cores  int
	queues []*inboundQueue[Task]
	stop   atomic.Bool
	cursor atomic.Uint64
	group  *errgroup.Group
	logger Logger

	finalizeOnce sync.Once
	finalizeErr  error
}

// NewProcessorPool constructs a pool with runtime.NumCPU() processors,
// each running workersPerCore worker routines. It is equivalent to the
// original's ProcessorPool(num_workers_per_core) constructor, which
// defaults the core count to hardware_concurrency().
func NewProcessorPool(workersPerCore int, opts ...Option) (*ProcessorPool, error) {
	return NewProcessorPoolWithCores(runtime.NumCPU(), workersPerCore, opts...)
}

// NewProcessorPoolWithCores constructs a pool with an explicit core count.
func NewProcessorPoolWithCores(cores, workersPerCore int, opts ...Option) (*ProcessorPool, error) {
	if cores <= 0 {
		return nil, ErrInvalidCoreCount
	}
	if workersPerCore <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	cfg := resolvePoolOptions(opts)

	p := &ProcessorPool{
		cores:  cores,
		queues: make([]*inboundQueue[Task], cores),
		logger: cfg.logger,
	}

	g := &errgroup.Group{}
	for i := 0; i < cores; i++ {
		q := newInboundQueue[Task]()
		p.queues[i] = q
		procID := i
		g.Go(func() error {
			proc := newProcessor(procID, q, &p.stop, workersPerCore, cfg.stackLimit, p.logger)
			proc.Run()
			return nil
		})
	}
	p.group = g

	p.logger.Info("pool started", F("cores", cores), F("workers_per_core", workersPerCore))
	return p, nil
}

// AddTask dispatches t round-robin across the pool's inbound queues. The
// cursor advances before the push, so (as in the original) the very first
// task lands on queue 1 (or queue 0 when Cores == 1), not queue 0. Safe to
// call from any goroutine that is not itself running inside a task
// submitted to this pool; behavior after Finalize is undefined, matching
// the spec.
func (p *ProcessorPool) AddTask(t Task) {
	idx := p.cursor.Add(1) % uint64(p.cores)
	p.queues[idx].Push(t)
}

// Finalize flips the shared stop flag and waits for every processor to
// drain and exit. It is idempotent: the stop flag is only ever set once,
// and later calls simply wait on the same join.
func (p *ProcessorPool) Finalize() error {
	p.finalizeOnce.Do(func() {
		p.stop.Store(true)
		p.finalizeErr = p.group.Wait()
		p.logger.Info("pool finalized")
	})
	return p.finalizeErr
}
