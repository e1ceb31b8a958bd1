package gocoro

import "fmt"

// StackLimitDefault is the default per-routine stack size, in bytes, per
// spec §6. Go's runtime grows goroutine stacks on demand, so this value
// bounds nothing directly; it is retained purely so callers configuring an
// [Ordinator] have the same knob the original coroutine runtime exposed,
// and so [Ordinator.StackSize] reports something meaningful.
const StackLimitDefault = 1 << 20

// routine is one cooperative execution: a user function, a pair of baton
// channels used to hand control back and forth with the owning Ordinator,
// and a finished flag.
//
// resumeCh carries the "run" baton into the routine's goroutine; doneCh
// carries it back out, on every Yield and on completion. Because both
// channels are unbuffered, whichever side is not the current holder of the
// baton is necessarily blocked on a channel receive — this is what gives
// the symmetric switching property the spec requires without any manual
// stack manipulation.
type routine struct {
	fn       func()
	started  bool
	finished bool
	resumeCh chan struct{}
	doneCh   chan struct{}
	panicked bool
	panicVal any
}

// Ordinator is the per-processor coroutine scheduler: an indexed table of
// routines, a free list for slot reuse, and the id of whichever routine is
// currently running (0 meaning the scheduler context itself is running).
//
// An Ordinator is not safe for concurrent use. It is owned by exactly one
// processor goroutine for its entire life, matching the thread-local
// discipline the spec requires of the original Ordinator.
type Ordinator struct {
	routines  []*routine
	freeList  []int
	current   int
	stackSize int
}

// NewOrdinator constructs an Ordinator using stackSize as the reported
// StackSize (see StackLimitDefault). A stackSize of 0 selects the default.
func NewOrdinator(stackSize int) *Ordinator {
	if stackSize <= 0 {
		stackSize = StackLimitDefault
	}
	return &Ordinator{stackSize: stackSize}
}

// StackSize returns the configured per-routine stack size.
func (o *Ordinator) StackSize() int { return o.stackSize }

// Create registers fn as a new routine and returns its 1-based id. A
// vacant slot from a prior Destroy is reused (lowest index first) before
// the routine table grows. No goroutine is started yet — that happens on
// the first Resume.
func (o *Ordinator) Create(fn func()) int {
	r := &routine{fn: fn, resumeCh: make(chan struct{}), doneCh: make(chan struct{})}
	if n := len(o.freeList); n > 0 {
		low := 0
		for i, v := range o.freeList {
			if v < o.freeList[low] {
				low = i
			}
		}
		id := o.freeList[low]
		o.freeList = append(o.freeList[:low], o.freeList[low+1:]...)
		if o.routines[id-1] != nil {
			panic(fmt.Sprintf("gocoro: slot %d in free list is occupied", id))
		}
		o.routines[id-1] = r
		return id
	}
	o.routines = append(o.routines, r)
	return len(o.routines)
}

// Resume transfers control to routine id. It must only be called from the
// scheduler context (Current() == 0); calling it from inside a running
// routine is a programming error and panics, matching the fatal assertion
// in the original runtime.
//
// Returns -1 if id names a vacant slot, -2 if the routine has already
// finished, or 0 after the routine yields or completes.
func (o *Ordinator) Resume(id int) int {
	if o.current != 0 {
		panic("gocoro: Resume called from inside a routine context")
	}
	if id < 1 || id > len(o.routines) {
		return -1
	}
	r := o.routines[id-1]
	if r == nil {
		return -1
	}
	if r.finished {
		return -2
	}

	o.current = id
	if !r.started {
		r.started = true
		go o.run(id, r)
	} else {
		r.resumeCh <- struct{}{}
	}
	<-r.doneCh
	o.current = 0

	if r.panicked {
		r.panicked = false
		panic(r.panicVal)
	}
	return 0
}

// run is the entry trampoline: it executes the routine's function to
// completion, then marks it finished and hands the baton back. A panic
// raised directly by fn (as opposed to one a caller like Processor already
// recovers at the task boundary) — including the assertion panics raised
// by a misuse of Resume/Yield/Destroy from within the routine — is
// recovered here and re-raised inside the corresponding Resume call, so it
// surfaces synchronously in the scheduler goroutine rather than crashing
// an unrelated goroutine.
func (o *Ordinator) run(id int, r *routine) {
	defer func() {
		r.finished = true
		if rec := recover(); rec != nil {
			r.panicVal = rec
			r.panicked = true
		}
		r.doneCh <- struct{}{}
	}()
	r.fn()
}

// Yield suspends the calling routine, returning control to the scheduler
// context. The next Resume(id) for this routine continues immediately
// after the Yield call. Calling Yield from the scheduler context (i.e.
// when no routine is running) is a programming error and panics.
func (o *Ordinator) Yield() {
	id := o.current
	if id == 0 {
		panic("gocoro: Yield called from the scheduler context")
	}
	r := o.routines[id-1]
	r.doneCh <- struct{}{}
	<-r.resumeCh
}

// Current returns the id of the routine presently executing, or 0 if the
// scheduler context is running.
func (o *Ordinator) Current() int { return o.current }

// Destroy releases the routine in slot id and returns the id to the free
// list for reuse by a later Create. Destroying a vacant slot is a
// programming error and panics.
func (o *Ordinator) Destroy(id int) {
	if id < 1 || id > len(o.routines) || o.routines[id-1] == nil {
		panic(fmt.Sprintf("gocoro: Destroy called on vacant slot %d", id))
	}
	o.routines[id-1] = nil
	o.freeList = append(o.freeList, id)
}
