// Package gocoro implements a two-level task execution engine: a fixed pool
// of goroutine-backed "processors" (the OS-thread tier) each multiplex a
// bounded group of cooperative coroutines (the tier-two "routines") over a
// single local task queue.
//
// # Architecture
//
// [ProcessorPool] owns C processors and C inbound task queues, dispatching
// [ProcessorPool.AddTask] round-robin across them. Each processor runs its
// own [Ordinator] (a per-processor coroutine scheduler) and W worker
// routines that pull tasks off a local [Channel] fed by the processor's
// scheduling loop. Coroutine primitives ([Ordinator.Create],
// [Ordinator.Resume], [Ordinator.Yield], [Ordinator.Current],
// [Ordinator.Destroy]) are available to code running inside a submitted
// task, for voluntary cooperative yielding.
//
// # Concurrency
//
// Tier one (processors) run in parallel across goroutines; tier two
// (routines within one processor) run cooperatively — only one routine, or
// the scheduler, is ever active on a given processor at a time. An
// [Ordinator] and the [Channel] values bound to it must never be touched
// from outside the processor goroutine that owns them; [AddTask] and
// [Finalize] are the only operations meant to be called across goroutines.
package gocoro
