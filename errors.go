package gocoro

import "errors"

// Standard errors returned by package gocoro.
var (
	// ErrInvalidCoreCount is returned when a ProcessorPool is constructed
	// with a non-positive core count.
	ErrInvalidCoreCount = errors.New("gocoro: core count must be positive")

	// ErrInvalidWorkerCount is returned when a ProcessorPool is
	// constructed with a non-positive workers-per-core count.
	ErrInvalidWorkerCount = errors.New("gocoro: workers-per-core count must be positive")

	// ErrPoolFinalized reports that a pool has already been finalized. No
	// operation in this package returns it: AddTask has no error result,
	// and its effect after Finalize is undefined.
	ErrPoolFinalized = errors.New("gocoro: pool has been finalized")
)
