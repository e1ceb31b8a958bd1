package gocoro

// poolOptions holds resolved ProcessorPool construction settings. Mirrors
// eventloop/options.go's loopOptions/LoopOption/resolveLoopOptions
// pattern: an unexported settings struct, an exported functional-option
// type, and a resolver that seeds defaults then applies options in order.
type poolOptions struct {
	logger     Logger
	stackLimit int
}

// Option configures a ProcessorPool at construction time.
type Option interface {
	applyPool(*poolOptions)
}

type optionFunc func(*poolOptions)

func (f optionFunc) applyPool(o *poolOptions) { f(o) }

// WithLogger configures the structured logger used for processor and pool
// lifecycle events. The default is NopLogger.
func WithLogger(logger Logger) Option {
	return optionFunc(func(o *poolOptions) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithStackLimit configures the per-routine stack size reported by each
// processor's Ordinator (see StackLimitDefault for why this does not bound
// an actual fixed buffer under the Go runtime).
func WithStackLimit(bytes int) Option {
	return optionFunc(func(o *poolOptions) {
		if bytes > 0 {
			o.stackLimit = bytes
		}
	})
}

func resolvePoolOptions(opts []Option) *poolOptions {
	cfg := &poolOptions{
		logger:     NopLogger(),
		stackLimit: StackLimitDefault,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyPool(cfg)
	}
	return cfg
}
