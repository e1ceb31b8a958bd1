package gocoro

import (
	"io"
	"os"

	"github.com/joeycumines/go-utilpkg/logiface"
	"github.com/joeycumines/go-utilpkg/logiface/stumpy"
)

// Logger is the structured-logging seam used throughout this package,
// generalizing eventloop/logging.go's package-level "swappable logger"
// design into a constructor-injected dependency — appropriate here
// because a ProcessorPool is a first-class value rather than a process-wide
// singleton. Only lifecycle events are logged: processor start/stop, pool
// construction/Finalize, and dropped (panicking) tasks — never anything
// about task content, matching spec.md's "no observability beyond what
// tasks themselves emit" as a boundary on the engine's external surface.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// F constructs a Field.
func F(key string, value any) Field { return Field{Key: key, Value: value} }

// NopLogger returns a Logger that discards everything, the default for a
// ProcessorPool constructed without WithLogger — matching the teacher's
// NewNoOpLogger default (no forced stderr noise for library consumers).
func NopLogger() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

// stumpyLogger adapts a *logiface.Logger[*stumpy.Event] — the teacher's own
// logging dependency and its companion zero-dependency JSON backend — to
// the Logger interface.
type stumpyLogger struct {
	l *logiface.Logger[*stumpy.Event]
}

// NewLogger constructs a Logger backed by logiface+stumpy, writing
// newline-delimited JSON events to w (os.Stderr if w is nil).
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &stumpyLogger{
		l: logiface.New[*stumpy.Event](stumpy.WithStumpy(stumpy.WithWriter(w))),
	}
}

func (s *stumpyLogger) Info(msg string, fields ...Field) { logWith(s.l.Info(), msg, fields) }
func (s *stumpyLogger) Warn(msg string, fields ...Field) { logWith(s.l.Warning(), msg, fields) }
func (s *stumpyLogger) Error(msg string, fields ...Field) { logWith(s.l.Err(), msg, fields) }

func logWith(b *logiface.Builder[*stumpy.Event], msg string, fields []Field) {
	for _, f := range fields {
		b = b.Any(f.Key, f.Value)
	}
	b.Log(msg)
}
