package svec

import "time"

// OpLogEvent describes one guard operation for logging.
type OpLogEvent struct {
	Op       string
	Scope    string
	Slot     int
	Duration time.Duration
	Err      error
}

// OpLogger records guard operation events.
type OpLogger interface {
	LogOp(OpLogEvent)
}

// OpLoggerFunc adapts a function to OpLogger.
type OpLoggerFunc func(OpLogEvent)

// LogOp implements OpLogger.
func (f OpLoggerFunc) LogOp(event OpLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopOpLogger struct{}

func (noopOpLogger) LogOp(OpLogEvent) {}

// WithOpLogger attaches an operation logger to the vector. Every guard
// operation is logged with its duration and outcome.
func WithOpLogger(logger OpLogger) VectorOption {
	return func(cfg *vectorConfig) {
		if logger == nil {
			cfg.logger = noopOpLogger{}
			return
		}
		cfg.logger = logger
	}
}
