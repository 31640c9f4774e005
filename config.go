package svec

import "github.com/goliatone/go-stablevec/pkg/events"

// VectorOption configures a vector on construction.
type VectorOption func(*vectorConfig)

type vectorConfig struct {
	capacity     int
	logger       OpLogger
	emitter      *events.Emitter
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	trace        bool
}

func applyVectorOptions(opts []VectorOption) vectorConfig {
	cfg := vectorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithCapacity pre-allocates storage for n slots.
func WithCapacity(n int) VectorOption {
	return func(cfg *vectorConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// WithEmitter attaches an event emitter used for vector lifecycle events.
func WithEmitter(emitter *events.Emitter) VectorOption {
	return func(cfg *vectorConfig) {
		cfg.emitter = emitter
	}
}

// WithEventHooks is a convenience that wires hooks through an enabled emitter
// using the default channel.
func WithEventHooks(hooks ...events.Hook) VectorOption {
	emitter := events.NewEmitter(events.Hooks(hooks), events.Config{Enabled: true})
	return func(cfg *vectorConfig) {
		cfg.emitter = emitter
	}
}

// WithEvaluator configures the predicate evaluator used by Guard.Find and
// Guard.RemoveWhere. Defaults to the expr engine when unset.
func WithEvaluator(e Evaluator) VectorOption {
	return func(cfg *vectorConfig) {
		cfg.evaluator = e
	}
}

// WithProgramCache registers a cache for compiled predicate programs.
func WithProgramCache(cache ProgramCache) VectorOption {
	return func(cfg *vectorConfig) {
		cfg.programCache = cache
	}
}

// WithFunctionRegistry configures custom functions available to predicates.
func WithFunctionRegistry(registry *FunctionRegistry) VectorOption {
	return func(cfg *vectorConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithCustomFunction registers fn under name for predicate evaluation.
func WithCustomFunction(name string, fn Function) VectorOption {
	return func(cfg *vectorConfig) {
		if cfg.functions == nil {
			cfg.functions = NewFunctionRegistry()
		}
		_ = cfg.functions.Register(name, fn)
	}
}

// WithTrace toggles per-guard operation traces, retrievable via Guard.Trace.
func WithTrace(enabled bool) VectorOption {
	return func(cfg *vectorConfig) {
		cfg.trace = enabled
	}
}
