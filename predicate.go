package svec

import "time"

// PredicateContext carries inputs needed when evaluating a predicate against
// one element of the vector.
type PredicateContext struct {
	Value    any
	Slot     int
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx PredicateContext) withDefaultNow() PredicateContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx PredicateContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx PredicateContext) withDefaults() PredicateContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx PredicateContext) withDefaultMaps() PredicateContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// Evaluator executes predicate expressions against an element context.
type Evaluator interface {
	Evaluate(ctx PredicateContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledPredicate, error)
}

// CompiledPredicate represents a reusable expression program.
type CompiledPredicate interface {
	Evaluate(ctx PredicateContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}
