package svec

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoEvaluator = errors.New("svec: evaluator not configured")

// Find evaluates expression as a boolean predicate against every occupied
// element and returns tokens for the elements that match. The expression sees
// the element as `value` (map elements additionally expose their keys
// directly), its slot number as `slot`, plus `now`, `args`, and `metadata`.
// A predicate that yields a non-boolean result is an error.
func (g *Guard[T]) Find(expression string) ([]Token, error) {
	start := time.Now()
	tokens, err := g.find(expression)
	g.vec.opLogger().LogOp(OpLogEvent{
		Op:       "find",
		Scope:    shortScope(g.scope),
		Slot:     -1,
		Duration: time.Since(start),
		Err:      err,
	})
	return tokens, err
}

// RemoveWhere tombstones every element matching expression and returns the
// removed values in slot order. Tokens previously minted for those elements
// are stale afterwards.
func (g *Guard[T]) RemoveWhere(expression string) ([]T, error) {
	tokens, err := g.Find(expression)
	if err != nil {
		return nil, err
	}
	removed := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		value, ok, err := g.Remove(tok)
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, value)
		}
	}
	return removed, nil
}

func (g *Guard[T]) find(expression string) ([]Token, error) {
	if expression == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	if g.closed {
		return nil, ErrGuardClosed
	}
	evaluator, err := g.vec.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	predicate, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}

	engine := evaluatorEngineName(evaluator)
	var tokens []Token
	for slot := range g.vec.slots {
		if !g.vec.slots[slot].occupied {
			continue
		}
		ctx := PredicateContext{
			Value: g.vec.slots[slot].value,
			Slot:  slot,
		}
		result, err := predicate.Evaluate(ctx)
		if err != nil {
			return nil, wrapEvaluationError(engine, expression, slot, err)
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, wrapEvaluationError(engine, expression, slot,
				fmt.Errorf("predicate must evaluate to bool, got %T", result))
		}
		if matched {
			tokens = append(tokens, Token{slot: slot, scope: g.scope})
		}
	}
	return tokens, nil
}

func (v *Vector[T]) resolveEvaluator() (Evaluator, error) {
	if v.cfg.evaluator != nil {
		return v.cfg.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := v.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := v.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	v.cfg.evaluator = defaultEvaluator
	return defaultEvaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*svec.exprEvaluator":
		return "expr"
	case "*svec.celEvaluator":
		return "cel"
	case "*svec.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
