package svec

import (
	"errors"
	"fmt"
	"strings"
)

// EvaluationError captures evaluator metadata alongside the originating error.
// Slot is -1 when the failing slot is not known.
type EvaluationError struct {
	Engine string
	Expr   string
	Slot   int
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("svec: %s evaluator %s slot=%d: %v", e.Engine, describeExpression(e.Expr), e.Slot, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "svec:") {
		return err
	}
	return fmt.Errorf("svec: %s evaluator: %w", engine, err)
}

func wrapEvaluationError(engine, expr string, slot int, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Expr == "" {
			evalErr.Expr = expr
		}
		if evalErr.Slot < 0 && slot >= 0 {
			evalErr.Slot = slot
		}
		return evalErr
	}

	return &EvaluationError{
		Engine: engine,
		Expr:   expr,
		Slot:   slot,
		Err:    err,
	}
}
