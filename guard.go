package svec

import (
	"time"

	"github.com/google/uuid"
)

// Guard holds a vector under exclusive access for a bounded span and is the
// only path that mints or resolves Tokens. While a guard is open the vector
// rejects direct mutation and both compaction variants, so every token the
// guard hands out keeps naming the same element for the guard's whole life.
//
// Each guard carries a fresh scope identity. Tokens embed that identity and
// every token-taking operation verifies it, so a token minted by one guard
// presented to another fails with ErrForeignToken — including guards over
// different vectors that happen to be open at the same time.
type Guard[T any] struct {
	vec    *Vector[T]
	scope  uuid.UUID
	closed bool
	trace  *Trace
}

// Enter takes exclusive access of the vector and returns an open guard.
// Returns ErrJailed when another guard is already open. The caller owns the
// guard and must Close it to re-enable compaction.
func (v *Vector[T]) Enter() (*Guard[T], error) {
	if v.jailed {
		return nil, ErrJailed
	}
	v.jailed = true
	g := &Guard[T]{vec: v, scope: uuid.New()}
	if v.cfg.trace {
		g.trace = &Trace{Scope: g.scope.String()}
	}
	return g, nil
}

// Jail runs fn with an open guard and always closes it afterwards, making the
// scope boundary explicit in the call structure:
//
//	err := vec.Jail(func(g *svec.Guard[int]) error {
//		tok, _ := g.Insert(1)
//		_, err := g.Get(tok)
//		return err
//	})
//
// Tokens collected inside fn must not escape; any later use fails with
// ErrGuardClosed or ErrForeignToken.
func (v *Vector[T]) Jail(fn func(*Guard[T]) error) error {
	g, err := v.Enter()
	if err != nil {
		return err
	}
	defer g.Close()
	return fn(g)
}

// Close releases exclusive access. Closing twice is a no-op. After Close the
// guard offers no operations and none of its tokens can be resolved again.
func (g *Guard[T]) Close() error {
	if g == nil || g.closed {
		return nil
	}
	g.closed = true
	g.vec.jailed = false
	return nil
}

// Insert appends value to the vector and returns a token bound to this
// guard's scope. Insert never tombstones or reuses slots, so no earlier token
// is disturbed.
func (g *Guard[T]) Insert(value T) (Token, error) {
	start := time.Now()
	if g.closed {
		err := wrapTokenError("insert", Token{}, ErrGuardClosed)
		g.finish("insert", -1, false, start, err)
		return Token{}, err
	}
	slot := g.vec.push(value)
	g.finish("insert", slot, true, start, nil)
	return Token{slot: slot, scope: g.scope}, nil
}

// RemoveLast removes the trailing element, mirroring Vector.Pop. ok is false
// when the vector holds no elements. No token changes hands; any token that
// named the trailing element is stale afterwards. The vacated slot is
// tombstoned, never reclaimed, so its number is not reissued while this
// guard is open.
func (g *Guard[T]) RemoveLast() (value T, ok bool, err error) {
	start := time.Now()
	if g.closed {
		err = wrapTokenError("remove_last", Token{}, ErrGuardClosed)
		g.finish("remove_last", -1, false, start, err)
		return value, false, err
	}
	value, ok = g.vec.pop()
	g.finish("remove_last", -1, ok, start, nil)
	return value, ok, nil
}

// Remove tombstones the slot the token names and returns its value. Removing
// the same token twice is tolerated: the second call reports ok=false and
// touches nothing. The token is stale after a successful Remove; presenting
// it to Get or Mut fails with ErrStaleToken.
func (g *Guard[T]) Remove(tok Token) (value T, ok bool, err error) {
	start := time.Now()
	if err = g.check("remove", tok); err != nil {
		g.finish("remove", tok.slot, false, start, err)
		return value, false, err
	}
	value, ok = g.vec.remove(tok.slot)
	g.finish("remove", tok.slot, ok, start, nil)
	return value, ok, nil
}

// Get returns the element the token names. Fails with ErrStaleToken when the
// slot has been removed; a stale token never resolves to another element.
func (g *Guard[T]) Get(tok Token) (value T, err error) {
	start := time.Now()
	if err = g.check("get", tok); err != nil {
		g.finish("get", tok.slot, false, start, err)
		return value, err
	}
	if tok.slot >= len(g.vec.slots) || !g.vec.slots[tok.slot].occupied {
		err = wrapTokenError("get", tok, ErrStaleToken)
		g.finish("get", tok.slot, false, start, err)
		return value, err
	}
	g.finish("get", tok.slot, true, start, nil)
	return g.vec.slots[tok.slot].value, nil
}

// Mut returns a pointer to the element the token names so callers can mutate
// it in place. The pointer is invalidated by the next Insert on this guard;
// do not retain it across further mutations.
func (g *Guard[T]) Mut(tok Token) (*T, error) {
	start := time.Now()
	if err := g.check("mut", tok); err != nil {
		g.finish("mut", tok.slot, false, start, err)
		return nil, err
	}
	if tok.slot >= len(g.vec.slots) || !g.vec.slots[tok.slot].occupied {
		err := wrapTokenError("mut", tok, ErrStaleToken)
		g.finish("mut", tok.slot, false, start, err)
		return nil, err
	}
	g.finish("mut", tok.slot, true, start, nil)
	return &g.vec.slots[tok.slot].value, nil
}

// Len returns the number of occupied slots, or 0 after Close.
func (g *Guard[T]) Len() int {
	if g == nil || g.closed {
		return 0
	}
	return g.vec.count
}

// IsCompact reports whether the vector holds no tombstones. Returns true
// after Close.
func (g *Guard[T]) IsCompact() bool {
	if g == nil || g.closed {
		return true
	}
	return g.vec.IsCompact()
}

// Trace returns a copy of the operation trace recorded so far, or a zero
// Trace when tracing is disabled.
func (g *Guard[T]) Trace() Trace {
	if g == nil || g.trace == nil {
		return Trace{}
	}
	return g.trace.clone()
}

func (g *Guard[T]) check(op string, tok Token) error {
	if g.closed {
		return wrapTokenError(op, tok, ErrGuardClosed)
	}
	if tok.scope != g.scope {
		return wrapTokenError(op, tok, ErrForeignToken)
	}
	return nil
}

func (g *Guard[T]) finish(op string, slot int, ok bool, start time.Time, err error) {
	g.vec.opLogger().LogOp(OpLogEvent{
		Op:       op,
		Scope:    shortScope(g.scope),
		Slot:     slot,
		Duration: time.Since(start),
		Err:      err,
	})
	if g.trace != nil {
		g.trace.Ops = append(g.trace.Ops, OpRecord{
			Op:   op,
			Slot: slot,
			OK:   ok,
			At:   start,
		})
	}
}
