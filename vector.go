package svec

import (
	"context"

	"github.com/goliatone/go-stablevec/pkg/events"
)

type slotEntry[T any] struct {
	value    T
	occupied bool
}

// Vector is a growable sequence whose slot numbers stay stable across
// removals. Removing an element leaves a tombstone in place; slot numbers
// only change when one of the compaction methods reclaims tombstones.
//
// Direct mutation and compaction require exclusive access: while a Guard
// obtained via Enter or Jail is open, every mutating method returns
// ErrJailed. That exclusion is what makes guard-minted tokens safe — no
// compaction can renumber slots while a token that names one is live.
//
// Vector is not safe for concurrent use.
type Vector[T any] struct {
	slots  []slotEntry[T]
	count  int
	jailed bool
	cfg    vectorConfig
}

// New constructs an empty vector.
func New[T any](opts ...VectorOption) *Vector[T] {
	cfg := applyVectorOptions(opts)
	v := &Vector[T]{cfg: cfg}
	if cfg.capacity > 0 {
		v.slots = make([]slotEntry[T], 0, cfg.capacity)
	}
	return v
}

// Push appends value as a newly occupied slot and returns its slot number.
// Returns ErrJailed while a guard is open; use Guard.Insert instead.
func (v *Vector[T]) Push(value T) (int, error) {
	if v.jailed {
		return 0, ErrJailed
	}
	return v.push(value), nil
}

// Pop removes the trailing element. When the trailing element does not sit in
// the physically last slot its removal leaves a tombstone; otherwise storage
// shrinks. ok is false when the vector holds no elements.
func (v *Vector[T]) Pop() (value T, ok bool, err error) {
	if v.jailed {
		return value, false, ErrJailed
	}
	value, ok = v.pop()
	return value, ok, nil
}

// Remove tombstones the given slot and returns its value. ok is false when
// the slot is out of range or already empty; removing twice is a no-op.
func (v *Vector[T]) Remove(slot int) (value T, ok bool, err error) {
	if v.jailed {
		return value, false, ErrJailed
	}
	value, ok = v.remove(slot)
	return value, ok, nil
}

// NumElements returns the number of occupied slots.
func (v *Vector[T]) NumElements() int {
	return v.count
}

// NumSlots returns the total storage length, tombstones included.
func (v *Vector[T]) NumSlots() int {
	return len(v.slots)
}

// IsCompact reports whether the vector holds no tombstones.
func (v *Vector[T]) IsCompact() bool {
	return v.count == len(v.slots)
}

// Compact removes every tombstone while preserving the relative order of the
// surviving elements. Slot numbers handed out before Compact may now name a
// different element or nothing at all, which is why compaction is rejected
// with ErrJailed while any guard is open.
func (v *Vector[T]) Compact() error {
	if v.jailed {
		return ErrJailed
	}
	if v.IsCompact() {
		return nil
	}
	next := 0
	for i := range v.slots {
		if !v.slots[i].occupied {
			continue
		}
		if next != i {
			v.slots[next] = v.slots[i]
		}
		next++
	}
	v.truncate(next)
	v.emit(events.VerbCompact, -1)
	return nil
}

// ReorderingCompact removes every tombstone by moving trailing survivors into
// the gaps, minimizing moves at the cost of element order.
func (v *Vector[T]) ReorderingCompact() error {
	if v.jailed {
		return ErrJailed
	}
	if v.IsCompact() {
		return nil
	}
	i, j := 0, len(v.slots)-1
	for i < j {
		switch {
		case v.slots[i].occupied:
			i++
		case !v.slots[j].occupied:
			j--
		default:
			v.slots[i] = v.slots[j]
			v.slots[j] = slotEntry[T]{}
			i++
			j--
		}
	}
	v.truncate(v.count)
	v.emit(events.VerbReorderingCompact, -1)
	return nil
}

// IntoSlice drains the vector into a plain ordered slice of its occupied
// elements, leaving the vector empty.
func (v *Vector[T]) IntoSlice() ([]T, error) {
	if v.jailed {
		return nil, ErrJailed
	}
	out := make([]T, 0, v.count)
	for i := range v.slots {
		if v.slots[i].occupied {
			out = append(out, v.slots[i].value)
		}
	}
	v.slots = nil
	v.count = 0
	v.emit(events.VerbDrain, -1)
	return out, nil
}

// Values returns an ordered copy of the occupied elements without modifying
// the vector.
func (v *Vector[T]) Values() ([]T, error) {
	if v.jailed {
		return nil, ErrJailed
	}
	out := make([]T, 0, v.count)
	for i := range v.slots {
		if v.slots[i].occupied {
			out = append(out, v.slots[i].value)
		}
	}
	return out, nil
}

func (v *Vector[T]) push(value T) int {
	v.slots = append(v.slots, slotEntry[T]{value: value, occupied: true})
	v.count++
	slot := len(v.slots) - 1
	v.emit(events.VerbInsert, slot)
	return slot
}

func (v *Vector[T]) pop() (T, bool) {
	for i := len(v.slots) - 1; i >= 0; i-- {
		if !v.slots[i].occupied {
			continue
		}
		value := v.slots[i].value
		// While a guard is open storage must not shrink: a reclaimed slot
		// number could be reissued by a later insert and an old token would
		// resolve to the wrong element. Tombstone instead.
		if i == len(v.slots)-1 && !v.jailed {
			v.slots = v.slots[:i]
		} else {
			v.slots[i] = slotEntry[T]{}
		}
		v.count--
		v.emit(events.VerbRemoveLast, i)
		return value, true
	}
	var zero T
	return zero, false
}

func (v *Vector[T]) remove(slot int) (T, bool) {
	var zero T
	if slot < 0 || slot >= len(v.slots) || !v.slots[slot].occupied {
		return zero, false
	}
	value := v.slots[slot].value
	v.slots[slot] = slotEntry[T]{}
	v.count--
	v.emit(events.VerbRemove, slot)
	return value, true
}

func (v *Vector[T]) truncate(n int) {
	for i := n; i < len(v.slots); i++ {
		v.slots[i] = slotEntry[T]{}
	}
	v.slots = v.slots[:n]
}

// emit forwards a lifecycle event to the configured emitter. Emission is
// best-effort: failures are logged, never surfaced to the caller.
func (v *Vector[T]) emit(verb string, slot int) {
	if !v.cfg.emitter.Enabled() {
		return
	}
	err := v.cfg.emitter.Emit(context.Background(), events.Event{
		Verb:       verb,
		ObjectType: events.ObjectSlot,
		Slot:       slot,
	})
	if err != nil {
		v.opLogger().LogOp(OpLogEvent{Op: "emit:" + verb, Slot: slot, Err: err})
	}
}

func (v *Vector[T]) opLogger() OpLogger {
	if v.cfg.logger != nil {
		return v.cfg.logger
	}
	return noopOpLogger{}
}
