package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"

	svec "github.com/goliatone/go-stablevec"
)

// Manager orchestrates checkpointing a vector into a Store and rebuilding a
// vector from a stored sequence. It never observes tombstones: Checkpoint
// captures occupied elements only, and Restore produces a compact vector.
type Manager[T any] struct {
	Store Store[T]
}

// Checkpoint captures the vector's occupied elements in order and saves them
// under ref with a fresh snapshot ID. Fails with svec.ErrJailed while a guard
// holds the vector — a scope must end before its state can be persisted.
func (m Manager[T]) Checkpoint(ctx context.Context, ref Ref, vec *svec.Vector[T]) (Meta, error) {
	if m.Store == nil {
		return Meta{}, ErrNoStore
	}
	values, err := vec.Values()
	if err != nil {
		return Meta{}, err
	}
	meta := Meta{
		SnapshotID: uuid.NewString(),
		UpdatedAt:  time.Now(),
	}
	return m.Store.Save(ctx, ref, values, meta)
}

// Restore loads the sequence stored under ref and rebuilds a fresh, compact
// vector from it. ok is false when nothing is stored for ref. The supplied
// vector options configure the rebuilt vector.
func (m Manager[T]) Restore(ctx context.Context, ref Ref, opts ...svec.VectorOption) (*svec.Vector[T], Meta, bool, error) {
	if m.Store == nil {
		return nil, Meta{}, false, ErrNoStore
	}
	elements, meta, ok, err := m.Store.Load(ctx, ref)
	if err != nil || !ok {
		return nil, Meta{}, false, err
	}
	vec := svec.New[T](append(opts, svec.WithCapacity(len(elements)))...)
	for _, value := range elements {
		if _, err := vec.Push(value); err != nil {
			return nil, Meta{}, false, err
		}
	}
	return vec, meta, true, nil
}
