package snapshot

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-stablevec/internal/clone"
)

// MemoryStore is a minimal in-memory Store implementation intended for tests
// and examples. It uses Ref.Identifier() as its deterministic key and makes
// no persistence assumptions beyond that. Elements are deep copied on both
// Load and Save so stored sequences stay detached from caller mutations.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records map[string]memoryRecord[T]
}

type memoryRecord[T any] struct {
	elements []T
	meta     Meta
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{records: map[string]memoryRecord[T]{}}
}

func (s *MemoryStore[T]) Load(_ context.Context, ref Ref) ([]T, Meta, bool, error) {
	key, err := ref.Identifier()
	if err != nil {
		return nil, Meta{}, false, err
	}

	s.mu.RLock()
	record, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, false, nil
	}
	return clone.Slice(record.elements), cloneMeta(record.meta), true, nil
}

func (s *MemoryStore[T]) Save(_ context.Context, ref Ref, elements []T, meta Meta) (Meta, error) {
	key, err := ref.Identifier()
	if err != nil {
		return Meta{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.records[key]; ok && meta.ETag != "" && meta.ETag != existing.meta.ETag {
		return Meta{}, ErrETagMismatch
	}
	meta.ETag = uuid.NewString()
	s.records[key] = memoryRecord[T]{elements: clone.Slice(elements), meta: cloneMeta(meta)}
	return cloneMeta(meta), nil
}
