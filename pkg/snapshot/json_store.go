package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-stablevec/internal/codec"
)

// JSONStoreOption configures a JSONStore instance.
type JSONStoreOption[T any] func(*JSONStore[T])

// JSONWithDecoder replaces the default payload decoder, letting callers
// attach codec hooks for payloads written by older versions.
func JSONWithDecoder[T any](decoder *codec.Decoder[[]T]) JSONStoreOption[T] {
	return func(s *JSONStore[T]) {
		if decoder != nil {
			s.decoder = decoder
		}
	}
}

// JSONStore keeps sequences as encoded JSON payloads, decoding them through
// the codec hooks on Load. It demonstrates a Store whose persisted form is a
// byte payload rather than live values; swapping the byte map for a file or
// object store does not change the Store contract.
type JSONStore[T any] struct {
	mu       sync.RWMutex
	payloads map[string]jsonRecord
	decoder  *codec.Decoder[[]T]
}

type jsonRecord struct {
	payload []byte
	meta    Meta
}

func NewJSONStore[T any](opts ...JSONStoreOption[T]) *JSONStore[T] {
	s := &JSONStore[T]{
		payloads: map[string]jsonRecord{},
		decoder:  codec.NewDecoder[[]T](),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *JSONStore[T]) Load(_ context.Context, ref Ref) ([]T, Meta, bool, error) {
	key, err := ref.Identifier()
	if err != nil {
		return nil, Meta{}, false, err
	}

	s.mu.RLock()
	record, ok := s.payloads[key]
	s.mu.RUnlock()
	if !ok {
		return nil, Meta{}, false, nil
	}

	elements, err := s.decoder.Decode(codec.Context{Name: ref.Name}, record.payload)
	if err != nil {
		return nil, Meta{}, false, err
	}
	return elements, cloneMeta(record.meta), true, nil
}

func (s *JSONStore[T]) Save(_ context.Context, ref Ref, elements []T, meta Meta) (Meta, error) {
	key, err := ref.Identifier()
	if err != nil {
		return Meta{}, err
	}

	payload, err := json.Marshal(elements)
	if err != nil {
		return Meta{}, fmt.Errorf("snapshot: encode %q: %w", ref.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.payloads[key]; ok && meta.ETag != "" && meta.ETag != existing.meta.ETag {
		return Meta{}, ErrETagMismatch
	}
	meta.ETag = uuid.NewString()
	s.payloads[key] = jsonRecord{payload: payload, meta: cloneMeta(meta)}
	return cloneMeta(meta), nil
}
