package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-stablevec/internal/codec"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore[record]()
	ref := Ref{Name: "encoded"}

	_, err := store.Save(context.Background(), ref, []record{{Name: "a"}, {Name: "b"}}, Meta{SnapshotID: "snap-json"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	elements, meta, ok, err := store.Load(context.Background(), ref)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(elements) != 2 || elements[0].Name != "a" || elements[1].Name != "b" {
		t.Fatalf("unexpected elements: %+v", elements)
	}
	if meta.SnapshotID != "snap-json" {
		t.Fatalf("expected snapshot id preserved, got %q", meta.SnapshotID)
	}
}

func TestJSONStoreETagConflict(t *testing.T) {
	store := NewJSONStore[int]()
	ref := Ref{Name: "conflict"}

	first, err := store.Save(context.Background(), ref, []int{1}, Meta{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Save(context.Background(), ref, []int{2}, Meta{ETag: "stale"}); !errors.Is(err, ErrETagMismatch) {
		t.Fatalf("expected ErrETagMismatch, got %v", err)
	}
	if _, err := store.Save(context.Background(), ref, []int{2}, Meta{ETag: first.ETag}); err != nil {
		t.Fatalf("conditional save: %v", err)
	}
}

func TestJSONStoreDecoderHooks(t *testing.T) {
	var preSeen, postSeen bool
	decoder := codec.NewDecoder[[]record](
		codec.WithPreHook[[]record](func(ctx codec.Context, payload []byte) ([]byte, error) {
			preSeen = true
			return bytes.ReplaceAll(payload, []byte(`"legacy"`), []byte(`"a"`)), nil
		}),
		codec.WithPostHook[[]record](func(ctx codec.Context, elements *[]record) error {
			postSeen = true
			if len(*elements) == 0 {
				return fmt.Errorf("empty sequence for %q", ctx.Name)
			}
			return nil
		}),
	)
	store := NewJSONStore[record](JSONWithDecoder[record](decoder))
	ref := Ref{Name: "hooked"}

	if _, err := store.Save(context.Background(), ref, []record{{Name: "legacy"}}, Meta{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	elements, _, ok, err := store.Load(context.Background(), ref)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !preSeen || !postSeen {
		t.Fatalf("expected both hooks to run: pre=%v post=%v", preSeen, postSeen)
	}
	if elements[0].Name != "a" {
		t.Fatalf("pre-hook rewrite not applied: %+v", elements)
	}
}
