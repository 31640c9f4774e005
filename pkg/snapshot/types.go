package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNameRequired indicates a Ref with an empty name.
	ErrNameRequired = errors.New("snapshot: ref name must be provided")
	// ErrETagMismatch indicates an optimistic-concurrency conflict on Save.
	ErrETagMismatch = errors.New("snapshot: etag mismatch")
	// ErrNoStore indicates a Manager used without a Store.
	ErrNoStore = errors.New("snapshot: store not configured")
)

// Ref identifies one persisted sequence for one named vector.
type Ref struct {
	Name string
}

// Identifier provides the canonical storage key for the reference.
func (r Ref) Identifier() (string, error) {
	if r.Name == "" {
		return "", ErrNameRequired
	}
	return fmt.Sprintf("vector/%s", r.Name), nil
}

// Meta is storage-owned metadata used for audit and concurrency control.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	ETag       string            `json:"etag,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Store loads/saves one ordered element sequence for a single reference.
// Save returns the metadata as persisted, including any storage-assigned
// ETag. A Save carrying a non-empty Meta.ETag must fail with ErrETagMismatch
// when the stored ETag differs.
type Store[T any] interface {
	Load(ctx context.Context, ref Ref) (elements []T, meta Meta, ok bool, err error)
	Save(ctx context.Context, ref Ref, elements []T, meta Meta) (Meta, error)
}

func cloneMeta(meta Meta) Meta {
	out := meta
	if meta.Extra == nil {
		return out
	}
	out.Extra = make(map[string]string, len(meta.Extra))
	for k, v := range meta.Extra {
		out.Extra[k] = v
	}
	return out
}
