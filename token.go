package svec

import (
	"fmt"

	"github.com/google/uuid"
)

// Token names one occupied slot inside the vector owned by the guard that
// minted it. Tokens are opaque and copyable; two tokens compare equal only
// when they name the same slot and were minted by the same guard. A token
// carries the minting guard's scope identity, so presenting it to any other
// guard fails with ErrForeignToken rather than resolving to an unrelated
// element.
type Token struct {
	slot  int
	scope uuid.UUID
}

// Slot returns the underlying slot number. It is exposed for diagnostics and
// event payloads only; slot numbers are not stable across compaction and must
// never be fed back into a guard.
func (t Token) Slot() int {
	return t.slot
}

// String renders the token for logs and error messages.
func (t Token) String() string {
	return fmt.Sprintf("token(slot=%d scope=%s)", t.slot, shortScope(t.scope))
}

func shortScope(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
