package svec

import (
	"errors"
	"fmt"
)

var (
	// ErrJailed indicates a vector operation that requires exclusive access
	// was attempted while a guard holds the vector.
	ErrJailed = errors.New("svec: vector is jailed by an open guard")
	// ErrGuardClosed indicates an operation on a guard after Close.
	ErrGuardClosed = errors.New("svec: guard is closed")
	// ErrForeignToken indicates a token minted by a different guard.
	ErrForeignToken = errors.New("svec: token was minted by a different guard")
	// ErrStaleToken indicates a token whose slot has been removed.
	ErrStaleToken = errors.New("svec: token slot is no longer occupied")
)

// TokenError captures guard operation metadata alongside the originating
// error so callers can log or branch on the failing token.
type TokenError struct {
	Op    string
	Slot  int
	Scope string
	Err   error
}

func (e *TokenError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("svec: %s slot=%d scope=%s: %v", e.Op, e.Slot, e.Scope, e.Err)
}

func (e *TokenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapTokenError(op string, tok Token, err error) error {
	if err == nil {
		return nil
	}

	var tokErr *TokenError
	if errors.As(err, &tokErr) {
		if tokErr.Op == "" {
			tokErr.Op = op
		}
		return err
	}

	return &TokenError{
		Op:    op,
		Slot:  tok.slot,
		Scope: shortScope(tok.scope),
		Err:   err,
	}
}
