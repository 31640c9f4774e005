// Package snapshot defines persistence-facing contracts for saving and
// restoring the ordered contents of a stable-index vector between scopes,
// plus a small manager that orchestrates checkpoint/restore against the core
// svec primitives.
//
// Responsibilities:
//   - Store[T] only loads/saves one ordered element sequence for one Ref.
//   - Manager[T] captures a vector's occupied elements (never while a guard
//     is open) and rebuilds a vector from a stored sequence.
//   - The core svec package remains persistence-agnostic; all persistence
//     logic stays behind Store implementations supplied by consumers.
//
// Data flow:
//
//	Vector.Values() -> Manager.Checkpoint -> Store.Save
//	Store.Load -> Manager.Restore -> fresh *svec.Vector[T]
//
// Concurrency control:
//
//	Meta.ETag enables optimistic saves; stores reject a Save carrying a
//	non-empty ETag that no longer matches with ErrETagMismatch.
package snapshot
