package svec

import (
	"errors"
	"testing"
)

func TestPushAssignsSequentialSlots(t *testing.T) {
	vec := New[int]()
	for i := 0; i < 3; i++ {
		slot, err := vec.Push(i * 10)
		if err != nil {
			t.Fatalf("push: %v", err)
		}
		if slot != i {
			t.Fatalf("expected slot %d, got %d", i, slot)
		}
	}
	if vec.NumElements() != 3 || vec.NumSlots() != 3 {
		t.Fatalf("expected 3/3, got %d/%d", vec.NumElements(), vec.NumSlots())
	}
	if !vec.IsCompact() {
		t.Fatalf("freshly pushed vector should be compact")
	}
}

func TestRemoveLeavesTombstone(t *testing.T) {
	vec := New[string]()
	vec.Push("a")
	vec.Push("b")
	vec.Push("c")

	value, ok, err := vec.Remove(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !ok || value != "b" {
		t.Fatalf("expected removal of b, got %q ok=%v", value, ok)
	}
	if vec.NumElements() != 2 || vec.NumSlots() != 3 {
		t.Fatalf("expected tombstone to remain: %d/%d", vec.NumElements(), vec.NumSlots())
	}
	if vec.IsCompact() {
		t.Fatalf("vector with tombstone must not be compact")
	}

	_, ok, err = vec.Remove(1)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if ok {
		t.Fatalf("second remove of same slot should be a no-op")
	}
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	vec := New[int]()
	vec.Push(1)
	if _, ok, _ := vec.Remove(-1); ok {
		t.Fatalf("negative slot should not remove")
	}
	if _, ok, _ := vec.Remove(7); ok {
		t.Fatalf("out of range slot should not remove")
	}
	if vec.NumElements() != 1 {
		t.Fatalf("element count changed: %d", vec.NumElements())
	}
}

func TestPopShrinksOrTombstones(t *testing.T) {
	vec := New[int]()
	vec.Push(1)
	vec.Push(2)
	vec.Push(3)

	value, ok, err := vec.Pop()
	if err != nil || !ok || value != 3 {
		t.Fatalf("expected pop of trailing element 3, got %d ok=%v err=%v", value, ok, err)
	}
	if vec.NumSlots() != 2 {
		t.Fatalf("popping the physically last slot should shrink storage, got %d slots", vec.NumSlots())
	}

	// Tombstone the physically last slot, so the trailing element sits
	// before a tombstone: popping it must not shrink storage.
	vec.Push(4)
	vec.Remove(2)
	value, ok, _ = vec.Pop()
	if !ok || value != 2 {
		t.Fatalf("expected pop of 2, got %d ok=%v", value, ok)
	}
	if vec.NumSlots() != 3 {
		t.Fatalf("pop behind a tombstone should leave storage length 3, got %d", vec.NumSlots())
	}

	vec2 := New[int]()
	if _, ok, _ := vec2.Pop(); ok {
		t.Fatalf("pop on empty vector should report ok=false")
	}
}

func TestCompactPreservesOrder(t *testing.T) {
	vec := New[string]()
	vec.Push("a")
	vec.Push("b")
	vec.Push("c")
	vec.Push("d")
	vec.Remove(0)
	vec.Remove(2)

	if err := vec.Compact(); err != nil {
		t.Fatalf("compact: %v", err)
	}
	if !vec.IsCompact() {
		t.Fatalf("vector should be compact")
	}
	values, err := vec.Values()
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	if len(values) != 2 || values[0] != "b" || values[1] != "d" {
		t.Fatalf("expected [b d], got %v", values)
	}
}

func TestReorderingCompactKeepsAllSurvivors(t *testing.T) {
	vec := New[int]()
	for i := 0; i < 6; i++ {
		vec.Push(i)
	}
	vec.Remove(0)
	vec.Remove(2)
	vec.Remove(4)

	if err := vec.ReorderingCompact(); err != nil {
		t.Fatalf("reordering compact: %v", err)
	}
	if !vec.IsCompact() {
		t.Fatalf("vector should be compact")
	}
	values, _ := vec.Values()
	if len(values) != 3 {
		t.Fatalf("expected 3 survivors, got %v", values)
	}
	seen := map[int]bool{}
	for _, v := range values {
		seen[v] = true
	}
	for _, want := range []int{1, 3, 5} {
		if !seen[want] {
			t.Fatalf("survivor %d missing from %v", want, values)
		}
	}
}

func TestIntoSliceDrains(t *testing.T) {
	vec := New[int]()
	vec.Push(1)
	vec.Push(2)
	vec.Push(3)
	vec.Remove(1)

	out, err := vec.IntoSlice()
	if err != nil {
		t.Fatalf("into slice: %v", err)
	}
	if len(out) != 2 || out[0] != 1 || out[1] != 3 {
		t.Fatalf("expected [1 3], got %v", out)
	}
	if vec.NumElements() != 0 || vec.NumSlots() != 0 {
		t.Fatalf("vector should be empty after drain: %d/%d", vec.NumElements(), vec.NumSlots())
	}
}

func TestJailedVectorRejectsDirectAccess(t *testing.T) {
	vec := New[int]()
	vec.Push(1)
	guard, err := vec.Enter()
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	defer guard.Close()

	if _, err := vec.Push(2); !errors.Is(err, ErrJailed) {
		t.Fatalf("push should be jailed, got %v", err)
	}
	if _, _, err := vec.Pop(); !errors.Is(err, ErrJailed) {
		t.Fatalf("pop should be jailed, got %v", err)
	}
	if _, _, err := vec.Remove(0); !errors.Is(err, ErrJailed) {
		t.Fatalf("remove should be jailed, got %v", err)
	}
	if err := vec.Compact(); !errors.Is(err, ErrJailed) {
		t.Fatalf("compact should be jailed, got %v", err)
	}
	if err := vec.ReorderingCompact(); !errors.Is(err, ErrJailed) {
		t.Fatalf("reordering compact should be jailed, got %v", err)
	}
	if _, err := vec.IntoSlice(); !errors.Is(err, ErrJailed) {
		t.Fatalf("drain should be jailed, got %v", err)
	}
	if _, err := vec.Values(); !errors.Is(err, ErrJailed) {
		t.Fatalf("values should be jailed, got %v", err)
	}
	if _, err := vec.Enter(); !errors.Is(err, ErrJailed) {
		t.Fatalf("second guard should be rejected, got %v", err)
	}
}

func TestWithCapacityPreallocates(t *testing.T) {
	vec := New[int](WithCapacity(16))
	if got := cap(vec.slots); got < 16 {
		t.Fatalf("expected capacity >= 16, got %d", got)
	}
}
