package svec

import (
	"testing"
)

func TestGuardTraceRecordsOperations(t *testing.T) {
	vec := New[int](WithTrace(true))
	guard, err := vec.Enter()
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	defer guard.Close()

	tok, _ := guard.Insert(1)
	guard.Get(tok)
	guard.Remove(tok)
	guard.Remove(tok)

	trace := guard.Trace()
	if trace.Scope == "" {
		t.Fatalf("expected trace scope to be set")
	}
	if len(trace.Ops) != 4 {
		t.Fatalf("expected 4 ops, got %d", len(trace.Ops))
	}
	if trace.Ops[0].Op != "insert" || !trace.Ops[0].OK {
		t.Fatalf("unexpected first op: %+v", trace.Ops[0])
	}
	if trace.Ops[3].Op != "remove" || trace.Ops[3].OK {
		t.Fatalf("idempotent remove should record ok=false: %+v", trace.Ops[3])
	}

	// The returned trace is a copy.
	trace.Ops[0].Op = "mutated"
	if guard.Trace().Ops[0].Op != "insert" {
		t.Fatalf("trace copy should not alias internal state")
	}
}

func TestTraceDisabledByDefault(t *testing.T) {
	vec := New[int]()
	vec.Jail(func(g *Guard[int]) error {
		g.Insert(1)
		if ops := g.Trace().Ops; len(ops) != 0 {
			t.Fatalf("expected empty trace, got %d ops", len(ops))
		}
		return nil
	})
}

func TestTraceJSONRoundTrip(t *testing.T) {
	vec := New[int](WithTrace(true))
	var trace Trace
	vec.Jail(func(g *Guard[int]) error {
		tok, _ := g.Insert(7)
		g.Remove(tok)
		trace = g.Trace()
		return nil
	})

	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if decoded.Scope != trace.Scope {
		t.Fatalf("scope mismatch: %q vs %q", decoded.Scope, trace.Scope)
	}
	if len(decoded.Ops) != len(trace.Ops) {
		t.Fatalf("ops length mismatch: %d vs %d", len(decoded.Ops), len(trace.Ops))
	}
	for i := range decoded.Ops {
		if decoded.Ops[i].Op != trace.Ops[i].Op || decoded.Ops[i].Slot != trace.Ops[i].Slot {
			t.Fatalf("op %d mismatch: %+v vs %+v", i, decoded.Ops[i], trace.Ops[i])
		}
	}
}

func TestTraceFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TraceFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
