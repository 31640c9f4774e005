package events

import (
	"context"
	"testing"
)

func TestEmitterDisabledWithoutHooks(t *testing.T) {
	emitter := NewEmitter(nil, Config{Enabled: true})
	if emitter.Enabled() {
		t.Fatalf("emitter without hooks should be disabled")
	}
	if err := emitter.Emit(context.Background(), Event{Verb: VerbInsert, ObjectType: ObjectSlot}); err != nil {
		t.Fatalf("disabled emit should be a no-op, got %v", err)
	}
}

func TestEmitterDisabledByConfig(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if emitter.Enabled() {
		t.Fatalf("emitter should honour Enabled=false")
	}
	emitter.Emit(context.Background(), Event{Verb: VerbInsert, ObjectType: ObjectSlot})
	if len(capture.Events) != 0 {
		t.Fatalf("expected no events, got %d", len(capture.Events))
	}
}

func TestEmitterAppliesDefaultChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true})
	if err := emitter.Emit(context.Background(), Event{Verb: VerbCompact, ObjectType: ObjectSlot, Slot: -1}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(capture.Events))
	}
	if capture.Events[0].Channel != "stablevec" {
		t.Fatalf("expected default channel, got %q", capture.Events[0].Channel)
	}
}

func TestEmitterKeepsExplicitChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true, Channel: "audit"})
	emitter.Emit(context.Background(), Event{Verb: VerbRemove, ObjectType: ObjectSlot, Channel: "override"})
	if capture.Events[0].Channel != "override" {
		t.Fatalf("explicit channel should win, got %q", capture.Events[0].Channel)
	}
}

func TestEmitterDropsNilHooks(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{nil, capture, nil}, Config{Enabled: true})
	emitter.Emit(context.Background(), Event{Verb: VerbInsert, ObjectType: ObjectSlot})
	if len(capture.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(capture.Events))
	}
}
