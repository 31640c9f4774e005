package svec

import (
	"encoding/json"
	"time"
)

// Trace captures the sequence of operations a guard performed over its scope,
// so a session can be audited after the guard is gone.
type Trace struct {
	Scope string     `json:"scope"`
	Ops   []OpRecord `json:"ops"`
}

// OpRecord details a single guard operation within a trace.
type OpRecord struct {
	Op   string    `json:"op"`
	Slot int       `json:"slot"`
	OK   bool      `json:"ok"`
	At   time.Time `json:"at"`
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

func (t Trace) clone() Trace {
	out := Trace{Scope: t.Scope}
	if len(t.Ops) > 0 {
		out.Ops = append([]OpRecord{}, t.Ops...)
	}
	return out
}
