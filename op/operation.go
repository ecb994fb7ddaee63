package op

import (
	"encoding/json"
	"fmt"
)

// Operation is a finite ordered sequence of components. Every Operation
// returned from this package is canonical: no component is a no-op, and no
// two adjacent components share a kind.
type Operation []Component

// RawDelete is the Go-literal shape for a delete record in a raw operation
// list, mirroring the wire shape {"d": n} used by serialized operations.
type RawDelete struct {
	D int
}

// MarshalJSON encodes RawDelete as the canonical wire shape {"d": n}.
func (r RawDelete) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{"d": r.D})
}

// UnmarshalJSON decodes the wire shape {"d": n} into r.
func (r *RawDelete) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	n, ok := m["d"]
	if !ok {
		return fmt.Errorf("op: delete record missing \"d\" key: %s", data)
	}
	r.D = n
	return nil
}

// NewOperation builds a canonical Operation from a raw edit list. Each
// element is coerced by its shape:
//
//   - an integer (int, int32, int64, float64 — the last to tolerate
//     json.Unmarshal's default numeric type) becomes Retain(n)
//   - a string becomes Insert(s)
//   - a RawDelete, or a map with a single "d" key holding an integer,
//     becomes Delete(n)
//   - an already-constructed Component is passed through
//
// Any other shape is a programmer error and causes a panic.
func NewOperation(raw []interface{}) Operation {
	var op Operation
	for _, v := range raw {
		op = op.Append(coerce(v))
	}
	return op
}

func coerce(v interface{}) Component {
	switch t := v.(type) {
	case Component:
		return t
	case int:
		return Retain(t)
	case int32:
		return Retain(int(t))
	case int64:
		return Retain(int(t))
	case float64:
		return Retain(int(t))
	case string:
		return Insert(t)
	case RawDelete:
		return Delete(t.D)
	case map[string]interface{}:
		return Delete(mustDeleteCount(t))
	case map[string]int:
		n, ok := t["d"]
		assert(ok, "delete map missing \"d\" key: ", t)
		return Delete(n)
	default:
		panic(fmt.Sprintf("op: cannot coerce %T (%v) into a component", v, v))
	}
}

func mustDeleteCount(m map[string]interface{}) int {
	assert(len(m) == 1, "delete map must have exactly one key: ", m)
	v, ok := m["d"]
	assert(ok, "delete map missing \"d\" key: ", m)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		panic(fmt.Sprintf("op: delete count has unexpected type %T (%v)", v, v))
	}
}

// Append canonicalizes and appends c to op: a no-op c leaves op unchanged;
// a c that shares a kind with op's last component is merged into it;
// otherwise c is pushed as a new component.
func (op Operation) Append(c Component) Operation {
	if c.IsNoOp() {
		return op
	}
	if len(op) == 0 {
		return append(Operation{}, c)
	}
	last := op[len(op)-1]
	if last.Kind() != c.Kind() {
		return append(op, c)
	}
	merged := Merge(last, c)
	out := append(Operation{}, op[:len(op)-1]...)
	return append(out, merged...)
}

// Join appends every component of other onto op, canonicalizing as it goes.
// Either operand may be empty.
func (op Operation) Join(other Operation) Operation {
	result := op
	for _, c := range other {
		result = result.Append(c)
	}
	return result
}

// Raw returns op re-expressed as the raw shapes NewOperation accepts:
// integers for retain, strings for insert, and RawDelete for delete. It is
// the inverse of NewOperation for canonical operations.
func (op Operation) Raw() []interface{} {
	raw := make([]interface{}, 0, len(op))
	for _, c := range op {
		switch c.Kind() {
		case KindRetain:
			raw = append(raw, c.Length())
		case KindInsert:
			raw = append(raw, c.Text())
		case KindDelete:
			raw = append(raw, RawDelete{D: c.Length()})
		}
	}
	return raw
}

// Equal reports whether op and other have identical components in order.
func (op Operation) Equal(other Operation) bool {
	if len(op) != len(other) {
		return false
	}
	for i := range op {
		a, b := op[i], other[i]
		if a.Kind() != b.Kind() || a.Length() != b.Length() {
			return false
		}
		if a.Kind() == KindInsert && a.Text() != b.Text() {
			return false
		}
	}
	return true
}

func prepend(c Component, tail []Component) []Component {
	out := make([]Component, 0, len(tail)+1)
	out = append(out, c)
	return append(out, tail...)
}

func stripTrailingRetain(op Operation) Operation {
	if len(op) == 0 {
		return op
	}
	if last := op[len(op)-1]; last.Kind() == KindRetain {
		return op[:len(op)-1]
	}
	return op
}
