// Package hub wires the op engine into a realtime collaboration server: it
// keeps a single shared document, transforms incoming client updates
// against whatever committed history they missed, and broadcasts the
// result.
package hub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/otcore/textot/internal/util"
	"github.com/otcore/textot/op"
)

type patchRecord struct {
	clientID uuid.UUID
	op       op.Operation
}

// Document is a string that supports concurrent operational-transformation
// updates from multiple clients. It is safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	value   string
	patches []patchRecord
}

// NewDocument returns a Document seeded with s.
func NewDocument(s string) *Document {
	return &Document{value: s}
}

// Snapshot returns the document's current PatchID and text, for sending to
// a newly connected client.
func (d *Document) Snapshot() (patchID int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.patches), d.value
}

// ApplyUpdate transforms a raw client operation against every patch
// committed since basePatchID (breaking insert/insert ties in favor of the
// already-committed history, per op.SideRight), applies the result, and
// records it as the newest patch. It returns the operation as actually
// applied and the PatchID it produced.
func (d *Document) ApplyUpdate(clientID uuid.UUID, basePatchID int, raw []interface{}) (op.Operation, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	util.Assert(basePatchID >= 0 && basePatchID <= len(d.patches),
		"basePatchID out of range: ", basePatchID, " have ", len(d.patches), " patches")

	incoming := op.NewOperation(raw)
	for i := basePatchID; i < len(d.patches); i++ {
		incoming = op.Transform(incoming, d.patches[i].op, op.SideRight)
	}

	newValue, err := op.Apply(d.value, padTrailingRetain(incoming, len([]rune(d.value))))
	if err != nil {
		return nil, 0, err
	}

	d.value = newValue
	d.patches = append(d.patches, patchRecord{clientID: clientID, op: incoming})
	return incoming, len(d.patches), nil
}

// padTrailingRetain appends a Retain covering whatever suffix of a
// length-total document op does not otherwise account for. Transform never
// produces a trailing Retain (spec.md's stripping rule), so a transformed
// operation's reach can fall short of the document it is about to run
// against; the padded operation spans the whole document. op.Apply would
// copy the unconsumed suffix anyway, so padding does not change the result.
// Only the operation passed to Apply is padded — see SPEC_FULL.md's Open
// Questions decision on this.
func padTrailingRetain(o op.Operation, total int) op.Operation {
	consumed := 0
	for _, c := range o {
		if c.Kind() != op.KindInsert {
			consumed += c.Length()
		}
	}
	shortfall := util.MaxInt(0, total-consumed)
	if shortfall == 0 {
		return o
	}
	return o.Append(op.Retain(shortfall))
}
