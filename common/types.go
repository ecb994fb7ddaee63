// Package common defines the wire messages exchanged between the hub and
// its clients. They carry raw, JSON-shaped operations (see op.NewOperation)
// rather than an encoded string form, since the op package's canonical
// component model serializes directly to JSON.
package common

import "github.com/google/uuid"

// MsgType is embedded implicitly via the Type field below; it exists so a
// receiver can sniff an incoming message's shape before fully decoding it.
type MsgType struct {
	Type string `json:"type"`
}

// Init is sent from a client to the hub when it first connects.
type Init struct {
	Type string `json:"type"`
}

// Snapshot is sent from the hub to a newly connected client: the document's
// current text and the revision (PatchID) it is current as of.
type Snapshot struct {
	Type     string    `json:"type"`
	ClientID uuid.UUID `json:"clientId"`
	PatchID  int       `json:"patchId"`
	Text     string    `json:"text"`
}

// Update is sent from a client to the hub: a raw operation, along with the
// PatchID the client last observed (BasePatchID).
type Update struct {
	Type         string        `json:"type"`
	ClientID     uuid.UUID     `json:"clientId"`
	BasePatchID  int           `json:"basePatchId"`
	RawOperation []interface{} `json:"op"`
}

// Change is broadcast from the hub to every client after it accepts an
// Update: the operation as actually applied (after being transformed
// against any intervening history) and the PatchID it produced.
type Change struct {
	Type         string        `json:"type"`
	ClientID     uuid.UUID     `json:"clientId"`
	PatchID      int           `json:"patchId"`
	RawOperation []interface{} `json:"op"`
}
