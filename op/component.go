// Package op implements the operational-transformation algebra for
// plain-text documents: components, canonical operations, and the apply,
// compose, and transform primitives built on top of them.
package op

import (
	"fmt"
	"unicode/utf8"
)

func assert(b bool, v ...interface{}) {
	if !b {
		panic(fmt.Sprint(v...))
	}
}

// Kind identifies which of the three component variants a Component is.
type Kind int

const (
	KindRetain Kind = iota
	KindInsert
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindRetain:
		return "retain"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Component is a single edit unit: retain(n), insert(s), or delete(n). It is
// a closed tagged variant; construct values with Retain, Insert, and Delete
// rather than setting fields directly.
type Component struct {
	kind Kind
	n    int    // length, for retain/delete
	text string // value, for insert
}

// Retain returns a component that advances the cursor over n code points of
// the document without modifying it. n must be non-negative.
func Retain(n int) Component {
	assert(n >= 0, "retain length must be non-negative, got ", n)
	return Component{kind: KindRetain, n: n}
}

// Insert returns a component that inserts s at the current cursor. s may be
// empty, in which case the component is a no-op.
func Insert(s string) Component {
	return Component{kind: KindInsert, text: s}
}

// Delete returns a component that removes the next n code points of the
// document. n must be non-negative.
func Delete(n int) Component {
	assert(n >= 0, "delete length must be non-negative, got ", n)
	return Component{kind: KindDelete, n: n}
}

// Kind reports which variant c is.
func (c Component) Kind() Kind {
	return c.kind
}

// Length returns the number of code points c spans: n for retain/delete, or
// the code-point count of the inserted string for insert.
func (c Component) Length() int {
	if c.kind == KindInsert {
		return utf8.RuneCountInString(c.text)
	}
	return c.n
}

// Text returns the inserted string. It is only meaningful for KindInsert.
func (c Component) Text() string {
	return c.text
}

// IsNoOp reports whether c has zero length.
func (c Component) IsNoOp() bool {
	return c.Length() == 0
}

// Compare orders a and b by length: -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b Component) int {
	al, bl := a.Length(), b.Length()
	switch {
	case al < bl:
		return -1
	case al > bl:
		return 1
	default:
		return 0
	}
}

// Split divides c into two components of the same kind, the first of length
// i and the second of length Length(c)-i. For Insert, i is a code-point
// index. The caller must ensure 0 <= i <= c.Length().
func (c Component) Split(i int) (Component, Component) {
	assert(i >= 0 && i <= c.Length(), "split index out of range: ", i)
	switch c.kind {
	case KindInsert:
		runes := []rune(c.text)
		return Insert(string(runes[:i])), Insert(string(runes[i:]))
	case KindRetain:
		return Retain(i), Retain(c.n - i)
	case KindDelete:
		return Delete(i), Delete(c.n - i)
	default:
		panic(fmt.Sprintf("unknown component kind %v", c.kind))
	}
}

// Merge combines a and b into one component if they share a kind (retains
// and deletes sum their lengths, inserts concatenate their text), or returns
// them unchanged as a two-element slice otherwise.
func Merge(a, b Component) []Component {
	if a.kind != b.kind {
		return []Component{a, b}
	}
	switch a.kind {
	case KindInsert:
		return []Component{Insert(a.text + b.text)}
	case KindRetain:
		return []Component{Retain(a.n + b.n)}
	case KindDelete:
		return []Component{Delete(a.n + b.n)}
	default:
		panic(fmt.Sprintf("unknown component kind %v", a.kind))
	}
}

func (c Component) String() string {
	switch c.kind {
	case KindInsert:
		return fmt.Sprintf("insert(%q)", c.text)
	case KindRetain:
		return fmt.Sprintf("retain(%d)", c.n)
	case KindDelete:
		return fmt.Sprintf("delete(%d)", c.n)
	default:
		return fmt.Sprintf("Component{kind:%d}", c.kind)
	}
}
