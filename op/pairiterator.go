package op

// SkipKind names the one component kind, if any, that the pairwise scanner
// must never split while aligning two operations. It is checked against a's
// head only: composition uses SkipDelete, so a's deletes stay whole (b's
// head is still split when it is the longer one); transformation uses
// SkipInsert, so a's inserts stay whole.
type SkipKind int

const (
	SkipNone SkipKind = iota
	SkipInsert
	SkipDelete
)

func (s SkipKind) matches(k Kind) bool {
	switch s {
	case SkipInsert:
		return k == KindInsert
	case SkipDelete:
		return k == KindDelete
	default:
		return false
	}
}

// pairStep is the result of one scan step: the next aligned component from
// each side (valid only when the corresponding hasX flag is set) and the
// remaining tail of each side after that component is accounted for.
type pairStep struct {
	headA, headB Component
	hasA, hasB   bool
	tailA, tailB []Component
}

// nextPair is the pure stepper underlying PairIterator. Given the current
// tails of two operations, it returns the next pair of length-aligned
// component slices, honoring skip so that a component of that kind in a is
// never split. Dropping a's or b's leading no-ops happens before alignment,
// so callers never see a no-op component in the result.
func nextPair(a, b []Component, skip SkipKind) pairStep {
	for len(a) > 0 && a[0].IsNoOp() {
		a = a[1:]
	}
	for len(b) > 0 && b[0].IsNoOp() {
		b = b[1:]
	}

	switch {
	case len(a) == 0 && len(b) == 0:
		return pairStep{tailA: a, tailB: b}
	case len(a) == 0:
		return pairStep{headB: b[0], hasB: true, tailA: a, tailB: b[1:]}
	case len(b) == 0:
		return pairStep{headA: a[0], hasA: true, tailA: a[1:], tailB: b}
	}

	ha, hb := a[0], b[0]
	la, lb := ha.Length(), hb.Length()

	switch {
	case la == lb:
		return pairStep{headA: ha, headB: hb, hasA: true, hasB: true, tailA: a[1:], tailB: b[1:]}
	case la < lb:
		prefix, remainder := hb.Split(la)
		return pairStep{
			headA: ha, headB: prefix, hasA: true, hasB: true,
			tailA: a[1:], tailB: prepend(remainder, b[1:]),
		}
	default: // la > lb
		if skip.matches(ha.Kind()) {
			return pairStep{headA: ha, headB: hb, hasA: true, hasB: true, tailA: a[1:], tailB: b[1:]}
		}
		prefix, remainder := ha.Split(lb)
		return pairStep{
			headA: prefix, headB: hb, hasA: true, hasB: true,
			tailA: prepend(remainder, a[1:]), tailB: b[1:],
		}
	}
}

// keep reconstructs a tail in which head was never consumed, for use when a
// decision table entry says to hold a's (or b's) head over to the next
// scan step instead of advancing past it.
func keep(head Component, tail []Component) []Component {
	return prepend(head, tail)
}
