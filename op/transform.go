package op

// Side breaks ties deterministically when Transform encounters concurrent
// inserts at the same position.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Transform rewrites a, an operation defined against some document, so it
// can be applied after b, a concurrent operation defined against the same
// document, and produce a result consistent with TP1: applying a after b
// agrees with applying b after Transform(b, a, side.Other()). side breaks
// ties when both a and b insert at the same position.
//
// Transform scans with skip set to SkipInsert, since a's inserts are never
// split — they must survive as a single unit to preserve the user's literal
// insertion. The result never ends in a trailing Retain.
func Transform(a, b Operation, side Side) Operation {
	tailA, tailB := []Component(a), []Component(b)
	var result Operation

	for {
		step := nextPair(tailA, tailB, SkipInsert)
		if !step.hasA {
			// a is drained: any remaining b has no corresponding a text to
			// transform, so we terminate regardless of b's remainder.
			return stripTrailingRetain(result)
		}
		if !step.hasB {
			// b is drained: a's remainder passes through untouched.
			result = result.Append(step.headA)
			result = result.Join(step.tailA)
			return stripTrailingRetain(result)
		}

		ha, hb := step.headA, step.headB
		switch ha.Kind() {
		case KindInsert:
			switch hb.Kind() {
			case KindInsert:
				if side == SideLeft {
					// a's insert wins the position.
					result = result.Append(ha)
					tailA, tailB = step.tailA, keep(hb, step.tailB)
				} else {
					// b's insert wins; a retains (skips) over it.
					result = result.Append(Retain(hb.Length()))
					tailA, tailB = keep(ha, step.tailA), step.tailB
				}
			default:
				// a's insert survives untouched, independent of b.
				result = result.Append(ha)
				tailA, tailB = step.tailA, keep(hb, step.tailB)
			}
		case KindRetain:
			switch hb.Kind() {
			case KindInsert:
				// b inserted text a must skip over.
				result = result.Append(Retain(hb.Length()))
				tailA, tailB = keep(ha, step.tailA), step.tailB
			case KindRetain:
				result = result.Append(ha)
				tailA, tailB = step.tailA, step.tailB
			case KindDelete:
				// b deleted what a would have retained: it no longer
				// exists, so a's retain collapses.
				tailA, tailB = step.tailA, step.tailB
			}
		case KindDelete:
			switch hb.Kind() {
			case KindInsert:
				// b inserted text a must skip over; a's delete is
				// preserved for the next step.
				result = result.Append(Retain(hb.Length()))
				tailA, tailB = keep(ha, step.tailA), step.tailB
			case KindRetain:
				result = result.Append(ha)
				tailA, tailB = step.tailA, step.tailB
			case KindDelete:
				// both delete the same content: it collapses entirely.
				tailA, tailB = step.tailA, step.tailB
			}
		}
	}
}
