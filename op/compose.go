package op

// Compose folds a and b, two sequential operations, into one operation c
// such that Apply(doc, c) behaves like applying a and then b. It scans both
// operations in lockstep with skip set to SkipDelete, so a delete in a that
// is longer than b's head is emitted whole; b's deletes are split to the
// length of a's head like any other component.
func Compose(a, b Operation) Operation {
	tailA, tailB := []Component(a), []Component(b)
	var result Operation

	for {
		step := nextPair(tailA, tailB, SkipDelete)
		switch {
		case !step.hasA && !step.hasB:
			return result
		case !step.hasA:
			// a is drained: b's remainder passes through untouched.
			result = result.Append(step.headB)
			return result.Join(step.tailB)
		case !step.hasB:
			// b is drained: a's remainder passes through untouched.
			result = result.Append(step.headA)
			return result.Join(step.tailA)
		}

		ha, hb := step.headA, step.headB
		if hb.Kind() == KindInsert {
			// b's insert is new text that a never touched; it always
			// survives verbatim, and a's head has not been consumed.
			result = result.Append(hb)
			tailA, tailB = keep(ha, step.tailA), step.tailB
			continue
		}

		switch ha.Kind() {
		case KindInsert:
			if hb.Kind() == KindDelete {
				// b deletes exactly what a just inserted: both vanish.
				tailA, tailB = step.tailA, step.tailB
				continue
			}
			// hb.Kind() == KindRetain: a's insert survives, witnessed
			// unchanged by b's retain.
			result = result.Append(ha)
			tailA, tailB = step.tailA, step.tailB
		case KindRetain:
			if hb.Kind() == KindRetain {
				result = result.Append(ha)
			} else { // KindDelete
				result = result.Append(hb)
			}
			tailA, tailB = step.tailA, step.tailB
		case KindDelete:
			// a's delete never interacts with b's content; it is emitted
			// as-is and b's head is held for the next scan.
			result = result.Append(ha)
			tailA, tailB = step.tailA, keep(hb, step.tailB)
		}
	}
}
