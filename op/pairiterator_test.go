package op

import "testing"

func TestNextPairEqualLengths(t *testing.T) {
	step := nextPair([]Component{Retain(3)}, []Component{Delete(3)}, SkipNone)
	if !step.hasA || !step.hasB {
		t.Fatal("expected both sides present")
	}
	if step.headA.Length() != 3 || step.headB.Length() != 3 {
		t.Errorf("got headA=%v headB=%v", step.headA, step.headB)
	}
	if len(step.tailA) != 0 || len(step.tailB) != 0 {
		t.Errorf("expected empty tails, got tailA=%v tailB=%v", step.tailA, step.tailB)
	}
}

func TestNextPairSplitsLongerSide(t *testing.T) {
	// a is shorter: b gets split to match.
	step := nextPair([]Component{Retain(2)}, []Component{Retain(5)}, SkipNone)
	if step.headA.Length() != 2 || step.headB.Length() != 2 {
		t.Errorf("got headA=%v headB=%v", step.headA, step.headB)
	}
	if len(step.tailB) != 1 || step.tailB[0].Length() != 3 {
		t.Errorf("expected remainder of length 3, got %v", step.tailB)
	}
}

func TestNextPairSkipProtectsLongerSide(t *testing.T) {
	// a's insert is longer than b's retain, and insert is skip-protected:
	// both heads come back whole, unsliced.
	step := nextPair([]Component{Insert("hello")}, []Component{Retain(2)}, SkipInsert)
	if step.headA.Text() != "hello" {
		t.Errorf("expected whole insert, got %v", step.headA)
	}
	if step.headB.Length() != 2 {
		t.Errorf("got headB=%v", step.headB)
	}
	if len(step.tailA) != 0 || len(step.tailB) != 0 {
		t.Errorf("expected both tails consumed, got tailA=%v tailB=%v", step.tailA, step.tailB)
	}
}

func TestNextPairDropsNoOps(t *testing.T) {
	step := nextPair([]Component{Retain(0), Retain(4)}, []Component{Insert(""), Delete(4)}, SkipNone)
	if step.headA.Length() != 4 || step.headB.Length() != 4 {
		t.Errorf("got headA=%v headB=%v", step.headA, step.headB)
	}
}

func TestNextPairOneSideExhausted(t *testing.T) {
	step := nextPair(nil, []Component{Retain(4)}, SkipNone)
	if step.hasA {
		t.Error("expected a exhausted")
	}
	if !step.hasB || step.headB.Length() != 4 {
		t.Errorf("expected b's head, got %v", step.headB)
	}

	step = nextPair([]Component{Retain(4)}, nil, SkipNone)
	if step.hasB {
		t.Error("expected b exhausted")
	}
	if !step.hasA || step.headA.Length() != 4 {
		t.Errorf("expected a's head, got %v", step.headA)
	}
}

func TestNextPairBothExhausted(t *testing.T) {
	step := nextPair(nil, nil, SkipNone)
	if step.hasA || step.hasB {
		t.Error("expected both exhausted")
	}
}
