package core

import "testing"

func TestActionForByte(t *testing.T) {
	tests := []struct {
		in       byte
		expected Action
	}{
		{'q', ActionQuit},
		{'w', ActionJump},
		{'a', ActionWalkLeft},
		{'d', ActionWalkRight},
		{'s', ActionNone},
		{'W', ActionNone},
		{' ', ActionNone},
		{0x1b, ActionNone},
	}

	for _, tc := range tests {
		if got := ActionForByte(tc.in); got != tc.expected {
			t.Errorf("ActionForByte(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := FrameOf(ActionWalkRight, ActionNone, ActionWalkRight, ActionJump)

	expected := []Action{ActionWalkRight, ActionWalkRight, ActionJump}
	if len(f.Actions) != len(expected) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(expected))
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputQueueFIFO(t *testing.T) {
	q := NewInputQueue(4)

	for _, a := range []Action{ActionWalkLeft, ActionJump, ActionWalkRight} {
		if !q.Push(a) {
			t.Fatalf("Push(%v) = false, expected true", a)
		}
	}
	if q.Push(ActionNone) {
		t.Error("Push(ActionNone) should be rejected")
	}

	for _, expected := range []Action{ActionWalkLeft, ActionJump, ActionWalkRight} {
		got, ok := q.Pop()
		if !ok || got != expected {
			t.Errorf("Pop() = %v, %v, expected %v, true", got, ok, expected)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should return ok=false")
	}
}

func TestInputQueueDropsNewestWhenFull(t *testing.T) {
	q := NewInputQueue(2)
	q.Push(ActionWalkLeft)
	q.Push(ActionWalkRight)

	if q.Push(ActionJump) {
		t.Error("Push() on a full queue should return false")
	}

	// Wrap around the ring buffer
	q.Pop()
	q.Push(ActionQuit)
	got, _ := q.Pop()
	if got != ActionWalkRight {
		t.Errorf("Pop() = %v, expected WalkRight", got)
	}
	got, _ = q.Pop()
	if got != ActionQuit {
		t.Errorf("Pop() = %v, expected Quit", got)
	}
}

func TestInputQueueNextFrameTakesOne(t *testing.T) {
	q := NewInputQueue(0)
	q.Push(ActionWalkRight)
	q.Push(ActionWalkRight)

	f := q.NextFrame()
	if len(f.Actions) != 1 {
		t.Errorf("NextFrame() returned %d actions, expected 1", len(f.Actions))
	}
	if f := q.NextFrame(); len(f.Actions) != 1 {
		t.Errorf("second NextFrame() returned %d actions, expected 1", len(f.Actions))
	}
	if f := q.NextFrame(); len(f.Actions) != 0 {
		t.Errorf("NextFrame() on an empty queue returned %v", f.Actions)
	}
}
