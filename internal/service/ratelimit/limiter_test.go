package ratelimit

import "testing"

func TestAllowExhaustsBurst(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 0) {
			t.Fatalf("call %d: expected allow within burst", i)
		}
	}
	if l.Allow("k", 3, 0) {
		t.Fatal("expected deny after burst exhausted")
	}
}

func TestAllowIsPerKey(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatal("expected allow for a")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("expected deny for a")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("expected allow for separate key b")
	}
}
