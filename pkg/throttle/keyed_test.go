package throttle_test

import (
	"testing"

	"task-scheduling-advisor/pkg/throttle"
)

func TestKeyedAllow(t *testing.T) {
	// 60/min gives a burst of 6 and a refill of one token per second.
	k := throttle.NewKeyed(60)

	for i := 0; i < 6; i++ {
		if err := k.Allow("10.0.0.1"); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}
	if err := k.Allow("10.0.0.1"); err == nil {
		t.Errorf("expected burst to be exhausted")
	}

	if err := k.Allow("10.0.0.2"); err != nil {
		t.Errorf("other key should have its own bucket: %v", err)
	}
	if k.Len() != 2 {
		t.Errorf("expected 2 tracked keys, got %d", k.Len())
	}
}

func TestKeyedMinimumBurst(t *testing.T) {
	k := throttle.NewKeyed(1)
	if err := k.Allow("a"); err != nil {
		t.Fatalf("first request must pass: %v", err)
	}
	if err := k.Allow("a"); err == nil {
		t.Errorf("second immediate request should be limited")
	}
}
