package ratelimit

import "testing"

func TestAllowDrainsBucket(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("client-a", 3, 0) {
			t.Fatalf("request %d should pass with capacity 3", i+1)
		}
	}
	if l.Allow("client-a", 3, 0) {
		t.Fatal("fourth request should be rejected, bucket drained")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("client-a", 1, 0) {
		t.Fatal("first request for client-a should pass")
	}
	if l.Allow("client-a", 1, 0) {
		t.Fatal("client-a bucket should be empty")
	}
	if !l.Allow("client-b", 1, 0) {
		t.Fatal("client-b has its own bucket and should pass")
	}
}
