package auth

import (
	"fmt"
	"testing"
	"time"
)

func TestLoopTrackerBumpAndReset(t *testing.T) {
	lt := newLoopTracker(30*time.Second, 16)

	for want := 1; want <= 4; want++ {
		if got := lt.bump("client|/admin/services"); got != want {
			t.Fatalf("bump %d: got %d", want, got)
		}
	}

	// Other keys are independent.
	if got := lt.bump("client|/admin/gallery"); got != 1 {
		t.Fatalf("separate key should start at 1, got %d", got)
	}

	lt.reset("client|/admin/services")
	if got := lt.bump("client|/admin/services"); got != 1 {
		t.Fatalf("after reset: got %d, want 1", got)
	}
}

func TestLoopTrackerExpiry(t *testing.T) {
	now := time.Now()
	lt := newLoopTracker(30*time.Second, 16)
	lt.now = func() time.Time { return now }

	lt.bump("k")
	lt.bump("k")

	// Just before the TTL the counter continues.
	now = now.Add(29 * time.Second)
	if got := lt.bump("k"); got != 3 {
		t.Fatalf("within ttl: got %d, want 3", got)
	}

	// After the TTL the counter starts over.
	now = now.Add(31 * time.Second)
	if got := lt.bump("k"); got != 1 {
		t.Fatalf("after ttl: got %d, want 1", got)
	}
}

func TestLoopTrackerBounded(t *testing.T) {
	now := time.Now()
	lt := newLoopTracker(30*time.Second, 8)
	lt.now = func() time.Time { return now }

	for i := 0; i < 8; i++ {
		lt.bump(fmt.Sprintf("key-%d", i))
	}

	// Expire everything, then add one more: the expired entries go first.
	now = now.Add(time.Minute)
	lt.bump("fresh")

	lt.mu.Lock()
	size := len(lt.entries)
	lt.mu.Unlock()
	if size != 1 {
		t.Fatalf("expected 1 live entry after eviction, got %d", size)
	}
}
