package auth

import (
	"sync"
	"time"
)

// loopTracker counts consecutive login redirects per client+path so the
// page gate can break redirect loops without leaking a counter into URLs.
// Entries expire after ttl and the map is bounded: when full, expired
// entries are evicted first, then the whole map is dropped (losing a
// counter only delays loop detection by one cycle).
type loopTracker struct {
	mu         sync.Mutex
	entries    map[string]loopEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type loopEntry struct {
	count   int
	expires time.Time
}

func newLoopTracker(ttl time.Duration, maxEntries int) *loopTracker {
	return &loopTracker{
		entries:    make(map[string]loopEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// bump increments the counter for key and returns the new count.
func (t *loopTracker) bump(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	e, ok := t.entries[key]
	if !ok || now.After(e.expires) {
		e = loopEntry{}
	}
	e.count++
	e.expires = now.Add(t.ttl)

	if _, exists := t.entries[key]; !exists && len(t.entries) >= t.maxEntries {
		t.evictLocked(now)
	}
	t.entries[key] = e
	return e.count
}

// reset clears the counter for key, called on any successful gate pass.
func (t *loopTracker) reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
}

func (t *loopTracker) evictLocked(now time.Time) {
	for k, e := range t.entries {
		if now.After(e.expires) {
			delete(t.entries, k)
		}
	}
	if len(t.entries) >= t.maxEntries {
		t.entries = make(map[string]loopEntry)
	}
}
