package parsecache_test

import (
	"sync"
	"testing"
	"time"

	"calendar-assistant/pkg/parsecache"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(t *testing.T, clock *fakeClock) *parsecache.Cache[string] {
	t.Helper()
	c, err := parsecache.New[string](parsecache.Config{
		Size:          16,
		DefaultTTL:    time.Hour,
		SweepInterval: time.Hour, // sweep driven manually in tests
		Now:           clock.Now,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestSetGetRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.Set("nlp:schedule a meeting", "parsed")
	got, ok := c.Get("nlp:schedule a meeting")
	if !ok || got != "parsed" {
		t.Fatalf("Get = (%q, %v), want (parsed, true)", got, ok)
	}
}

func TestGetExpiredEntryIsAbsentAndDeleted(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.SetWithTTL("k", "v", time.Minute)
	clock.Advance(time.Minute + time.Second)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expired entry to be absent")
	}
	if c.Len() != 0 {
		t.Errorf("expected pull-based expiry to delete the entry, len = %d", c.Len())
	}
}

func TestPerEntryTTLOverride(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.SetWithTTL("short", "a", time.Minute)
	c.Set("long", "b") // default 1h

	clock.Advance(10 * time.Minute)

	if _, ok := c.Get("short"); ok {
		t.Errorf("short-TTL entry should have expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Errorf("default-TTL entry should still be present")
	}
}

func TestSetReplacesEntry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.Set("k", "old")
	c.Set("k", "new")
	if got, _ := c.Get("k"); got != "new" {
		t.Errorf("last writer should win, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.Set("k", "v")
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Errorf("deleted entry should be absent")
	}
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)

	c.SetWithTTL("a", "1", time.Minute)
	c.SetWithTTL("b", "2", time.Hour)
	clock.Advance(30 * time.Minute)

	if removed := c.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d entries, want 1", removed)
	}
	if c.Len() != 1 {
		t.Errorf("len after sweep = %d, want 1", c.Len())
	}
}

func TestSizeBoundEvictsOldest(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c, err := parsecache.New[string](parsecache.Config{
		Size:          2,
		DefaultTTL:    time.Hour,
		SweepInterval: time.Hour,
		Now:           clock.Now,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	if _, ok := c.Get("a"); ok {
		t.Errorf("oldest entry should have been evicted by the size bound")
	}
	if _, ok := c.Get("c"); !ok {
		t.Errorf("newest entry should be present")
	}
}
