package store

import (
	"testing"
	"time"
)

func newTestCache(t *testing.T, maxEntries int, ttl time.Duration) (*ResponseCache, *time.Time) {
	t.Helper()
	cache, err := NewResponseCache(maxEntries, ttl)
	if err != nil {
		t.Fatalf("new response cache: %v", err)
	}
	now := time.Now()
	cache.now = func() time.Time { return now }
	return cache, &now
}

func TestResponseCacheKeyNormalization(t *testing.T) {
	cache, _ := newTestCache(t, 16, 5*time.Minute)

	cache.Put("  When IS the event?  ", "answer", 0.9)

	cached, ok := cache.Get("when is the event?")
	if !ok {
		t.Fatal("normalized lookup missed")
	}
	if cached.Response != "answer" || cached.Confidence != 0.9 {
		t.Errorf("cached = %+v", cached)
	}
}

func TestResponseCacheLazyExpiry(t *testing.T) {
	ttl := 5 * time.Minute
	cache, now := newTestCache(t, 16, ttl)

	cache.Put("query", "answer", 0.8)

	// Just inside the TTL the entry is served unchanged
	*now = now.Add(ttl - time.Second)
	if cached, ok := cache.Get("query"); !ok || cached.Response != "answer" {
		t.Fatalf("live entry not served: ok=%v cached=%+v", ok, cached)
	}

	// Once stale it is treated as absent and evicted on read
	*now = now.Add(2 * time.Second)
	if _, ok := cache.Get("query"); ok {
		t.Fatal("stale entry served")
	}
	if cache.Len() != 0 {
		t.Errorf("stale entry not evicted, %d resident", cache.Len())
	}
}

func TestResponseCacheRewriteRefreshesTimestamp(t *testing.T) {
	ttl := 5 * time.Minute
	cache, now := newTestCache(t, 16, ttl)

	cache.Put("query", "first", 0.7)
	*now = now.Add(ttl + time.Second)
	cache.Put("query", "second", 0.6)

	cached, ok := cache.Get("query")
	if !ok {
		t.Fatal("rewritten entry missing")
	}
	if cached.Response != "second" {
		t.Errorf("response = %q, want the rewritten value", cached.Response)
	}
}

func TestResponseCacheLRUCap(t *testing.T) {
	cache, _ := newTestCache(t, 2, 5*time.Minute)

	cache.Put("first", "a", 1)
	cache.Put("second", "b", 1)
	cache.Put("third", "c", 1)

	if _, ok := cache.Get("first"); ok {
		t.Error("oldest entry should have been evicted by the cap")
	}
	if _, ok := cache.Get("third"); !ok {
		t.Error("newest entry missing")
	}
	if cache.Len() != 2 {
		t.Errorf("resident entries = %d, want 2", cache.Len())
	}
}
