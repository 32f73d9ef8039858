package idempotency

import (
	"testing"
	"time"
)

func TestCacheHitAndMiss(t *testing.T) {
	cache := NewCache(time.Hour, 10)

	if _, ok := cache.Get("absent"); ok {
		t.Error("empty cache reported a hit")
	}

	cache.Set("key", Envelope{"resultsFound": 3})
	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("stored entry not found")
	}
	if got["resultsFound"] != 3 {
		t.Errorf("cached value = %v", got)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	current := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.Set("key", Envelope{"ok": true})
	if _, ok := cache.Get("key"); !ok {
		t.Fatal("fresh entry not found")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := cache.Get("key"); ok {
		t.Error("expired entry returned")
	}
	// Expired entries are dropped on read.
	if len(cache.items) != 0 {
		t.Errorf("expired entry retained, items = %d", len(cache.items))
	}
}

func TestCacheLRUEviction(t *testing.T) {
	cache := NewCache(time.Hour, 2)

	cache.Set("a", Envelope{"n": 1})
	cache.Set("b", Envelope{"n": 2})

	// Touch "a" so "b" is least recently used.
	if _, ok := cache.Get("a"); !ok {
		t.Fatal("entry a missing")
	}
	cache.Set("c", Envelope{"n": 3})

	if _, ok := cache.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("recently used entry evicted")
	}
	if _, ok := cache.Get("c"); !ok {
		t.Error("newest entry evicted")
	}
}

func TestCacheNilReceiver(t *testing.T) {
	var cache *Cache
	cache.Set("key", Envelope{"ok": true})
	if _, ok := cache.Get("key"); ok {
		t.Error("nil cache reported a hit")
	}
}

func TestCacheUpdateRefreshesEntry(t *testing.T) {
	cache := NewCache(time.Hour, 10)
	cache.Set("key", Envelope{"n": 1})
	cache.Set("key", Envelope{"n": 2})

	got, ok := cache.Get("key")
	if !ok || got["n"] != 2 {
		t.Errorf("updated value = %v, ok = %v", got, ok)
	}
	if len(cache.items) != 1 {
		t.Errorf("update created a second entry, items = %d", len(cache.items))
	}
}
