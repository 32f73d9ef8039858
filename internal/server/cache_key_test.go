package server

import (
	"strings"
	"testing"
)

func TestBuildCacheKeyArgumentsHash(t *testing.T) {
	args := map[string]any{"city": "Austin", "nights": float64(3)}

	key, err := buildCacheKey("searchHotels", "corr-1", true, args, "arguments_hash")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if !strings.HasPrefix(key, "searchHotels:") {
		t.Errorf("key %q lacks tool prefix", key)
	}

	// The correlation id must not influence the hash.
	other, err := buildCacheKey("searchHotels", "corr-2", true, args, "arguments_hash")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if key != other {
		t.Error("same arguments hashed differently under different correlation ids")
	}
}

func TestBuildCacheKeyExcludesCorrelationFields(t *testing.T) {
	base := map[string]any{"city": "Austin"}
	withIDs := map[string]any{"city": "Austin", "correlation_id": "c-1", "request_id": "r-1"}

	first, err := buildCacheKey("searchHotels", "", false, base, "arguments_hash")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	second, err := buildCacheKey("searchHotels", "", false, withIDs, "arguments_hash")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if first != second {
		t.Error("correlation fields changed the argument hash")
	}
}

func TestBuildCacheKeyAuto(t *testing.T) {
	args := map[string]any{"city": "Austin"}

	withID, err := buildCacheKey("searchHotels", "corr-1", true, args, "auto")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if withID != "searchHotels:corr-1" {
		t.Errorf("auto with id = %q", withID)
	}

	withoutID, err := buildCacheKey("searchHotels", "generated-id", false, args, "auto")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	hashed, _ := buildCacheKey("searchHotels", "", false, args, "arguments_hash")
	if withoutID != hashed {
		t.Error("auto without a caller id did not fall back to the argument hash")
	}
}

func TestBuildCacheKeyCorrelationStrategy(t *testing.T) {
	key, err := buildCacheKey("searchHotels", "corr-1", true, nil, "correlation_id")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if key != "searchHotels:corr-1" {
		t.Errorf("key = %q", key)
	}

	// No id under the correlation strategy means no caching.
	key, err = buildCacheKey("searchHotels", "", false, nil, "correlation_id")
	if err != nil {
		t.Fatalf("buildCacheKey failed: %v", err)
	}
	if key != "" {
		t.Errorf("key = %q, want empty", key)
	}
}

func TestBuildCacheKeyUnsupportedStrategy(t *testing.T) {
	if _, err := buildCacheKey("searchHotels", "", false, nil, "random"); err == nil {
		t.Error("unsupported strategy accepted")
	}
}

func TestCanonicalJSONKeyOrder(t *testing.T) {
	first, err := canonicalJSON(map[string]any{"b": 2, "a": []any{"x", map[string]any{"k": "v"}}})
	if err != nil {
		t.Fatalf("canonicalJSON failed: %v", err)
	}
	want := `{"a":["x",{"k":"v"}],"b":2}`
	if string(first) != want {
		t.Errorf("canonicalJSON = %s, want %s", first, want)
	}
}
