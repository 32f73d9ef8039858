package refdata_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
)

func TestGuidesMatchEmbeddedFiles(t *testing.T) {
	keys := refdata.GuideKeys()
	guides := refdata.Guides()
	if len(guides) != len(keys) {
		t.Fatalf("%d guide descriptors for %d embedded files", len(guides), len(keys))
	}

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		seen[key] = true
	}
	for _, guide := range guides {
		if !seen[guide.Key] {
			t.Errorf("guide %q has no embedded document", guide.Key)
		}
		if guide.Title == "" || guide.Description == "" {
			t.Errorf("guide %q is missing metadata", guide.Key)
		}
	}
}

func TestReadGuide(t *testing.T) {
	for _, key := range refdata.GuideKeys() {
		data, err := refdata.ReadGuide(key)
		if err != nil {
			t.Fatalf("ReadGuide(%s) failed: %v", key, err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("guide %s is not valid JSON: %v", key, err)
		}
		if doc["city"] == nil {
			t.Errorf("guide %s has no city field", key)
		}
	}
}

func TestReadGuideUnknownKey(t *testing.T) {
	_, err := refdata.ReadGuide("atlantis")
	var unknown *errdefs.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if len(unknown.Known) == 0 {
		t.Error("error does not list available guides")
	}
}

func TestReadGuideRejectsPathTraversal(t *testing.T) {
	if _, err := refdata.ReadGuide("../guides/austin"); err == nil {
		t.Error("traversal key accepted")
	}
}
