package refdata

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
)

//go:embed guides/*.json
var embeddedGuides embed.FS

// Guide describes one travel-guide document exposed as a resource.
type Guide struct {
	// Key is the stable identifier, e.g. "san_francisco".
	Key string
	// Title is the human-readable resource name.
	Title string
	// Description summarizes the guide.
	Description string
}

// GuideKeys lists the embedded guide keys, sorted.
func GuideKeys() []string {
	entries, err := fs.Glob(embeddedGuides, "guides/*.json")
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(entry, "guides/"), ".json")
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Guides describes every embedded travel guide.
func Guides() []Guide {
	return []Guide{
		{Key: "austin", Title: "Austin Travel Guide", Description: "Comprehensive travel guide for Austin, Texas"},
		{Key: "san_francisco", Title: "San Francisco Travel Guide", Description: "Comprehensive travel guide for San Francisco, California"},
		{Key: "new_york", Title: "New York Travel Guide", Description: "Comprehensive travel guide for New York City"},
	}
}

// ReadGuide returns the raw JSON document for a guide key. Unknown keys
// fail with UnknownLocationError listing the available guides.
func ReadGuide(key string) ([]byte, error) {
	data, err := fs.ReadFile(embeddedGuides, "guides/"+key+".json")
	if err != nil {
		return nil, &errdefs.UnknownLocationError{Location: key, Known: GuideKeys()}
	}
	return data, nil
}
