package server

import (
	"context"
	"strings"
	"testing"

	"github.com/tripstack/travel-mcp-server/internal/registry"
)

func TestCorrelationID(t *testing.T) {
	id, provided := correlationID(map[string]any{"correlation_id": "corr-1"})
	if id != "corr-1" || !provided {
		t.Errorf("correlationID = %q, provided = %v", id, provided)
	}

	id, provided = correlationID(map[string]any{"request_id": "req-1"})
	if id != "req-1" || !provided {
		t.Errorf("request_id fallback = %q, provided = %v", id, provided)
	}

	id, provided = correlationID(nil)
	if provided {
		t.Error("minted id reported as caller-provided")
	}
	if !strings.HasPrefix(id, "corr-") {
		t.Errorf("minted id = %q", id)
	}
}

func TestBuild(t *testing.T) {
	reg := registry.New()
	err := reg.Register(registry.Descriptor{
		Name:   "searchHotels",
		Title:  "Search Hotels",
		Params: []registry.Param{{Name: "city", Type: "string", Required: true}},
	}, registry.HandlerFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return map[string]any{"resultsFound": 0}, nil
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	server, err := Builder{Registry: reg}.Build("travel-mcp-server", "1.0.0")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if server == nil {
		t.Fatal("Build returned a nil server")
	}
}
