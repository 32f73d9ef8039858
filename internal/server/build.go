// Package server assembles the MCP server: every registered tool is
// exposed through a wrapper that logs, audits, caches, and always hands
// the client a JSON envelope — a failed tool call never kills the
// process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tripstack/travel-mcp-server/internal/audit"
	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/idempotency"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/security"
)

// guideURIPrefix anchors travel-guide resource URIs.
const guideURIPrefix = "file://resources/travel_guides/"

// Builder constructs an MCP server from the tool registry.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool and resource events.
	Audit audit.Logger
	// Cache stores idempotent responses; nil disables caching.
	Cache *idempotency.Cache
	// CacheKeyStrategy selects how cache keys are computed.
	CacheKeyStrategy string
	// ToolTimeout bounds a single tool call; zero means no limit.
	ToolTimeout time.Duration
	// Registry supplies the tools in listing order.
	Registry *registry.Registry
}

// Build creates an MCP server exposing every registered tool and the
// embedded travel-guide resources.
func (b Builder) Build(name, version string) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	for _, guide := range refdata.Guides() {
		b.addGuide(server, guide)
	}

	for _, descriptor := range b.Registry.List() {
		handler, err := b.Registry.Get(descriptor.Name)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", descriptor.Name, err)
		}
		b.addTool(server, descriptor, handler)
	}

	return server, nil
}

func (b Builder) addGuide(server *mcp.Server, guide refdata.Guide) {
	server.AddResource(&mcp.Resource{
		Name:        guide.Title,
		URI:         guideURIPrefix + guide.Key + ".json",
		Description: guide.Description,
		MIMEType:    "application/json",
	}, func(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := refdata.ReadGuide(guide.Key)
		if err != nil {
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "resource_error", Tool: guide.Key, Code: errdefs.Code(err), Detail: err.Error()})
			}
			return nil, err
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "resource_read", Tool: guide.Key})
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: guideURIPrefix + guide.Key + ".json", MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	})
}

func (b Builder) addTool(server *mcp.Server, descriptor registry.Descriptor, handler registry.Handler) {
	readOnly := true
	mcpTool := &mcp.Tool{
		Name:        descriptor.Name,
		Title:       descriptor.Title,
		Description: descriptor.Description,
		InputSchema: descriptor.InputSchema(),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: readOnly},
	}

	mcp.AddTool(server, mcpTool, func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, map[string]any, error) {
		correlationID, providedID := correlationID(args)

		if b.Logger != nil {
			b.Logger.Info("tool call", "tool", descriptor.Name, "correlation_id", correlationID, "args", security.RedactArguments(args))
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: descriptor.Name, CorrelationID: correlationID})
		}

		cacheKey := ""
		if b.Cache != nil {
			key, err := buildCacheKey(descriptor.Name, correlationID, providedID, args, b.CacheKeyStrategy)
			if err != nil {
				if b.Logger != nil {
					b.Logger.Warn("cache key build failed", "tool", descriptor.Name, "error", err)
				}
			} else {
				cacheKey = key
			}
		}
		if cached, ok := b.Cache.Get(cacheKey); ok {
			if b.Logger != nil {
				b.Logger.Info("tool cache hit", "tool", descriptor.Name, "correlation_id", correlationID)
			}
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "cache_hit", Tool: descriptor.Name, CorrelationID: correlationID})
			}
			return nil, cached, nil
		}

		ctxTool := ctx
		var cancel context.CancelFunc
		if b.ToolTimeout > 0 {
			ctxTool, cancel = context.WithTimeout(ctx, b.ToolTimeout)
			defer cancel()
		}

		envelope, err := handler.Execute(ctxTool, args)
		if err != nil {
			if errors.Is(ctxTool.Err(), context.DeadlineExceeded) && envelope == nil {
				timeoutErr := &errdefs.UpstreamError{Status: errdefs.UpstreamStatusTimeout, Message: "tool call timed out"}
				envelope = map[string]any{
					"error": timeoutErr.Error(),
					"code":  errdefs.Code(timeoutErr),
				}
			}
			if envelope == nil {
				// Handlers shape their own error envelopes; this is the
				// backstop for anything that slipped through.
				envelope = map[string]any{
					"error": err.Error(),
					"code":  errdefs.Code(err),
				}
			}
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "tool_error", Tool: descriptor.Name, CorrelationID: correlationID, Code: errdefs.Code(err), Detail: err.Error()})
			}
			return nil, envelope, nil
		}

		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "tool_ok", Tool: descriptor.Name, CorrelationID: correlationID})
		}
		if b.Cache != nil && cacheKey != "" {
			b.Cache.Set(cacheKey, envelope)
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "cache_store", Tool: descriptor.Name, CorrelationID: correlationID})
			}
		}
		return nil, envelope, nil
	})
}

// correlationID reads a caller-supplied id, or mints one.
func correlationID(args map[string]any) (string, bool) {
	if args != nil {
		if raw, ok := args["correlation_id"].(string); ok && raw != "" {
			return raw, true
		}
		if raw, ok := args["request_id"].(string); ok && raw != "" {
			return raw, true
		}
	}
	return fmt.Sprintf("corr-%d", time.Now().UTC().UnixNano()), false
}
