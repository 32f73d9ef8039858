// Package upstream wraps outbound HTTP calls to third-party travel APIs
// behind a single GetJSON capability with mandatory timeouts.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/security"
)

// maxBodyBytes caps upstream response bodies.
const maxBodyBytes = 1 << 20

// Client issues single-shot GET requests and maps failures onto the
// shared error taxonomy. No retries: one call per search.
type Client struct {
	// HTTP is the underlying client; a default is used when nil.
	HTTP *http.Client
	// Timeout bounds each call when the context has no deadline.
	Timeout time.Duration
	// Logger logs request metadata with redacted headers.
	Logger *slog.Logger
}

// GetJSON performs a GET request and decodes the JSON response into out.
//
// Deadline hits map to UpstreamError{Status: "timeout"}, transport errors
// and non-2xx statuses to UpstreamError, and undecodable bodies to
// ResponseParseError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, headers map[string]string, out any) error {
	if strings.TrimSpace(rawURL) == "" {
		return &errdefs.ConfigurationError{Reason: "upstream url is empty"}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	target := rawURL
	if len(query) > 0 {
		separator := "?"
		if strings.Contains(rawURL, "?") {
			separator = "&"
		}
		target = rawURL + separator + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	if c.Logger != nil {
		c.Logger.Debug("upstream request", "url", rawURL, "headers", security.RedactHeaders(headers))
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &errdefs.UpstreamError{Status: errdefs.UpstreamStatusTimeout, Message: "upstream request timed out"}
		}
		if errors.Is(err, context.Canceled) {
			return ctx.Err()
		}
		return &errdefs.UpstreamError{Status: "network", Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &errdefs.UpstreamError{Status: errdefs.UpstreamStatusTimeout, Message: "upstream request timed out"}
		}
		return &errdefs.UpstreamError{Status: fmt.Sprintf("%d", resp.StatusCode), Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errdefs.UpstreamError{
			Status:  fmt.Sprintf("%d", resp.StatusCode),
			Message: truncate(strings.TrimSpace(string(data)), 500),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &errdefs.ResponseParseError{Reason: err.Error()}
	}
	return nil
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
