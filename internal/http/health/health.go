// Package health serves liveness and readiness probes for the HTTP
// transport.
package health

import (
	"net/http"
	"sync/atomic"
)

// Handler tracks readiness and answers probe requests.
type Handler struct {
	ready atomic.Bool
}

// New returns a health handler that starts not ready.
func New() *Handler {
	return &Handler{}
}

// SetReady marks the server as able to accept MCP traffic.
func (h *Handler) SetReady() {
	h.ready.Store(true)
}

// SetNotReady flips readiness off, e.g. during shutdown.
func (h *Handler) SetNotReady() {
	h.ready.Store(false)
}

// Healthz handles liveness probes.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Readyz handles readiness probes.
func (h *Handler) Readyz(w http.ResponseWriter, _ *http.Request) {
	if h.ready.Load() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("not ready"))
}
