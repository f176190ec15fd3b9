// Package observability provides hooks for metrics and logging.
//
// Library packages stay free of any observability backend. The boundaries
// (the HTTP service and the CLI) report events through the hook interfaces
// below, and main decides what receives them: the log-backed hooks of the CLI,
// the Prometheus collector in this package, or nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	metrics := observability.NewPrometheus()
//	observability.SetLayoutHooks(metrics)
//	observability.SetHTTPHooks(metrics)
//
// Boundaries call hooks to emit events:
//
//	start := time.Now()
//	layout := labels.LayoutAxis(m, width, values, font)
//	observability.Layout().OnAxisLayout(ctx, len(values), int(layout.Rotation), layout.Overlap, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from label layout and formatting requests.
type LayoutHooks interface {
	// OnAxisLayout records one rotation decision over labelCount labels.
	OnAxisLayout(ctx context.Context, labelCount int, rotation int, overlap bool, duration time.Duration)

	// OnFormat records count values formatted with kind.
	OnFormat(ctx context.Context, kind string, count int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP service.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnError records a request that failed with err.
	OnError(ctx context.Context, method, route string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnAxisLayout(context.Context, int, int, bool, time.Duration) {}
func (NoopLayoutHooks) OnFormat(context.Context, string, int)                      {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	httpHooks = NoopHTTPHooks{}
}

// Multi fans events out to several hook sets.
type Multi []interface {
	LayoutHooks
	HTTPHooks
}

func (m Multi) OnAxisLayout(ctx context.Context, n, rotation int, overlap bool, d time.Duration) {
	for _, h := range m {
		h.OnAxisLayout(ctx, n, rotation, overlap, d)
	}
}

func (m Multi) OnFormat(ctx context.Context, kind string, count int) {
	for _, h := range m {
		h.OnFormat(ctx, kind, count)
	}
}

func (m Multi) OnRequest(ctx context.Context, method, route string) {
	for _, h := range m {
		h.OnRequest(ctx, method, route)
	}
}

func (m Multi) OnResponse(ctx context.Context, method, route string, status int, d time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, route, status, d)
	}
}

func (m Multi) OnError(ctx context.Context, method, route string, err error) {
	for _, h := range m {
		h.OnError(ctx, method, route, err)
	}
}
