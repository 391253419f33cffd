package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncPageRendered is a no-op.
func (n *NoopRecorder) IncPageRendered(template string) {}

// IncPageCacheHit is a no-op.
func (n *NoopRecorder) IncPageCacheHit() {}

// IncPageCacheMiss is a no-op.
func (n *NoopRecorder) IncPageCacheMiss() {}

// ObserveRenderDuration is a no-op.
func (n *NoopRecorder) ObserveRenderDuration(duration time.Duration) {}

// IncNotFound is a no-op.
func (n *NoopRecorder) IncNotFound() {}

// IncRedirect is a no-op.
func (n *NoopRecorder) IncRedirect(status int) {}

// IncRedirectRateLimited is a no-op.
func (n *NoopRecorder) IncRedirectRateLimited() {}
