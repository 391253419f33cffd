// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Page metrics
	IncPageRendered(template string)
	IncPageCacheHit()
	IncPageCacheMiss()
	ObserveRenderDuration(duration time.Duration)
	IncNotFound()

	// Redirect metrics
	IncRedirect(status int)
	IncRedirectRateLimited()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
