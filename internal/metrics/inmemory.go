package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	PagesRendered         map[string]uint64
	PageCacheHits         uint64
	PageCacheMisses       uint64
	RenderDurationCount   uint64
	RenderDurationTotalNs int64
	NotFound              uint64
	Redirects             map[int]uint64
	RedirectsRateLimited  uint64
}

// Templates returns the rendered template names in sorted order.
func (s Snapshot) Templates() []string {
	names := make([]string, 0, len(s.PagesRendered))
	for name := range s.PagesRendered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RedirectStatuses returns the observed redirect status codes in order.
func (s Snapshot) RedirectStatuses() []int {
	codes := make([]int, 0, len(s.Redirects))
	for code := range s.Redirects {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	pageCacheHits         uint64
	pageCacheMisses       uint64
	renderDurationCount   uint64
	renderDurationTotalNs int64
	notFound              uint64
	redirectsRateLimited  uint64

	mu            sync.Mutex
	pagesRendered map[string]uint64
	redirects     map[int]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		pagesRendered: make(map[string]uint64),
		redirects:     make(map[int]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	pages := make(map[string]uint64, len(m.pagesRendered))
	for k, v := range m.pagesRendered {
		pages[k] = v
	}
	redirects := make(map[int]uint64, len(m.redirects))
	for k, v := range m.redirects {
		redirects[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		PagesRendered:         pages,
		PageCacheHits:         atomic.LoadUint64(&m.pageCacheHits),
		PageCacheMisses:       atomic.LoadUint64(&m.pageCacheMisses),
		RenderDurationCount:   atomic.LoadUint64(&m.renderDurationCount),
		RenderDurationTotalNs: atomic.LoadInt64(&m.renderDurationTotalNs),
		NotFound:              atomic.LoadUint64(&m.notFound),
		Redirects:             redirects,
		RedirectsRateLimited:  atomic.LoadUint64(&m.redirectsRateLimited),
	}
}

// IncPageRendered increments the rendered counter of template.
func (m *InMemoryRecorder) IncPageRendered(template string) {
	m.mu.Lock()
	m.pagesRendered[template]++
	m.mu.Unlock()
}

// IncPageCacheHit increments cache hit counter.
func (m *InMemoryRecorder) IncPageCacheHit() {
	atomic.AddUint64(&m.pageCacheHits, 1)
}

// IncPageCacheMiss increments cache miss counter.
func (m *InMemoryRecorder) IncPageCacheMiss() {
	atomic.AddUint64(&m.pageCacheMisses, 1)
}

// ObserveRenderDuration records render duration.
func (m *InMemoryRecorder) ObserveRenderDuration(duration time.Duration) {
	atomic.AddUint64(&m.renderDurationCount, 1)
	atomic.AddInt64(&m.renderDurationTotalNs, duration.Nanoseconds())
}

// IncNotFound increments the not found counter.
func (m *InMemoryRecorder) IncNotFound() {
	atomic.AddUint64(&m.notFound, 1)
}

// IncRedirect increments the redirect counter of status.
func (m *InMemoryRecorder) IncRedirect(status int) {
	m.mu.Lock()
	m.redirects[status]++
	m.mu.Unlock()
}

// IncRedirectRateLimited increments the rate limited redirect counter.
func (m *InMemoryRecorder) IncRedirectRateLimited() {
	atomic.AddUint64(&m.redirectsRateLimited, 1)
}
