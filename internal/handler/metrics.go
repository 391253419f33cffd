package handler

import (
	"fmt"
	"net/http"

	"github.com/jackpotai/web/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, name := range snap.Templates() {
		writeMetric(w, "jackpotai_pages_rendered_total{template=%q} %d\n", name, snap.PagesRendered[name])
	}
	writeMetric(w, "jackpotai_page_cache_hits_total %d\n", snap.PageCacheHits)
	writeMetric(w, "jackpotai_page_cache_misses_total %d\n", snap.PageCacheMisses)
	writeMetric(w, "jackpotai_render_duration_seconds_count %d\n", snap.RenderDurationCount)
	writeMetric(w, "jackpotai_render_duration_seconds_sum %.6f\n", float64(snap.RenderDurationTotalNs)/1e9)
	writeMetric(w, "jackpotai_not_found_total %d\n", snap.NotFound)

	for _, code := range snap.RedirectStatuses() {
		writeMetric(w, "jackpotai_redirects_total{status=\"%d\"} %d\n", code, snap.Redirects[code])
	}
	writeMetric(w, "jackpotai_redirects_rate_limited_total %d\n", snap.RedirectsRateLimited)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
