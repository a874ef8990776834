package handler

import (
	"fmt"
	"net/http"

	"github.com/contactd/contactd/internal/metrics"
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

	writeMetric(w, "contactd_contacts_created_total %d\n", snap.ContactsCreated)
	writeMetric(w, "contactd_contacts_rejected_total %d\n", snap.ContactsRejected)
	writeMetric(w, "contactd_contacts_failed_total %d\n", snap.ContactsFailed)

	writeMetric(w, "contactd_list_requests_total %d\n", snap.ListCount)
	writeMetric(w, "contactd_list_rows_total %d\n", snap.ListRowsTotal)
	writeMetric(w, "contactd_list_duration_seconds_sum %.6f\n", float64(snap.ListDurationTotalNs)/1e9)

	writeMetric(w, "contactd_events_published_total{status=\"success\"} %d\n", snap.EventsPublished)
	writeMetric(w, "contactd_events_published_total{status=\"dropped\"} %d\n", snap.EventsDropped)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
