package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncContactCreated is a no-op.
func (n *NoopRecorder) IncContactCreated() {}

// IncContactRejected is a no-op.
func (n *NoopRecorder) IncContactRejected() {}

// IncContactFailed is a no-op.
func (n *NoopRecorder) IncContactFailed() {}

// ObserveListContacts is a no-op.
func (n *NoopRecorder) ObserveListContacts(count int, duration time.Duration) {}

// IncEventPublished is a no-op.
func (n *NoopRecorder) IncEventPublished(status string) {}
