// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Contact submission metrics
	IncContactCreated()
	IncContactRejected()
	IncContactFailed()

	// Listing metrics
	ObserveListContacts(count int, duration time.Duration)

	// Event publishing
	IncEventPublished(status string) // status: "success" or "dropped"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
