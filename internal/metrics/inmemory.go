package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ContactsCreated     uint64
	ContactsRejected    uint64
	ContactsFailed      uint64
	ListCount           uint64
	ListRowsTotal       uint64
	ListDurationTotalNs int64
	EventsPublished     uint64
	EventsDropped       uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	contactsCreated     uint64
	contactsRejected    uint64
	contactsFailed      uint64
	listCount           uint64
	listRowsTotal       uint64
	listDurationTotalNs int64
	eventsPublished     uint64
	eventsDropped       uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ContactsCreated:     atomic.LoadUint64(&m.contactsCreated),
		ContactsRejected:    atomic.LoadUint64(&m.contactsRejected),
		ContactsFailed:      atomic.LoadUint64(&m.contactsFailed),
		ListCount:           atomic.LoadUint64(&m.listCount),
		ListRowsTotal:       atomic.LoadUint64(&m.listRowsTotal),
		ListDurationTotalNs: atomic.LoadInt64(&m.listDurationTotalNs),
		EventsPublished:     atomic.LoadUint64(&m.eventsPublished),
		EventsDropped:       atomic.LoadUint64(&m.eventsDropped),
	}
}

// IncContactCreated increments the created counter.
func (m *InMemoryRecorder) IncContactCreated() {
	atomic.AddUint64(&m.contactsCreated, 1)
}

// IncContactRejected increments the validation rejection counter.
func (m *InMemoryRecorder) IncContactRejected() {
	atomic.AddUint64(&m.contactsRejected, 1)
}

// IncContactFailed increments the storage failure counter.
func (m *InMemoryRecorder) IncContactFailed() {
	atomic.AddUint64(&m.contactsFailed, 1)
}

// ObserveListContacts records one listing call.
func (m *InMemoryRecorder) ObserveListContacts(count int, duration time.Duration) {
	atomic.AddUint64(&m.listCount, 1)
	atomic.AddUint64(&m.listRowsTotal, uint64(count))
	atomic.AddInt64(&m.listDurationTotalNs, duration.Nanoseconds())
}

// IncEventPublished increments the publish counter for the given status.
func (m *InMemoryRecorder) IncEventPublished(status string) {
	switch status {
	case "success":
		atomic.AddUint64(&m.eventsPublished, 1)
	case "dropped":
		atomic.AddUint64(&m.eventsDropped, 1)
	}
}
