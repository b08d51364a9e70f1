package telemetry

import (
	"sync"
	"time"
)

// MemoryRepo is a bounded in-process event log. Old events roll off; the
// log exists for usage stats, not audit.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []Event
	nextID int
	limit  int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{limit: 10_000}
}

func (r *MemoryRepo) Record(typ EventType, metadata map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      typ,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
	if len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
}

func (r *MemoryRepo) ListSince(since time.Time) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0, len(r.events))
	for _, e := range r.events {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out
}
