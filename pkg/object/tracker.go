package object

import (
	"slices"
)

// Tracker records heap events so that object lifetimes can be audited after
// a run. Install it with Heap.SetTrace(tracker.Record).
type Tracker struct {
	events []Event
	live   map[uint64]Event
}

func NewTracker() *Tracker {
	return &Tracker{
		live: make(map[uint64]Event),
	}
}

func (t *Tracker) Record(e Event) {
	t.events = append(t.events, e)

	switch e.Type {
	case EventAlloc:
		t.live[e.ID] = e
	case EventFree:
		delete(t.live, e.ID)
	}
}

func (t *Tracker) Events() []Event {
	return t.events
}

// Count returns how many events of the given type were recorded for id.
func (t *Tracker) Count(typ EventType, id uint64) int {
	var n int
	for _, e := range t.events {
		if e.Type == typ && e.ID == id {
			n++
		}
	}

	return n
}

// Leaked returns the ids of objects that were allocated and never freed.
func (t *Tracker) Leaked() []uint64 {
	ids := make([]uint64, 0, len(t.live))
	for id := range t.live {
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return ids
}
