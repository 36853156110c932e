package object

import (
	"log/slog"

	"github.com/rhino1998/ample/pkg/kinds"
)

type EventType int

const (
	EventAlloc EventType = iota
	EventFree
)

func (e EventType) String() string {
	switch e {
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	default:
		return "<unknown>"
	}
}

type Event struct {
	Type EventType
	ID   uint64
	Kind kinds.Kind
}

type Stats struct {
	Allocated int
	Released  int
}

func (s Stats) Live() int {
	return s.Allocated - s.Released
}

// Heap allocates objects and keeps count of their lifetimes. Object IDs start
// at 1 and are never reused within a heap.
type Heap struct {
	logger *slog.Logger
	nextID uint64
	stats  Stats
	trace  func(Event)
}

func NewHeap(logger *slog.Logger) *Heap {
	return &Heap{
		logger: logger,
	}
}

// SetTrace installs a callback that observes every allocation and release.
func (h *Heap) SetTrace(fn func(Event)) {
	h.trace = fn
}

func (h *Heap) Stats() Stats {
	return h.stats
}

func (h *Heap) NewInteger(val int32) *Object {
	o := h.alloc(kinds.Int)
	o.integer = val
	return o
}

func (h *Heap) NewString(val string) *Object {
	o := h.alloc(kinds.String)
	o.str = val
	return o
}

func (h *Heap) NewBool(val bool) *Object {
	o := h.alloc(kinds.Bool)
	o.boolean = val
	return o
}

func (h *Heap) alloc(kind kinds.Kind) *Object {
	h.nextID++
	h.stats.Allocated++

	o := &Object{
		heap:     h,
		id:       h.nextID,
		kind:     kind,
		refcount: 1,
	}

	h.emit(Event{Type: EventAlloc, ID: o.id, Kind: kind})
	return o
}

func (h *Heap) released(o *Object) {
	h.stats.Released++
	h.emit(Event{Type: EventFree, ID: o.id, Kind: o.kind})
}

func (h *Heap) emit(e Event) {
	if h.logger != nil {
		h.logger.Debug("heap", "event", e.Type, "id", e.ID, "kind", e.Kind)
	}

	if h.trace != nil {
		h.trace(e)
	}
}
