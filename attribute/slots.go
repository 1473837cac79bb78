package attribute

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/observe/observability"
	"github.com/tailored-agentic-units/observe/observer"
)

// Owner is implemented by every type that declares observable attributes.
// Slots must return the same *Slots for the lifetime of the instance.
type Owner interface {
	Slots() *Slots
}

// Slots holds the per-instance state of every observable attribute declared
// on an owner: one cell per field name, each with its current value and its
// own observer list.
//
// Slots is safe for concurrent use. Observers run outside its lock.
type Slots struct {
	id     string
	events observability.Observer
	cells  map[string]any
	mu     sync.RWMutex
}

// SlotsOption configures Slots.
type SlotsOption func(*Slots)

// WithEvents routes diagnostic events for this instance to obs.
func WithEvents(obs observability.Observer) SlotsOption {
	return func(s *Slots) {
		if obs != nil {
			s.events = obs
		}
	}
}

// NewSlots creates empty per-instance storage. Owners call it in their
// constructor before writing any observed field. Each Slots receives a
// UUIDv7 identifier used in errors and events.
func NewSlots(opts ...SlotsOption) *Slots {
	s := &Slots{
		id:     uuid.Must(uuid.NewV7()).String(),
		events: observability.NoOpObserver{},
		cells:  make(map[string]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.emit(EventSlotsCreate, observability.LevelVerbose, "slots", map[string]any{
		"instance": s.id,
	})
	return s
}

// ID returns the instance identifier.
func (s *Slots) ID() string {
	return s.id
}

// Fields returns how many fields have storage on this instance.
func (s *Slots) Fields() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}

func (s *Slots) emit(typ observability.EventType, level observability.Level, source string, data map[string]any) {
	s.events.OnEvent(context.Background(), observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}

// cell is the storage for one field on one instance.
type cell[T any] struct {
	value     T
	set       bool
	observers []observer.Observer[T]
}

// cellFor returns the cell for field, creating it on first use. The caller
// must hold s.mu for writing.
func cellFor[T any](s *Slots, field string) (*cell[T], bool) {
	raw, ok := s.cells[field]
	if !ok {
		c := &cell[T]{}
		s.cells[field] = c
		return c, true
	}
	c, ok := raw.(*cell[T])
	return c, ok
}

// lookupCell returns the cell for field without creating it. The caller must
// hold s.mu for reading.
func lookupCell[T any](s *Slots, field string) (*cell[T], bool) {
	raw, ok := s.cells[field]
	if !ok {
		return nil, false
	}
	c, ok := raw.(*cell[T])
	return c, ok
}
