package observer

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/observe/observability"
)

// EventUpdate is emitted by the observer returned from Events for every value
// it receives.
const EventUpdate observability.EventType = "observer.update"

type eventObserver[T any] struct {
	sink   observability.Observer
	source string
}

// Events returns an Observer that reports each received value to sink as an
// EventUpdate at info level. It never fails. A nil sink yields an observer
// that discards values.
func Events[T any](sink observability.Observer, source string) Observer[T] {
	if sink == nil {
		sink = observability.NoOpObserver{}
	}
	return &eventObserver[T]{sink: sink, source: source}
}

func (o *eventObserver[T]) Update(value T) error {
	o.sink.OnEvent(context.Background(), observability.Event{
		Type:      EventUpdate,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    o.source,
		Data:      map[string]any{"value": value},
	})
	return nil
}
