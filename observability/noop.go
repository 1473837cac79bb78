package observability

import "context"

// NoOpObserver discards all events. Attributes default to it when no
// diagnostic observer is configured.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
