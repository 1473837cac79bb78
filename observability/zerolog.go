package observability

import (
	"context"

	"github.com/rs/zerolog"
)

// ZerologObserver emits events to a zerolog.Logger using the same shape as
// SlogObserver: event type as message, source and Data as fields.
type ZerologObserver struct {
	logger zerolog.Logger
}

// NewZerologObserver creates a ZerologObserver that emits to the given logger.
func NewZerologObserver(logger zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{logger: logger}
}

func (o *ZerologObserver) OnEvent(ctx context.Context, event Event) {
	e := o.logger.WithLevel(event.Level.ZerologLevel()).Ctx(ctx)
	if !e.Enabled() {
		return
	}
	e = e.Str("source", event.Source)
	if !event.Timestamp.IsZero() {
		e = e.Time("event_time", event.Timestamp)
	}
	e.Fields(event.Data).Msg(string(event.Type))
}
