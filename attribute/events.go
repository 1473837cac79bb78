package attribute

import "github.com/tailored-agentic-units/observe/observability"

const (
	EventSlotsCreate observability.EventType = "attribute.slots.create"
	EventRegister    observability.EventType = "attribute.register"
	EventSet         observability.EventType = "attribute.set"
	EventNotifyError observability.EventType = "attribute.notify.error"
)
