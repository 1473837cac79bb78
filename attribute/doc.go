// Package attribute implements observable attributes: named, typed fields
// whose every write synchronously notifies the observers registered on that
// field of that instance.
//
// # Descriptors and instances
//
// An Attribute[T] is a descriptor declared once per owning type, usually as a
// package-level variable bound at init:
//
//	var countAttr = attribute.New[int]("count").Bind((*Counter)(nil))
//
// The descriptor holds no values and no observers. Each instance of the
// owning type carries a *Slots, created by its constructor, and the
// descriptor resolves the value and observer list for its field from that
// instance at access time:
//
//	type Counter struct{ slots *attribute.Slots }
//
//	func (c *Counter) Slots() *attribute.Slots { return c.slots }
//
//	func NewCounter() *Counter {
//	    c := &Counter{slots: attribute.NewSlots()}
//	    _ = countAttr.Set(c, 0)
//	    return c
//	}
//
// Two instances of Counter therefore never share values or observers.
//
// # Notification
//
// Set stores the value, then calls Update on every observer registered for
// that (instance, field) pair, in registration order, on the caller's
// goroutine. Set returns once every observer has returned. Writing the
// current value again still notifies. The first observer error stops the
// fan-out and is returned wrapped in a *NotifyError; the value stays stored.
//
// # Diagnostics
//
// Slots created with WithEvents report registrations, writes and observer
// failures to an observability.Observer. Events carry metadata only, never
// the written value.
package attribute
