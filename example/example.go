// Package example declares ObservableExample, an entity with two observable
// fields and one plain field.
package example

import (
	"github.com/tailored-agentic-units/observe/attribute"
	"github.com/tailored-agentic-units/observe/observer"
)

var (
	attrA = attribute.New[int]("a").Bind((*ObservableExample)(nil))
	attrC = attribute.New[string]("c").Bind((*ObservableExample)(nil))
)

// ObservableExample has observable fields a (int) and c (string) and a plain
// field B. Writes to a and c notify the observers registered on that field of
// this instance; writes to B notify nobody.
type ObservableExample struct {
	slots *attribute.Slots

	B int
}

// New constructs an ObservableExample and assigns the initial values. Every
// instance gets its own observer lists, so nothing registered elsewhere is
// notified by these writes.
func New(a, b int, c string, opts ...attribute.SlotsOption) (*ObservableExample, error) {
	e := &ObservableExample{slots: attribute.NewSlots(opts...)}
	if err := e.SetA(a); err != nil {
		return nil, err
	}
	e.B = b
	if err := e.SetC(c); err != nil {
		return nil, err
	}
	return e, nil
}

// Slots implements attribute.Owner.
func (e *ObservableExample) Slots() *attribute.Slots {
	if e == nil {
		return nil
	}
	return e.slots
}

// ID returns the instance identifier.
func (e *ObservableExample) ID() string {
	return e.slots.ID()
}

// A returns the current value of a.
func (e *ObservableExample) A() (int, error) {
	return attrA.Get(e)
}

// SetA writes a and notifies the observers registered with RegisterA.
func (e *ObservableExample) SetA(v int) error {
	return attrA.Set(e, v)
}

// IncA adds delta to a and notifies with the result.
func (e *ObservableExample) IncA(delta int) error {
	return attrA.Modify(e, func(v int) int { return v + delta })
}

// RegisterA appends obs to the observers notified on every write to a.
func (e *ObservableExample) RegisterA(obs observer.Observer[int]) {
	attrA.Register(e, obs)
}

// ObserversA returns how many observers are registered on a.
func (e *ObservableExample) ObserversA() int {
	return attrA.Observers(e)
}

// C returns the current value of c.
func (e *ObservableExample) C() (string, error) {
	return attrC.Get(e)
}

// SetC writes c and notifies the observers registered with RegisterC.
func (e *ObservableExample) SetC(v string) error {
	return attrC.Set(e, v)
}

// RegisterC appends obs to the observers notified on every write to c.
func (e *ObservableExample) RegisterC(obs observer.Observer[string]) {
	attrC.Register(e, obs)
}

// ObserversC returns how many observers are registered on c.
func (e *ObservableExample) ObserversC() int {
	return attrC.Observers(e)
}
