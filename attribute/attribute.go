package attribute

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/tailored-agentic-units/observe/observability"
	"github.com/tailored-agentic-units/observe/observer"
)

// bindings tracks the field names bound per owner type so two descriptors
// cannot claim the same storage.
var (
	bindings = map[reflect.Type]map[string]struct{}{}
	bindMu   sync.Mutex
)

// Attribute is the descriptor of one observable field of type T.
//
// An Attribute is created and bound once per owning type and shared by all of
// its instances. It never stores values or observers itself.
type Attribute[T any] struct {
	name  string
	owner reflect.Type
}

// New creates an unbound descriptor for the field called name.
func New[T any](name string) *Attribute[T] {
	if name == "" {
		panic("attribute: empty field name")
	}
	return &Attribute[T]{name: name}
}

// Bind associates the descriptor with the owning type of owner, which may be
// a typed nil pointer. Bind must run once per declared field, at package
// initialization; binding twice, or binding a name already claimed on the
// same owner type, panics.
func (a *Attribute[T]) Bind(owner Owner) *Attribute[T] {
	if a.owner != nil {
		panic(fmt.Sprintf("attribute: %s.%s already bound", a.owner, a.name))
	}
	typ := reflect.TypeOf(owner)
	if typ == nil {
		panic("attribute: Bind with untyped nil owner")
	}

	bindMu.Lock()
	defer bindMu.Unlock()

	names, ok := bindings[typ]
	if !ok {
		names = map[string]struct{}{}
		bindings[typ] = names
	}
	if _, taken := names[a.name]; taken {
		panic(fmt.Sprintf("attribute: field %q already bound on %s", a.name, typ))
	}
	names[a.name] = struct{}{}

	a.owner = typ
	return a
}

// Name returns the field name.
func (a *Attribute[T]) Name() string {
	return a.name
}

// Owner returns the name of the bound owner type, or "" when unbound.
func (a *Attribute[T]) Owner() string {
	if a.owner == nil {
		return ""
	}
	return ownerName(a.owner)
}

func ownerName(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Name()
}

func (a *Attribute[T]) source() string {
	return a.Owner() + "." + a.name
}

func (a *Attribute[T]) slotsOf(inst Owner) (*Slots, error) {
	if a.owner == nil {
		return nil, fmt.Errorf("%s: %w", a.name, ErrUnbound)
	}
	if inst == nil || reflect.TypeOf(inst) != a.owner {
		return nil, fmt.Errorf("%s with %T: %w", a.source(), inst, ErrOwnerMismatch)
	}
	s := inst.Slots()
	if s == nil {
		return nil, fmt.Errorf("%s: %w", a.source(), ErrNoSlots)
	}
	return s, nil
}

func (a *Attribute[T]) typeClash(s *Slots) error {
	return fmt.Errorf("%s on instance %s holds a different value type: %w",
		a.source(), s.id, ErrOwnerMismatch)
}

// Get returns the value last written to this field on inst. It fails with an
// error matching ErrUnset when the field has never been written.
func (a *Attribute[T]) Get(inst Owner) (T, error) {
	var zero T

	s, err := a.slotsOf(inst)
	if err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := lookupCell[T](s, a.name)
	if !ok && s.cells[a.name] != nil {
		return zero, a.typeClash(s)
	}
	if c == nil || !c.set {
		return zero, &UnsetError{Owner: a.Owner(), Field: a.name, Instance: s.id}
	}
	return c.value, nil
}

// Lookup returns the current value and whether the field has been written.
// Descriptor misuse reports false.
func (a *Attribute[T]) Lookup(inst Owner) (T, bool) {
	v, err := a.Get(inst)
	return v, err == nil
}

// MustGet is like Get but panics on error.
func (a *Attribute[T]) MustGet(inst Owner) T {
	v, err := a.Get(inst)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores value for this field on inst, then notifies the observers
// registered on it in registration order. It returns after the last observer
// returns, or with a *NotifyError at the first observer failure, in which
// case later observers are not called.
func (a *Attribute[T]) Set(inst Owner, value T) error {
	s, err := a.slotsOf(inst)
	if err != nil {
		return err
	}

	s.mu.Lock()
	c, ok := cellFor[T](s, a.name)
	if !ok {
		s.mu.Unlock()
		return a.typeClash(s)
	}
	c.value = value
	c.set = true
	// The list is append-only, so the header taken here keeps describing
	// exactly the observers registered at the time of this write.
	observers := c.observers
	s.mu.Unlock()

	s.emit(EventSet, observability.LevelVerbose, a.source(), map[string]any{
		"instance":  s.id,
		"observers": len(observers),
	})

	for i, obs := range observers {
		if err := obs.Update(value); err != nil {
			s.emit(EventNotifyError, observability.LevelError, a.source(), map[string]any{
				"instance": s.id,
				"index":    i,
				"error":    err.Error(),
			})
			return &NotifyError{Owner: a.Owner(), Field: a.name, Index: i, Err: err}
		}
	}
	return nil
}

// Modify replaces the current value with fn(current) through Set. It fails
// with ErrUnset when the field has never been written. The read and the
// write are separate steps; concurrent writers may interleave between them.
func (a *Attribute[T]) Modify(inst Owner, fn func(T) T) error {
	v, err := a.Get(inst)
	if err != nil {
		return err
	}
	return a.Set(inst, fn(v))
}

// Register appends obs to the observer list of this field on inst. The same
// observer registered twice is notified twice per write. A nil obs is
// ignored. Register panics on descriptor misuse, which is a programming error
// in the owner type.
func (a *Attribute[T]) Register(inst Owner, obs observer.Observer[T]) {
	if obs == nil {
		return
	}
	s, err := a.slotsOf(inst)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	c, ok := cellFor[T](s, a.name)
	if !ok {
		s.mu.Unlock()
		panic(a.typeClash(s))
	}
	c.observers = append(c.observers, obs)
	n := len(c.observers)
	s.mu.Unlock()

	s.emit(EventRegister, observability.LevelVerbose, a.source(), map[string]any{
		"instance":  s.id,
		"observers": n,
	})
}

// Observers returns how many observers are registered on this field of inst.
func (a *Attribute[T]) Observers(inst Owner) int {
	s, err := a.slotsOf(inst)
	if err != nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := lookupCell[T](s, a.name)
	if !ok {
		return 0
	}
	return len(c.observers)
}
