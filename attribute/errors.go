package attribute

import (
	"errors"
	"fmt"
)

var (
	// ErrUnset is matched by the error returned when reading a field that was
	// never written on the given instance.
	ErrUnset = errors.New("attribute not set")

	// ErrUnbound is returned when a descriptor is used before Bind.
	ErrUnbound = errors.New("attribute not bound to an owner type")

	// ErrOwnerMismatch is returned when a descriptor is used with an instance
	// of a type other than the one it was bound to.
	ErrOwnerMismatch = errors.New("instance does not match attribute owner")

	// ErrNoSlots is returned when an instance has no Slots, typically because
	// it was not built by its constructor.
	ErrNoSlots = errors.New("instance has no attribute slots")
)

// UnsetError reports a read of a field before its first write.
type UnsetError struct {
	Owner    string
	Field    string
	Instance string
}

func (e *UnsetError) Error() string {
	return fmt.Sprintf("%s.%s not set on instance %s", e.Owner, e.Field, e.Instance)
}

// Is makes UnsetError match ErrUnset.
func (e *UnsetError) Is(target error) bool {
	return target == ErrUnset
}

// NotifyError reports an observer failure during Set. Index is the
// observer's position in registration order; observers after it were not
// notified.
type NotifyError struct {
	Owner string
	Field string
	Index int
	Err   error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify %s.%s observer %d: %v", e.Owner, e.Field, e.Index, e.Err)
}

// Unwrap enables errors.Is and errors.As on the observer's error.
func (e *NotifyError) Unwrap() error {
	return e.Err
}
