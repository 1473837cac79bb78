// Package observer defines the capability notified by observable attributes.
//
// An Observer[T] is invoked with every value written to the attribute it is
// registered on. The value type parameter is shared with attribute.Attribute,
// so an observer of the wrong type cannot be registered.
package observer

// Observer reacts to a new attribute value.
//
// Update runs synchronously inside the write that triggered it. A non-nil
// error stops the notification of any observer registered after this one
// and is returned to the writer.
type Observer[T any] interface {
	Update(value T) error
}

// Func adapts a plain function to Observer.
type Func[T any] func(value T) error

// Update calls f(value).
func (f Func[T]) Update(value T) error {
	return f(value)
}
