// Package observertest provides Observer implementations for tests.
package observertest

import (
	"sync"
)

// Recorder records every value it is notified with.
//
// Recorder is safe for concurrent use.
type Recorder[T any] struct {
	values []T
	mu     sync.Mutex
}

// NewRecorder constructs an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Update appends the value.
func (r *Recorder[T]) Update(value T) error {
	r.mu.Lock()
	r.values = append(r.values, value)
	r.mu.Unlock()
	return nil
}

// Values returns a snapshot copy of recorded values in notification order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]T, len(r.values))
	copy(cp, r.values)
	return cp
}

// Count returns how many notifications were received.
func (r *Recorder[T]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Reset clears the recorder.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}

// Failing returns Err from every Update and counts the calls.
type Failing[T any] struct {
	Err   error
	calls int
	mu    sync.Mutex
}

// NewFailing constructs a Failing observer returning err.
func NewFailing[T any](err error) *Failing[T] {
	return &Failing[T]{Err: err}
}

func (f *Failing[T]) Update(value T) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.Err
}

// Calls returns how many times Update ran.
func (f *Failing[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Sequence appends name to a shared log on every Update. Tests use several
// Sequence observers over one log to check notification order.
type Sequence[T any] struct {
	Name string
	Log  *[]string
}

func (s Sequence[T]) Update(value T) error {
	*s.Log = append(*s.Log, s.Name)
	return nil
}
