package example_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/observe/attribute"
	"github.com/tailored-agentic-units/observe/example"
	"github.com/tailored-agentic-units/observe/observability"
	"github.com/tailored-agentic-units/observe/observer/observertest"
)

func TestNew(t *testing.T) {
	e, err := example.New(1, 2, "three")
	require.NoError(t, err)

	a, err := e.A()
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, e.B)

	c, err := e.C()
	require.NoError(t, err)
	assert.Equal(t, "three", c)

	assert.Zero(t, e.ObserversA())
	assert.Zero(t, e.ObserversC())
	assert.NotEmpty(t, e.ID())
}

func TestUnconstructedInstance(t *testing.T) {
	var e example.ObservableExample
	_, err := e.A()
	assert.ErrorIs(t, err, attribute.ErrNoSlots)
}

// TestScenario walks the register/mutate sequence end to end.
func TestScenario(t *testing.T) {
	e, err := example.New(1, 2, "three")
	require.NoError(t, err)
	rec := observertest.NewRecorder[int]()

	// Not yet registered: no notification.
	require.NoError(t, e.IncA(1))
	assert.Zero(t, rec.Count())

	e.RegisterA(rec)
	require.NoError(t, e.IncA(1))
	assert.Equal(t, []int{3}, rec.Values())

	require.NoError(t, e.SetA(1))
	assert.Equal(t, []int{3, 1}, rec.Values())

	// Other fields do not reach a's observer.
	require.NoError(t, e.SetC("nine"))
	e.B = 1
	assert.Equal(t, 2, rec.Count())

	// A second instance is independent of the first.
	second, err := example.New(900, 1, "ok")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Count())
	assert.Equal(t, 1, e.ObserversA())
	assert.Zero(t, second.ObserversA())

	require.NoError(t, second.SetA(5))
	assert.Equal(t, 2, rec.Count())

	a, err := e.A()
	require.NoError(t, err)
	assert.Equal(t, 1, a)
}

func TestRegisterC(t *testing.T) {
	e, err := example.New(1, 2, "three")
	require.NoError(t, err)

	ints := observertest.NewRecorder[int]()
	strs := observertest.NewRecorder[string]()
	e.RegisterA(ints)
	e.RegisterC(strs)

	require.NoError(t, e.SetC("four"))
	require.NoError(t, e.SetC("four"))

	assert.Equal(t, []string{"four", "four"}, strs.Values())
	assert.Zero(t, ints.Count())
	assert.Equal(t, 1, e.ObserversC())
}

func TestFailingObserver(t *testing.T) {
	e, err := example.New(1, 2, "three")
	require.NoError(t, err)

	cause := errors.New("cannot apply")
	e.RegisterA(observertest.NewFailing[int](cause))

	err = e.SetA(4)
	assert.ErrorIs(t, err, cause)

	a, err := e.A()
	require.NoError(t, err)
	assert.Equal(t, 4, a)
}

func TestEvents(t *testing.T) {
	var events []observability.Event
	sink := observability.ObserverFunc(func(ctx context.Context, ev observability.Event) {
		events = append(events, ev)
	})

	e, err := example.New(1, 2, "three", attribute.WithEvents(sink))
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, attribute.EventSlotsCreate, events[0].Type)
	assert.Equal(t, "ObservableExample.a", events[1].Source)
	assert.Equal(t, "ObservableExample.c", events[2].Source)
	assert.Equal(t, 0, events[1].Data["observers"])
	assert.Equal(t, e.ID(), events[1].Data["instance"])
}
