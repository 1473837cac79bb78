package observer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/observe/observability"
	"github.com/tailored-agentic-units/observe/observer"
	"github.com/tailored-agentic-units/observe/observer/observertest"
)

func TestFunc(t *testing.T) {
	var got int
	var obs observer.Observer[int] = observer.Func[int](func(v int) error {
		got = v
		return nil
	})

	require.NoError(t, obs.Update(7))
	assert.Equal(t, 7, got)
}

func TestFunc_Error(t *testing.T) {
	want := errors.New("boom")
	obs := observer.Func[string](func(string) error { return want })

	assert.ErrorIs(t, obs.Update("x"), want)
}

func TestEvents(t *testing.T) {
	var events []observability.Event
	sink := observability.ObserverFunc(func(ctx context.Context, e observability.Event) {
		events = append(events, e)
	})

	obs := observer.Events[int](sink, "printer")
	require.NoError(t, obs.Update(3))
	require.NoError(t, obs.Update(1))

	require.Len(t, events, 2)
	assert.Equal(t, observer.EventUpdate, events[0].Type)
	assert.Equal(t, "printer", events[0].Source)
	assert.Equal(t, observability.LevelInfo, events[0].Level)
	assert.Equal(t, 3, events[0].Data["value"])
	assert.Equal(t, 1, events[1].Data["value"])
}

func TestEvents_NilSink(t *testing.T) {
	obs := observer.Events[string](nil, "discard")
	assert.NoError(t, obs.Update("ignored"))
}

func TestRecorder(t *testing.T) {
	rec := observertest.NewRecorder[int]()
	require.NoError(t, rec.Update(1))
	require.NoError(t, rec.Update(2))

	values := rec.Values()
	assert.Equal(t, []int{1, 2}, values)
	assert.Equal(t, 2, rec.Count())

	values[0] = 99
	assert.Equal(t, []int{1, 2}, rec.Values(), "Values must return a copy")

	rec.Reset()
	assert.Zero(t, rec.Count())
}

func TestFailing(t *testing.T) {
	want := errors.New("refused")
	f := observertest.NewFailing[int](want)

	assert.ErrorIs(t, f.Update(1), want)
	assert.ErrorIs(t, f.Update(2), want)
	assert.Equal(t, 2, f.Calls())
}
