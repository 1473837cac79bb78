package main

import (
	"fmt"

	"github.com/tailored-agentic-units/observe/attribute"
	"github.com/tailored-agentic-units/observe/example"
	"github.com/tailored-agentic-units/observe/observability"
	"github.com/tailored-agentic-units/observe/observer"
)

// report counts what the scenario observed.
type report struct {
	Notifications   []int
	FirstObservers  int
	SecondObservers int
}

// runScenario constructs an entity, mutates it before and after registering
// an observer on a, touches the other fields, and constructs a second
// entity. Every notification is forwarded to sink.
func runScenario(a, b int, c string, sink observability.Observer) (report, error) {
	var r report

	first, err := example.New(a, b, c, attribute.WithEvents(sink))
	if err != nil {
		return r, fmt.Errorf("construct first entity: %w", err)
	}

	if err := first.IncA(1); err != nil {
		return r, err
	}

	printer := observer.Events[int](sink, "printer")
	first.RegisterA(observer.Func[int](func(v int) error {
		r.Notifications = append(r.Notifications, v)
		return printer.Update(v)
	}))

	if err := first.IncA(1); err != nil {
		return r, err
	}
	if err := first.SetA(1); err != nil {
		return r, err
	}

	if err := first.SetC("nine"); err != nil {
		return r, err
	}
	first.B = 1

	second, err := example.New(900, 1, "ok", attribute.WithEvents(sink))
	if err != nil {
		return r, fmt.Errorf("construct second entity: %w", err)
	}

	r.FirstObservers = first.ObserversA()
	r.SecondObservers = second.ObserversA()
	return r, nil
}
