package observable

import (
	"errors"
	"testing"

	"github.com/selectdb/observable_list/pkg/xerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversMatchingCallback(t *testing.T) {
	r := NewRegistry("deliver")
	o := &recorder{}
	r.Register(o, Strong)

	d := NewDispatcher()
	d.Notify(r, Inserted(3))
	d.Notify(r, Removed(1))
	d.Notify(r, Changed(0))
	d.Notify(r, Reloaded())

	assert.Equal(t, []Event{Inserted(3), Removed(1), Changed(0), Reloaded()}, o.events)
}

func TestDispatcher_DuplicateRegistrationNotifiedTwice(t *testing.T) {
	r := NewRegistry("dup")
	o := &recorder{}
	r.Register(o, Strong)
	r.Register(o, Strong)

	d := NewDispatcher()
	d.Notify(r, Changed(2))
	assert.Equal(t, []Event{Changed(2), Changed(2)}, o.events)

	r.Unregister(o)
	o.events = nil
	d.Notify(r, Changed(2))
	assert.Equal(t, []Event{Changed(2)}, o.events)
}

func TestDispatcher_ItemsObserverFallsBackToReload(t *testing.T) {
	r := NewRegistry("fallback")
	o := &itemsOnly{}
	r.Register(o, Weak)

	d := NewDispatcher()
	d.Notify(r, Inserted(0))
	d.Notify(r, Removed(0))
	d.Notify(r, Changed(4))

	assert.Equal(t, []Event{Reloaded(), Reloaded(), Changed(4)}, o.events)
}

func TestDispatcher_RegisterDuringDispatch(t *testing.T) {
	r := NewRegistry("reentrant-add")
	late := &recorder{name: "late"}
	first := &recorder{name: "first"}
	first.hook = func(Event) {
		if len(first.events) == 1 {
			r.Register(late, Strong)
		}
	}
	r.Register(first, Strong)

	d := NewDispatcher()
	d.Notify(r, Inserted(0))
	assert.Empty(t, late.events)

	d.Notify(r, Inserted(1))
	assert.Equal(t, []Event{Inserted(1)}, late.events)
	assert.Equal(t, []Event{Inserted(0), Inserted(1)}, first.events)
}

func TestDispatcher_UnregisterDuringDispatch(t *testing.T) {
	r := NewRegistry("reentrant-remove")
	second := &recorder{name: "second"}
	first := &recorder{name: "first"}
	first.hook = func(Event) { r.Unregister(second) }
	r.Register(first, Strong)
	r.Register(second, Strong)

	d := NewDispatcher()
	d.Notify(r, Changed(0))
	assert.Equal(t, []Event{Changed(0)}, second.events)

	d.Notify(r, Changed(1))
	assert.Equal(t, []Event{Changed(0)}, second.events)
}

func TestDispatcher_IsolateFailures(t *testing.T) {
	r := NewRegistry("isolate")
	bad := &recorder{name: "bad", hook: func(Event) { panic("boom") }}
	good := &recorder{name: "good"}
	r.Register(bad, Strong)
	r.Register(good, Strong)

	var failures []error
	d := NewDispatcher(WithFailureHandler(func(event Event, observer ItemsObserver, err error) {
		assert.Equal(t, Removed(2), event)
		assert.Same(t, bad, observer)
		failures = append(failures, err)
	}))
	assert.Equal(t, IsolateFailures, d.Policy())

	assert.NotPanics(t, func() { d.Notify(r, Removed(2)) })
	assert.Equal(t, []Event{Removed(2)}, good.events)

	require.Len(t, failures, 1)
	var xerr *xerror.XError
	require.True(t, errors.As(failures[0], &xerr))
	assert.Equal(t, xerror.Observer, xerr.Category())
	assert.True(t, xerr.IsPanic())
	assert.Contains(t, failures[0].Error(), "boom")
}

func TestDispatcher_PropagateFailures(t *testing.T) {
	r := NewRegistry("propagate")
	bad := &recorder{name: "bad", hook: func(Event) { panic("boom") }}
	good := &recorder{name: "good"}
	r.Register(bad, Strong)
	r.Register(good, Strong)

	d := NewDispatcher(WithFailurePolicy(PropagateFailures))
	assert.PanicsWithValue(t, "boom", func() { d.Notify(r, Inserted(0)) })
	assert.Empty(t, good.events)
}

func TestSubject_Fork(t *testing.T) {
	s := NewSubject("parent", Weak)
	o := &recorder{}
	s.Register(o)

	child := s.Fork("child")
	assert.Equal(t, Weak, child.Mode())
	assert.Equal(t, 0, child.Registry().Len())

	child.Notify(Changed(0))
	assert.Empty(t, o.events)

	s.Notify(Changed(0))
	assert.Equal(t, []Event{Changed(0)}, o.events)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "inserted(1)", Inserted(1).String())
	assert.Equal(t, "removed(0)", Removed(0).String())
	assert.Equal(t, "changed(7)", Changed(7).String())
	assert.Equal(t, "reloaded", Reloaded().String())
	assert.Equal(t, "unknown(9)", EventKind(9).String())
}

func TestObserverFuncs(t *testing.T) {
	var got []Event
	f := &ObserverFuncs{
		Inserted: func(index int) { got = append(got, Inserted(index)) },
		Reloaded: func() { got = append(got, Reloaded()) },
	}
	r := NewRegistry("funcs")
	r.Register(f, Strong)

	d := NewDispatcher()
	d.Notify(r, Inserted(5))
	d.Notify(r, Removed(5))
	d.Notify(r, Reloaded())

	assert.Equal(t, []Event{Inserted(5), Reloaded()}, got)
}
