package observable

import (
	"errors"

	"github.com/selectdb/observable_list/pkg/xerror"
	"github.com/selectdb/observable_list/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

// FailurePolicy decides what a panicking observer does to the rest of a dispatch.
type FailurePolicy int

const (
	// IsolateFailures recovers the panic, reports it and keeps notifying
	// the remaining observers.
	IsolateFailures FailurePolicy = iota
	// PropagateFailures lets the panic unwind out of Notify, so observers
	// after the failing one miss the event.
	PropagateFailures
)

// FailurePolicy Stringer
func (p FailurePolicy) String() string {
	switch p {
	case IsolateFailures:
		return "isolate"
	case PropagateFailures:
		return "propagate"
	default:
		return "unknown"
	}
}

// FailureHandler receives the error built from an isolated observer panic.
type FailureHandler func(event Event, observer ItemsObserver, err error)

type DispatcherOption func(*Dispatcher)

func WithFailurePolicy(policy FailurePolicy) DispatcherOption {
	return func(d *Dispatcher) {
		d.policy = policy
	}
}

func WithFailureHandler(handler FailureHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.onFailure = handler
	}
}

// Dispatcher delivers events synchronously, on the calling goroutine.
type Dispatcher struct {
	policy    FailurePolicy
	onFailure FailureHandler
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{policy: IsolateFailures}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Policy() FailurePolicy {
	return d.policy
}

// Notify takes one snapshot of the registry and calls every observer in it,
// in registration order. Observers registered during the dispatch are not
// called for this event; observers unregistered during it still are.
func (d *Dispatcher) Notify(registry *Registry, event Event) {
	observers := registry.Snapshot()
	log.Tracef("registry %s: dispatch %s to %d observers", registry.Name(), event, len(observers))

	for _, observer := range observers {
		d.deliver(registry, observer, event)
	}
	xmetrics.Dispatch(event.Kind.String(), len(observers))
}

func (d *Dispatcher) deliver(registry *Registry, observer ItemsObserver, event Event) {
	if d.policy == PropagateFailures {
		call(observer, event)
		return
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err := xerror.Panicf(xerror.Observer, "observer %T panicked on %s: %v", observer, event, r)
		log.Errorf("registry %s: %+v", registry.Name(), err)
		var xerr *xerror.XError
		if errors.As(err, &xerr) {
			xmetrics.AddError(xerr)
		}
		if d.onFailure != nil {
			d.onFailure(event, observer, err)
		}
	}()
	call(observer, event)
}

func call(observer ItemsObserver, event Event) {
	switch event.Kind {
	case ItemInserted:
		if o, ok := observer.(InsertionObserver); ok {
			o.OnItemInserted(event.Index)
			return
		}
		observer.OnItemsReloaded()
	case ItemRemoved:
		if o, ok := observer.(RemovalObserver); ok {
			o.OnItemRemoved(event.Index)
			return
		}
		observer.OnItemsReloaded()
	case ItemChanged:
		observer.OnItemChanged(event.Index)
	case ItemsReloaded:
		observer.OnItemsReloaded()
	default:
		log.Warnf("unknown event kind: %d", event.Kind)
	}
}
