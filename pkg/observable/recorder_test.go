package observable

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

type recorder struct {
	name   string
	events []Event
	hook   func(Event)
}

func (r *recorder) record(e Event) {
	r.events = append(r.events, e)
	if r.hook != nil {
		r.hook(e)
	}
}

func (r *recorder) OnItemInserted(index int) { r.record(Inserted(index)) }
func (r *recorder) OnItemRemoved(index int)  { r.record(Removed(index)) }
func (r *recorder) OnItemChanged(index int)  { r.record(Changed(index)) }
func (r *recorder) OnItemsReloaded()         { r.record(Reloaded()) }

// itemsOnly implements only the data source capability set.
type itemsOnly struct {
	events []Event
}

func (o *itemsOnly) OnItemChanged(index int) { o.events = append(o.events, Changed(index)) }
func (o *itemsOnly) OnItemsReloaded()        { o.events = append(o.events, Reloaded()) }

// valueObserver is registered by value and therefore never held weakly.
type valueObserver struct {
	counter *int
}

func (o valueObserver) OnItemChanged(int) { *o.counter++ }
func (o valueObserver) OnItemsReloaded()  { *o.counter++ }
