package collection

import (
	"io"

	"github.com/selectdb/observable_list/pkg/observable"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

type recorder struct {
	events []observable.Event
}

func (r *recorder) OnItemInserted(index int) { r.events = append(r.events, observable.Inserted(index)) }
func (r *recorder) OnItemRemoved(index int)  { r.events = append(r.events, observable.Removed(index)) }
func (r *recorder) OnItemChanged(index int)  { r.events = append(r.events, observable.Changed(index)) }
func (r *recorder) OnItemsReloaded()         { r.events = append(r.events, observable.Reloaded()) }

func (r *recorder) reset() []observable.Event {
	events := r.events
	r.events = nil
	return events
}

// counter only implements the data source capability set and counts calls
// in memory owned by the test, so it can be checked after the counter dies.
type counter struct {
	calls *int
}

func (c *counter) OnItemChanged(int) { *c.calls++ }
func (c *counter) OnItemsReloaded()  { *c.calls++ }
