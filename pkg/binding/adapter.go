package binding

import (
	"weak"

	"github.com/selectdb/observable_list/pkg/observable"
	log "github.com/sirupsen/logrus"
)

// Source is the read side an Adapter binds from. *collection.DataSource and
// *collection.MutableDataSource satisfy it.
type Source[T any] interface {
	Get(index int) (T, error)
	Len() int
	AddObserver(o observable.ItemsObserver)
	RemoveObserver(o observable.ItemsObserver)
}

const untagged = -1

type boundView[V any] struct {
	ref   weak.Pointer[V]
	index int
}

// Option configures an Adapter.
type Option func(*itemCallbacks)

type itemCallbacks struct {
	inserted func(index int)
	removed  func(index int)
}

// WithItemCallbacks forwards inserts and removals with their index instead of
// reporting them as a data set change. Either callback may be nil, and that
// kind of change then falls back to the data set changed callback.
func WithItemCallbacks(inserted, removed func(index int)) Option {
	return func(c *itemCallbacks) {
		c.inserted = inserted
		c.removed = removed
	}
}

// Adapter turns a Source into item views of type V. It observes the source:
// a changed item is rebound in place on every live view showing it, inserts
// and removals go to the item callbacks when set, any other change is
// reported through the data set changed callback so the owner can relayout.
//
// Views are tracked weakly; the owner of the views decides their lifetime.
// Sources hold their observers weakly too, so keep the Adapter referenced
// for as long as it is attached.
type Adapter[T any, V any] struct {
	source    Source[T]
	create    func() *V
	bind      func(view *V, item T)
	changed   func()
	callbacks itemCallbacks
	views     []boundView[V]
}

// NewAdapter builds an adapter. create makes a new view, bind fills a view
// with an item, and dataSetChanged, which may be nil, is called on reloads
// and on inserts and removals no item callback handles.
func NewAdapter[T any, V any](source Source[T], create func() *V, bind func(view *V, item T), dataSetChanged func(), opts ...Option) *Adapter[T, V] {
	a := &Adapter[T, V]{
		source:  source,
		create:  create,
		bind:    bind,
		changed: dataSetChanged,
	}
	for _, opt := range opts {
		opt(&a.callbacks)
	}
	return a
}

func (a *Adapter[T, V]) Attach() {
	a.source.AddObserver(a)
}

func (a *Adapter[T, V]) Detach() {
	a.source.RemoveObserver(a)
}

func (a *Adapter[T, V]) Count() int {
	return a.source.Len()
}

func (a *Adapter[T, V]) Item(index int) (T, error) {
	return a.source.Get(index)
}

// View binds the item at index into reuse, or into a new view when reuse is
// nil, and returns the bound view.
func (a *Adapter[T, V]) View(index int, reuse *V) (*V, error) {
	item, err := a.source.Get(index)
	if err != nil {
		return nil, err
	}

	view := reuse
	if view == nil {
		view = a.create()
	}
	a.tag(view, index)
	a.bind(view, item)
	return view, nil
}

// LiveViews returns the number of tracked views not collected yet.
func (a *Adapter[T, V]) LiveViews() int {
	a.prune()
	return len(a.views)
}

func (a *Adapter[T, V]) tag(view *V, index int) {
	ref := weak.Make(view)
	for i := range a.views {
		if a.views[i].ref == ref {
			a.views[i].index = index
			return
		}
	}

	a.prune()
	a.views = append(a.views, boundView[V]{ref: ref, index: index})
}

func (a *Adapter[T, V]) prune() {
	live := a.views[:0]
	for _, v := range a.views {
		if v.ref.Value() != nil {
			live = append(live, v)
		}
	}
	clear(a.views[len(live):])
	a.views = live
}

func (a *Adapter[T, V]) OnItemChanged(index int) {
	item, err := a.source.Get(index)
	if err != nil {
		log.Warnf("rebind changed item failed, err: %+v", err)
		return
	}

	for _, v := range a.views {
		if v.index != index {
			continue
		}
		if view := v.ref.Value(); view != nil {
			a.bind(view, item)
		}
	}
}

func (a *Adapter[T, V]) OnItemInserted(index int) {
	a.shift(index, 1)
	if a.callbacks.inserted == nil {
		a.dataSetChanged()
		return
	}
	a.callbacks.inserted(index)
}

func (a *Adapter[T, V]) OnItemRemoved(index int) {
	a.shift(index, -1)
	if a.callbacks.removed == nil {
		a.dataSetChanged()
		return
	}
	a.callbacks.removed(index)
}

func (a *Adapter[T, V]) OnItemsReloaded() {
	a.dataSetChanged()
}

func (a *Adapter[T, V]) dataSetChanged() {
	if a.changed != nil {
		a.changed()
	}
}

// shift keeps view tags pointing at the same items after an insert (by 1) or
// a removal (by -1) at index. A view showing a removed item is untagged.
func (a *Adapter[T, V]) shift(index int, by int) {
	for i := range a.views {
		v := &a.views[i]
		switch {
		case v.index < 0 || v.index < index:
		case by < 0 && v.index == index:
			v.index = untagged
		default:
			v.index += by
		}
	}
}
