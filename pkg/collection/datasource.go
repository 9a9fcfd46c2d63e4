package collection

import "github.com/selectdb/observable_list/pkg/observable"

// DataSource is a read-only, index addressed view of a sequence for
// presentation. Observers are held weakly by default, so a short-lived
// component that forgets to unregister is still collected.
//
// DataSource has no mutation surface. The code that owns the sequence
// mutates it and calls the matching Notify* method; MutableDataSource does
// both.
type DataSource[T any] struct {
	seq     Sequence[T]
	subject *observable.Subject
}

// NewDataSource reads from seq; the caller keeps seq for writing.
func NewDataSource[T any](seq Sequence[T], opts ...observable.DispatcherOption) *DataSource[T] {
	return &DataSource[T]{
		seq:     seq,
		subject: observable.NewSubject("data_source", observable.Weak, opts...),
	}
}

// DataSourceOf wraps a fixed slice.
func DataSourceOf[T any](items []T, opts ...observable.DispatcherOption) *DataSource[T] {
	return NewDataSource[T](NewSliceSequence(items), opts...)
}

func (d *DataSource[T]) Get(index int) (T, error) {
	if err := checkIndex(index, d.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	return d.seq.At(index), nil
}

func (d *DataSource[T]) Len() int {
	return d.seq.Len()
}

// AddObserver registers o weakly.
func (d *DataSource[T]) AddObserver(o observable.ItemsObserver) {
	d.subject.Register(o)
}

// AddObserverStrong registers o and keeps it reachable until it is removed.
func (d *DataSource[T]) AddObserverStrong(o observable.ItemsObserver) {
	d.subject.RegisterMode(o, observable.Strong)
}

// RemoveObserver drops one registration of o and purges registrations of
// observers that were already collected.
func (d *DataSource[T]) RemoveObserver(o observable.ItemsObserver) {
	d.subject.Unregister(o)
}

// Observers returns the number of registrations, stale ones included.
func (d *DataSource[T]) Observers() int {
	return d.subject.Registry().Len()
}

func (d *DataSource[T]) NotifyItemInserted(index int) {
	d.subject.Notify(observable.Inserted(index))
}

func (d *DataSource[T]) NotifyItemRemoved(index int) {
	d.subject.Notify(observable.Removed(index))
}

func (d *DataSource[T]) NotifyItemChanged(index int) {
	d.subject.Notify(observable.Changed(index))
}

func (d *DataSource[T]) NotifyItemsReloaded() {
	d.subject.Notify(observable.Reloaded())
}
