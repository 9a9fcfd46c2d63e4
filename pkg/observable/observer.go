package observable

//go:generate mockgen -source=observer.go -destination=../../test_util/mock_observer.go -package=test_util

// ItemsObserver is the capability set a data source requires from its
// observers. Inserts and removals are delivered through the optional
// InsertionObserver and RemovalObserver interfaces; an observer that does not
// implement one of them gets OnItemsReloaded instead.
type ItemsObserver interface {
	OnItemChanged(index int)
	OnItemsReloaded()
}

type InsertionObserver interface {
	// OnItemInserted is called with the position of the new element after
	// the insertion.
	OnItemInserted(index int)
}

type RemovalObserver interface {
	// OnItemRemoved is called with the position the element resided at.
	OnItemRemoved(index int)
}

// ListObserver is the full capability set required by read/write collections.
type ListObserver interface {
	ItemsObserver
	InsertionObserver
	RemovalObserver
}

// ObserverFuncs adapts plain functions to ListObserver. Nil fields are
// skipped. Use it by pointer: the pointer is the registration identity.
type ObserverFuncs struct {
	Inserted func(index int)
	Removed  func(index int)
	Changed  func(index int)
	Reloaded func()
}

var _ ListObserver = (*ObserverFuncs)(nil)

func (f *ObserverFuncs) OnItemInserted(index int) {
	if f.Inserted != nil {
		f.Inserted(index)
	}
}

func (f *ObserverFuncs) OnItemRemoved(index int) {
	if f.Removed != nil {
		f.Removed(index)
	}
}

func (f *ObserverFuncs) OnItemChanged(index int) {
	if f.Changed != nil {
		f.Changed(index)
	}
}

func (f *ObserverFuncs) OnItemsReloaded() {
	if f.Reloaded != nil {
		f.Reloaded()
	}
}
