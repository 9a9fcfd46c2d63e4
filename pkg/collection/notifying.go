package collection

import "github.com/selectdb/observable_list/pkg/observable"

// NotifyingList is a Collection that notifies its observers after every
// mutation: one event per inserted, removed or replaced element, and a single
// reload for bulk operations that touch arbitrary positions.
type NotifyingList[T any] struct {
	*Collection[T]
}

func NewNotifyingList[T comparable](items []T, opts ...observable.DispatcherOption) *NotifyingList[T] {
	return Notifying(New(items, opts...))
}

func NewNotifyingListFunc[T any](items []T, equal func(a, b T) bool, opts ...observable.DispatcherOption) *NotifyingList[T] {
	return Notifying(NewFunc(items, equal, opts...))
}

// Notifying decorates c; observers already registered on c are kept.
func Notifying[T any](c *Collection[T]) *NotifyingList[T] {
	return &NotifyingList[T]{Collection: c}
}

func (l *NotifyingList[T]) Set(index int, value T) (T, error) {
	old, err := l.Collection.Set(index, value)
	if err != nil {
		return old, err
	}
	l.NotifyItemChanged(index)
	return old, nil
}

func (l *NotifyingList[T]) Add(value T) {
	l.Collection.Add(value)
	l.NotifyItemInserted(l.Len() - 1)
}

func (l *NotifyingList[T]) Insert(index int, value T) error {
	if err := l.Collection.Insert(index, value); err != nil {
		return err
	}
	l.NotifyItemInserted(index)
	return nil
}

func (l *NotifyingList[T]) AddAll(values ...T) {
	start := l.Len()
	l.Collection.AddAll(values...)
	l.notifyInserted(start, len(values))
}

func (l *NotifyingList[T]) InsertAll(index int, values ...T) error {
	if err := l.Collection.InsertAll(index, values...); err != nil {
		return err
	}
	l.notifyInserted(index, len(values))
	return nil
}

func (l *NotifyingList[T]) notifyInserted(start, n int) {
	for i := 0; i < n; i++ {
		l.NotifyItemInserted(start + i)
	}
}

func (l *NotifyingList[T]) RemoveAt(index int) (T, error) {
	old, err := l.Collection.RemoveAt(index)
	if err != nil {
		return old, err
	}
	l.NotifyItemRemoved(index)
	return old, nil
}

func (l *NotifyingList[T]) Remove(value T) bool {
	index := l.IndexOf(value)
	if index < 0 {
		return false
	}
	if _, err := l.RemoveAt(index); err != nil {
		return false
	}
	return true
}

func (l *NotifyingList[T]) RemoveAll(values ...T) bool {
	return l.reloadIf(l.Collection.RemoveAll(values...))
}

func (l *NotifyingList[T]) RetainAll(values ...T) bool {
	return l.reloadIf(l.Collection.RetainAll(values...))
}

func (l *NotifyingList[T]) RemoveIf(pred func(T) bool) bool {
	return l.reloadIf(l.Collection.RemoveIf(pred))
}

func (l *NotifyingList[T]) Clear() {
	changed := !l.IsEmpty()
	l.Collection.Clear()
	l.reloadIf(changed)
}

func (l *NotifyingList[T]) ReplaceAll(fn func(T) T) {
	l.Collection.ReplaceAll(fn)
	l.reloadIf(!l.IsEmpty())
}

func (l *NotifyingList[T]) Sort(cmp func(a, b T) int) {
	l.Collection.Sort(cmp)
	l.reloadIf(l.Len() > 1)
}

func (l *NotifyingList[T]) reloadIf(changed bool) bool {
	if changed {
		l.NotifyItemsReloaded()
	}
	return changed
}

// SubList is Collection.SubList returning a NotifyingList. The sub list
// notifies its own observers only.
func (l *NotifyingList[T]) SubList(lo, hi int) (*NotifyingList[T], error) {
	sub, err := l.Collection.SubList(lo, hi)
	if err != nil {
		return nil, err
	}
	return Notifying(sub), nil
}
