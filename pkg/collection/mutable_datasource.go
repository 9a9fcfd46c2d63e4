package collection

import (
	"github.com/selectdb/observable_list/pkg/observable"
	log "github.com/sirupsen/logrus"
)

// MutableDataSource is a DataSource together with the write side of its
// sequence. Every write notifies.
type MutableDataSource[T any] struct {
	*DataSource[T]
	seq *SliceSequence[T]
}

func NewMutableDataSource[T any](items []T, opts ...observable.DispatcherOption) *MutableDataSource[T] {
	seq := NewSliceSequence(items)
	return &MutableDataSource[T]{
		DataSource: NewDataSource[T](seq, opts...),
		seq:        seq,
	}
}

func (m *MutableDataSource[T]) Append(values ...T) {
	start := m.seq.Len()
	m.seq.InsertAt(start, values...)
	for i := range values {
		m.NotifyItemInserted(start + i)
	}
}

func (m *MutableDataSource[T]) Insert(index int, value T) error {
	if err := checkPosition(index, m.seq.Len()); err != nil {
		return err
	}
	m.seq.InsertAt(index, value)
	m.NotifyItemInserted(index)
	return nil
}

func (m *MutableDataSource[T]) Set(index int, value T) (T, error) {
	if err := checkIndex(index, m.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	old := m.seq.Put(index, value)
	m.NotifyItemChanged(index)
	return old, nil
}

func (m *MutableDataSource[T]) RemoveAt(index int) (T, error) {
	if err := checkIndex(index, m.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	old := m.seq.At(index)
	m.seq.DeleteRange(index, index+1)
	m.NotifyItemRemoved(index)
	return old, nil
}

// Replace swaps the whole content and fires one reload.
func (m *MutableDataSource[T]) Replace(items []T) {
	log.Tracef("replace data source content, old size: %d, new size: %d", m.seq.Len(), len(items))
	m.seq.DeleteRange(0, m.seq.Len())
	m.seq.InsertAt(0, items...)
	m.NotifyItemsReloaded()
}

// Items returns a copy of the current content.
func (m *MutableDataSource[T]) Items() []T {
	return m.seq.Items()
}
