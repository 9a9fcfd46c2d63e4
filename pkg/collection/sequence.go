package collection

import (
	"github.com/selectdb/observable_list/pkg/xerror"
	"golang.org/x/exp/slices"
)

// Sequence is the backing storage of a collection: 0-based and contiguous.
// Indices passed to a Sequence are already bounds checked by its owner.
type Sequence[T any] interface {
	Len() int
	At(index int) T
	// Put replaces the element at index and returns the previous one.
	Put(index int, value T) T
	// InsertAt inserts values so that the first of them ends up at index.
	InsertAt(index int, values ...T)
	// DeleteRange removes the elements in [lo, hi).
	DeleteRange(lo, hi int)
	// Version changes on every structural modification, i.e. every insert
	// or delete. Put is not structural.
	Version() uint64
}

// SliceSequence is a Sequence over a Go slice it owns.
type SliceSequence[T any] struct {
	items   []T
	version uint64
}

// NewSliceSequence takes ownership of items; the caller must not keep using
// the slice afterwards.
func NewSliceSequence[T any](items []T) *SliceSequence[T] {
	return &SliceSequence[T]{items: items}
}

func (s *SliceSequence[T]) Len() int {
	return len(s.items)
}

func (s *SliceSequence[T]) At(index int) T {
	return s.items[index]
}

func (s *SliceSequence[T]) Put(index int, value T) T {
	old := s.items[index]
	s.items[index] = value
	return old
}

func (s *SliceSequence[T]) InsertAt(index int, values ...T) {
	if len(values) == 0 {
		return
	}
	s.items = slices.Insert(s.items, index, values...)
	s.version++
}

func (s *SliceSequence[T]) DeleteRange(lo, hi int) {
	if lo == hi {
		return
	}
	s.items = slices.Delete(s.items, lo, hi)
	s.version++
}

func (s *SliceSequence[T]) Version() uint64 {
	return s.version
}

// Items returns a copy of the elements.
func (s *SliceSequence[T]) Items() []T {
	return slices.Clone(s.items)
}

// rangeSequence is a window [offset, offset+size) onto a parent sequence.
// Writes go straight to the parent; inserts and deletes made through the
// window shift the parent as well. Any structural change of the parent not
// made through this window makes it stale.
type rangeSequence[T any] struct {
	parent  Sequence[T]
	offset  int
	size    int
	expect  uint64 // parent version this window is consistent with
	version uint64
}

func newRange[T any](parent Sequence[T], lo, hi int) *rangeSequence[T] {
	return &rangeSequence[T]{
		parent: parent,
		offset: lo,
		size:   hi - lo,
		expect: parent.Version(),
	}
}

func (r *rangeSequence[T]) check() {
	if p, ok := r.parent.(interface{ check() }); ok {
		p.check()
	}
	if v := r.parent.Version(); v != r.expect {
		panic(xerror.XWrapf(ErrStaleView, "view: [%d, %d), expected parent version: %d, got: %d",
			r.offset, r.offset+r.size, r.expect, v))
	}
}

func (r *rangeSequence[T]) Len() int {
	r.check()
	return r.size
}

func (r *rangeSequence[T]) At(index int) T {
	r.check()
	return r.parent.At(r.offset + index)
}

func (r *rangeSequence[T]) Put(index int, value T) T {
	r.check()
	return r.parent.Put(r.offset+index, value)
}

func (r *rangeSequence[T]) InsertAt(index int, values ...T) {
	r.check()
	if len(values) == 0 {
		return
	}
	r.parent.InsertAt(r.offset+index, values...)
	r.size += len(values)
	r.expect = r.parent.Version()
	r.version++
}

func (r *rangeSequence[T]) DeleteRange(lo, hi int) {
	r.check()
	if lo == hi {
		return
	}
	r.parent.DeleteRange(r.offset+lo, r.offset+hi)
	r.size -= hi - lo
	r.expect = r.parent.Version()
	r.version++
}

func (r *rangeSequence[T]) Version() uint64 {
	return r.version
}
