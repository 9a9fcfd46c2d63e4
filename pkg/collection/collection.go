package collection

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/selectdb/observable_list/pkg/observable"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Collection is an ordered read/write collection over a Sequence, observable
// by ListObservers.
//
// Mutating methods only change the sequence: they never notify. A layer that
// knows which mutations are observable for its domain calls the Notify*
// methods after mutating; NotifyingList is the stock one, firing one event
// per element-level change.
//
// A Collection is not safe for concurrent use.
type Collection[T any] struct {
	seq     Sequence[T]
	equal   func(a, b T) bool
	subject *observable.Subject
}

// New wraps items, comparing elements with ==.
func New[T comparable](items []T, opts ...observable.DispatcherOption) *Collection[T] {
	return Wrap(NewSliceSequence(items), func(a, b T) bool { return a == b }, opts...)
}

// NewFunc wraps items, comparing elements with equal.
func NewFunc[T any](items []T, equal func(a, b T) bool, opts ...observable.DispatcherOption) *Collection[T] {
	return Wrap(NewSliceSequence(items), equal, opts...)
}

// Wrap builds a collection over seq. A nil equal falls back to reflect.DeepEqual.
func Wrap[T any](seq Sequence[T], equal func(a, b T) bool, opts ...observable.DispatcherOption) *Collection[T] {
	return &Collection[T]{
		seq:     seq,
		equal:   equal,
		subject: observable.NewSubject("collection", observable.Strong, opts...),
	}
}

func (c *Collection[T]) eq(a, b T) bool {
	if c.equal == nil {
		return reflect.DeepEqual(a, b)
	}
	return c.equal(a, b)
}

func (c *Collection[T]) Len() int {
	return c.seq.Len()
}

func (c *Collection[T]) IsEmpty() bool {
	return c.seq.Len() == 0
}

func (c *Collection[T]) Get(index int) (T, error) {
	if err := checkIndex(index, c.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	return c.seq.At(index), nil
}

// Set replaces the element at index and returns the previous one.
func (c *Collection[T]) Set(index int, value T) (T, error) {
	if err := checkIndex(index, c.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	return c.seq.Put(index, value), nil
}

// Add appends value.
func (c *Collection[T]) Add(value T) {
	c.seq.InsertAt(c.seq.Len(), value)
}

// Insert inserts value at index, shifting later elements. index may equal Len.
func (c *Collection[T]) Insert(index int, value T) error {
	if err := checkPosition(index, c.seq.Len()); err != nil {
		return err
	}
	c.seq.InsertAt(index, value)
	return nil
}

func (c *Collection[T]) AddAll(values ...T) {
	c.seq.InsertAt(c.seq.Len(), values...)
}

func (c *Collection[T]) InsertAll(index int, values ...T) error {
	if err := checkPosition(index, c.seq.Len()); err != nil {
		return err
	}
	c.seq.InsertAt(index, values...)
	return nil
}

// RemoveAt removes the element at index and returns it.
func (c *Collection[T]) RemoveAt(index int) (T, error) {
	if err := checkIndex(index, c.seq.Len()); err != nil {
		var zero T
		return zero, err
	}
	old := c.seq.At(index)
	c.seq.DeleteRange(index, index+1)
	return old, nil
}

// Remove removes the first element equal to value.
func (c *Collection[T]) Remove(value T) bool {
	index := c.IndexOf(value)
	if index < 0 {
		return false
	}
	c.seq.DeleteRange(index, index+1)
	return true
}

// RemoveAll removes every element equal to one of values.
func (c *Collection[T]) RemoveAll(values ...T) bool {
	return c.RemoveIf(func(v T) bool { return c.among(v, values) })
}

// RetainAll removes every element not equal to one of values.
func (c *Collection[T]) RetainAll(values ...T) bool {
	return c.RemoveIf(func(v T) bool { return !c.among(v, values) })
}

// RemoveIf removes the elements matching pred and reports whether any was.
func (c *Collection[T]) RemoveIf(pred func(T) bool) bool {
	removed := false
	hi := c.seq.Len()
	// delete runs of matches from the tail so lower indices stay valid
	for i := hi - 1; i >= -1; i-- {
		if i >= 0 && pred(c.seq.At(i)) {
			continue
		}
		if i+1 < hi {
			c.seq.DeleteRange(i+1, hi)
			removed = true
		}
		hi = i
	}
	return removed
}

func (c *Collection[T]) Clear() {
	c.seq.DeleteRange(0, c.seq.Len())
}

func (c *Collection[T]) IndexOf(value T) int {
	return c.IndexFunc(func(v T) bool { return c.eq(v, value) })
}

func (c *Collection[T]) LastIndexOf(value T) int {
	for i := c.seq.Len() - 1; i >= 0; i-- {
		if c.eq(c.seq.At(i), value) {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) IndexFunc(pred func(T) bool) int {
	for i, n := 0, c.seq.Len(); i < n; i++ {
		if pred(c.seq.At(i)) {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) Contains(value T) bool {
	return c.IndexOf(value) >= 0
}

func (c *Collection[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !c.Contains(v) {
			return false
		}
	}
	return true
}

func (c *Collection[T]) among(v T, values []T) bool {
	for _, candidate := range values {
		if c.eq(v, candidate) {
			return true
		}
	}
	return false
}

// SubList returns a collection over [lo, hi) of this one. Reads and writes
// through it hit the same storage, but it has its own empty observer
// registry: observers of this collection never hear about changes made
// through the sub list, and the other way round. Structural changes to this
// collection made outside the sub list make the sub list unusable; using it
// afterwards panics with ErrStaleView.
func (c *Collection[T]) SubList(lo, hi int) (*Collection[T], error) {
	if err := checkRange(lo, hi, c.seq.Len()); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s[%d:%d]", c.subject.Registry().Name(), lo, hi)
	log.Debugf("new sub list %s", name)
	return &Collection[T]{
		seq:     newRange(c.seq, lo, hi),
		equal:   c.equal,
		subject: c.subject.Fork(name),
	}, nil
}

// All iterates over index/element pairs.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.seq.Len(); i++ {
			if !yield(i, c.seq.At(i)) {
				return
			}
		}
	}
}

func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < c.seq.Len(); i++ {
			if !yield(c.seq.At(i)) {
				return
			}
		}
	}
}

func (c *Collection[T]) ForEach(fn func(index int, value T)) {
	for i, v := range c.All() {
		fn(i, v)
	}
}

// ToSlice returns a copy of the elements.
func (c *Collection[T]) ToSlice() []T {
	items := make([]T, 0, c.seq.Len())
	for v := range c.Values() {
		items = append(items, v)
	}
	return items
}

// ReplaceAll replaces every element with fn applied to it.
func (c *Collection[T]) ReplaceAll(fn func(T) T) {
	for i, n := 0, c.seq.Len(); i < n; i++ {
		c.seq.Put(i, fn(c.seq.At(i)))
	}
}

// Sort sorts the elements in place, keeping equal elements in order.
func (c *Collection[T]) Sort(cmp func(a, b T) int) {
	items := c.ToSlice()
	slices.SortStableFunc(items, cmp)
	for i, v := range items {
		c.seq.Put(i, v)
	}
}

func (c *Collection[T]) AddObserver(o observable.ListObserver) {
	c.subject.Register(o)
}

// RemoveObserver drops one registration of o; unknown observers are ignored.
func (c *Collection[T]) RemoveObserver(o observable.ListObserver) {
	c.subject.Unregister(o)
}

func (c *Collection[T]) NotifyItemInserted(index int) {
	c.subject.Notify(observable.Inserted(index))
}

func (c *Collection[T]) NotifyItemRemoved(index int) {
	c.subject.Notify(observable.Removed(index))
}

func (c *Collection[T]) NotifyItemChanged(index int) {
	c.subject.Notify(observable.Changed(index))
}

func (c *Collection[T]) NotifyItemsReloaded() {
	c.subject.Notify(observable.Reloaded())
}
