package observable

import (
	"reflect"
	"unsafe"
	"weak"
)

// weakRef is a non-owning handle to a pointer-shaped observer. Only the
// pointer type is kept beside the weak pointer, so holding a weakRef never
// keeps the observer alive.
type weakRef struct {
	typ reflect.Type
	ptr weak.Pointer[byte]
}

// newWeakRef returns false when o is not a non-nil pointer to a sized value.
// Zero-sized values share one address and have no lifetime to track.
func newWeakRef(o any) (*weakRef, bool) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Type().Elem().Size() == 0 {
		return nil, false
	}
	return &weakRef{
		typ: v.Type(),
		ptr: weak.Make((*byte)(v.UnsafePointer())),
	}, true
}

// value rebuilds the observer, or reports false once it has been collected.
func (w *weakRef) value() (any, bool) {
	p := w.ptr.Value()
	if p == nil {
		return nil, false
	}
	return reflect.NewAt(w.typ.Elem(), unsafe.Pointer(p)).Interface(), true
}

func (w *weakRef) alive() bool {
	return w.ptr.Value() != nil
}

func (w *weakRef) refersTo(o any) bool {
	v, ok := w.value()
	if !ok {
		return false
	}
	return v == o
}

func comparableObserver(o any) bool {
	return o != nil && reflect.ValueOf(o).Comparable()
}

// sameObserver compares identities without panicking on uncomparable
// dynamic values; such values never match anything.
func sameObserver(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !comparableObserver(a) || !comparableObserver(b) {
		return false
	}
	return a == b
}
