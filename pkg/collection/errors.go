package collection

import "github.com/selectdb/observable_list/pkg/xerror"

var (
	ErrIndexOutOfRange = xerror.NewWithoutStack(xerror.Index, "index out of range")
	// ErrStaleView is raised, as a panic, when a range view is used after its
	// parent sequence was changed structurally by someone else.
	ErrStaleView = xerror.PanicWithoutStack(xerror.View, "parent sequence changed structurally")
)

// checkIndex requires 0 <= index < size.
func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return xerror.XWrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, size)
	}
	return nil
}

// checkPosition requires 0 <= index <= size, the valid insertion points.
func checkPosition(index, size int) error {
	if index < 0 || index > size {
		return xerror.XWrapf(ErrIndexOutOfRange, "position: %d, size: %d", index, size)
	}
	return nil
}

func checkRange(lo, hi, size int) error {
	if lo < 0 || hi > size || lo > hi {
		return xerror.XWrapf(ErrIndexOutOfRange, "range: [%d, %d), size: %d", lo, hi, size)
	}
	return nil
}
