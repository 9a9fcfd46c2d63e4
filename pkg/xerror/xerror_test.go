package xerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXCategory(t *testing.T) {
	assert.Equal(t, Normal.Name(), "normal")
	assert.Equal(t, Index.Name(), "index")
	assert.Equal(t, View.Name(), "view")
	assert.Equal(t, Observer.Name(), "observer")
}

func TestXError_Error(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, "%s", errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))

	err = Wrap(err, Index, "wrapped error")
	assert.NotNil(t, err)

	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Category(), Index)
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))
}

func TestErrorf(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, "%s", errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestWrap(t *testing.T) {
	errMsg := "sequence closed"
	err := errors.New(errMsg)
	wrappedErr := Wrap(err, View, "wrapped error")
	assert.NotNil(t, wrappedErr)
	assert.Contains(t, wrappedErr.Error(), "wrapped error")

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), View)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Normal, "nothing"))
	assert.Nil(t, Wrapf(nil, Normal, "nothing %d", 1))
}

func TestWrapf(t *testing.T) {
	errMsg := "observer test error"
	err := errors.New(errMsg)
	wrappedErr := Wrapf(err, Observer, "wrapped error: %s", "foo")
	assert.NotNil(t, wrappedErr)
	assert.Contains(t, wrappedErr.Error(), "wrapped error: foo")

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Observer)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestIs(t *testing.T) {
	errOutOfRange := NewWithoutStack(Index, "index out of range")
	wrappedErr := XWrapf(errOutOfRange, "index: %d, size: %d", 4, 3)
	assert.NotNil(t, wrappedErr)

	assert.True(t, errors.Is(wrappedErr, errOutOfRange))

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Index)
	assert.Equal(t, "index: 4, size: 3: [index] index out of range", wrappedErr.Error())
}

func TestPanic(t *testing.T) {
	errMsg := "test panic"
	var err error = PanicWithoutStack(Observer, errMsg)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Type(), "Panic")
	assert.Equal(t, xerr.Category(), Observer)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestPanicf(t *testing.T) {
	err := Panicf(Observer, "observer %s panicked", "recorder")
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Category(), Observer)
	assert.Equal(t, xerr.err.Error(), "observer recorder panicked")
}
