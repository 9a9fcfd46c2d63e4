package collection

import (
	"runtime"
	"testing"

	"github.com/selectdb/observable_list/pkg/observable"
	"github.com/selectdb/observable_list/test_util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDataSource_Read(t *testing.T) {
	ds := DataSourceOf([]string{"a", "b"})
	assert.Equal(t, 2, ds.Len())

	v, err := ds.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = ds.Get(ds.Len())
	assertOutOfRange(t, err)
	_, err = ds.Get(-1)
	assertOutOfRange(t, err)
}

func TestDataSource_ReadsThroughOwnedSequence(t *testing.T) {
	seq := NewSliceSequence([]int{1})
	ds := NewDataSource[int](seq)
	r := &recorder{}
	ds.AddObserver(r)

	seq.InsertAt(1, 2)
	ds.NotifyItemInserted(1)

	v, err := ds.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []observable.Event{observable.Inserted(1)}, r.events)
}

func attachCounter(ds *MutableDataSource[string], calls *int) {
	ds.AddObserver(&counter{calls: calls})
}

func attachStrongCounter(ds *MutableDataSource[string], calls *int) {
	ds.AddObserverStrong(&counter{calls: calls})
}

func TestDataSource_WeakObserverDropped(t *testing.T) {
	ds := NewMutableDataSource([]string{})
	kept := 0
	keep := &counter{calls: &kept}
	ds.AddObserver(keep)

	dropped := 0
	attachCounter(ds, &dropped)
	assert.Equal(t, 2, ds.Observers())

	runtime.GC()
	runtime.GC()

	ds.Append("a")
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, kept)
	assert.Equal(t, 1, ds.Observers())
	runtime.KeepAlive(keep)
}

// statically allocated, never on the heap
var (
	globalCalls   int
	globalCounter = &counter{calls: &globalCalls}
)

func TestDataSource_PackageLevelObserver(t *testing.T) {
	globalCalls = 0
	ds := NewMutableDataSource([]string{})
	ds.AddObserver(globalCounter)
	ds.Append("a")
	_, err := ds.Set(0, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, globalCalls)

	runtime.GC()
	ds.Replace([]string{"c"})
	assert.Equal(t, 3, globalCalls)

	ds.RemoveObserver(globalCounter)
	assert.Equal(t, 0, ds.Observers())
}

func TestDataSource_StrongObserverKept(t *testing.T) {
	ds := NewMutableDataSource([]string{})
	calls := 0
	attachStrongCounter(ds, &calls)

	runtime.GC()
	runtime.GC()

	ds.Append("a")
	assert.Equal(t, 1, calls)
}

func TestDataSource_RemoveObserverSweepsDead(t *testing.T) {
	ds := NewMutableDataSource([]string{})
	calls := 0
	keep := &counter{calls: &calls}
	ds.AddObserver(keep)
	attachCounter(ds, new(int))
	attachCounter(ds, new(int))

	runtime.GC()
	runtime.GC()

	ds.RemoveObserver(&counter{calls: new(int)})
	assert.Equal(t, 1, ds.Observers())

	ds.RemoveObserver(keep)
	assert.Equal(t, 0, ds.Observers())
	ds.RemoveObserver(keep)
	assert.Equal(t, 0, ds.Observers())
}

func TestMutableDataSource_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := test_util.NewMockListObserver(ctrl)
	gomock.InOrder(
		observer.EXPECT().OnItemInserted(0),
		observer.EXPECT().OnItemInserted(1),
		observer.EXPECT().OnItemInserted(1),
		observer.EXPECT().OnItemChanged(2),
		observer.EXPECT().OnItemRemoved(0),
		observer.EXPECT().OnItemsReloaded(),
	)

	ds := NewMutableDataSource([]string{})
	ds.AddObserver(observer)

	ds.Append("a", "c")
	require.NoError(t, ds.Insert(1, "b"))
	old, err := ds.Set(2, "C")
	require.NoError(t, err)
	assert.Equal(t, "c", old)
	removed, err := ds.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", removed)
	assert.Equal(t, []string{"b", "C"}, ds.Items())

	ds.Replace([]string{"x", "y", "z"})
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"x", "y", "z"}, ds.Items())
}

func TestMutableDataSource_ItemsObserverGetsReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := test_util.NewMockItemsObserver(ctrl)
	gomock.InOrder(
		observer.EXPECT().OnItemsReloaded(),
		observer.EXPECT().OnItemChanged(0),
		observer.EXPECT().OnItemsReloaded(),
	)

	ds := NewMutableDataSource([]int{})
	ds.AddObserver(observer)
	ds.Append(1)
	_, err := ds.Set(0, 2)
	require.NoError(t, err)
	_, err = ds.RemoveAt(0)
	require.NoError(t, err)
}

func TestMutableDataSource_OutOfRange(t *testing.T) {
	ds := NewMutableDataSource([]int{1, 2})
	r := &recorder{}
	ds.AddObserver(r)

	_, err := ds.Set(ds.Len(), 3)
	assertOutOfRange(t, err)
	_, err = ds.RemoveAt(-1)
	assertOutOfRange(t, err)
	assertOutOfRange(t, ds.Insert(3, 3))
	_, err = ds.Get(ds.Len())
	assertOutOfRange(t, err)
	assert.Empty(t, r.events)
}
