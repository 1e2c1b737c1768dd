package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow/array"
)

func buildIntArray(vals []int32, nulls []bool) array.Array {
	a := array.NewIntegerArray[int32](nil)
	for i, v := range vals {
		if nulls != nil && nulls[i] {
			a.PushNull()
			continue
		}
		a.Push(v)
	}
	return array.FromNumeric(array.NumericFromInt32(a))
}

func TestArrayVBoundsChecking(t *testing.T) {
	data := buildIntArray([]int32{1, 2, 3}, nil)
	assert.Panics(t, func() { array.NewArrayV(&data, 1, 5) })
	assert.Panics(t, func() { array.NewArrayV(&data, -1, 1) })
	assert.NotPanics(t, func() { array.NewArrayV(&data, 1, 2) })
}

func TestArrayVIsNullTracksWindow(t *testing.T) {
	data := buildIntArray([]int32{1, 2, 3, 4}, []bool{false, true, false, true})
	v := array.NewArrayV(&data, 1, 3)
	assert.True(t, v.IsNull(0))
	assert.False(t, v.IsNull(1))
	assert.True(t, v.IsNull(2))
}

func TestArrayVToOwnedCopiesOnlyWindow(t *testing.T) {
	data := buildIntArray([]int32{10, 20, 30, 40, 50}, nil)
	v := array.NewArrayV(&data, 1, 3)
	owned := v.ToOwned()

	require.Equal(t, 3, owned.Len())
	for i, want := range []int32{20, 30, 40} {
		val, ok := owned.Num().I32().Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, val)
	}
}

func TestArrayVToOwnedPreservesNullsWithinWindow(t *testing.T) {
	data := buildIntArray([]int32{1, 2, 3, 4}, []bool{false, true, false, false})
	v := array.NewArrayV(&data, 1, 2)
	owned := v.ToOwned()
	_, ok := owned.Num().I32().Get(0)
	assert.False(t, ok)
	val, ok := owned.Num().I32().Get(1)
	assert.True(t, ok)
	assert.Equal(t, int32(3), val)
}

func TestArrayVToOwnedStringWindow(t *testing.T) {
	s := array.NewStringArray[uint32](nil)
	for _, v := range []string{"a", "bb", "ccc", "dddd"} {
		s.Push(v)
	}
	data := array.FromText(array.TextFromString32(s))
	v := array.NewArrayV(&data, 1, 2)
	owned := v.ToOwned()

	val, ok := owned.Text().String32().Get(0)
	require.True(t, ok)
	assert.Equal(t, "bb", val)
	val, ok = owned.Text().String32().Get(1)
	require.True(t, ok)
	assert.Equal(t, "ccc", val)
}
