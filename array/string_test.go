package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow/array"
)

func TestStringArrayPushAndGet(t *testing.T) {
	a := array.NewStringArray[uint32](nil)
	a.Push("foo")
	a.PushNull()
	a.Push("")
	a.Push("bar")

	v, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, "foo", v)

	_, ok = a.Get(1)
	assert.False(t, ok)

	v, ok = a.Get(2)
	require.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = a.Get(3)
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

// offsets must start at 0 and be monotonically non-decreasing (§8.1
// property 1), regardless of interleaved nulls and empty strings.
func TestStringArrayOffsetsMonotonic(t *testing.T) {
	a := array.NewStringArray[uint32](nil)
	for _, s := range []string{"a", "", "bbb", "", "cc"} {
		a.Push(s)
		a.PushNull()
	}
	offs := a.Offsets()
	require.Equal(t, a.Len()+1, offs.Len())
	assert.Equal(t, uint32(0), offs.Get(0))
	for i := 1; i < offs.Len(); i++ {
		assert.GreaterOrEqual(t, offs.Get(i), offs.Get(i-1))
	}
	assert.Equal(t, offs.Get(offs.Len()-1), uint32(len(a.Data().AsSlice())))
}

func TestLargeStringArrayUsesU64Offsets(t *testing.T) {
	a := array.NewStringArray[uint64](nil)
	a.Push("hello")
	v, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.Equal(t, uint64(0), a.Offsets().Get(0))
	assert.Equal(t, uint64(5), a.Offsets().Get(1))
}
