package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbower/minarrow/array"
)

func TestIntegerArrayPushAndGet(t *testing.T) {
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.PushNull()
	a.Push(3)

	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)

	_, ok = a.Get(1)
	assert.False(t, ok)

	v, ok = a.Get(2)
	assert.True(t, ok)
	assert.Equal(t, int32(3), v)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, a.NullCount())
}

func TestIntegerArraySetClearsAndSetsNull(t *testing.T) {
	a := array.NewIntegerArray[int64](nil)
	a.Push(10)
	a.Push(20)

	a.SetNull(0)
	assert.Equal(t, 1, a.NullCount())
	_, ok := a.Get(0)
	assert.False(t, ok)

	a.Set(0, 99)
	assert.Equal(t, 0, a.NullCount())
	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(99), v)
}

// An all-valid array never allocates a validity bitmap (§4.3).
func TestIntegerArrayAllValidHasNoMask(t *testing.T) {
	a := array.NewIntegerArray[uint8](nil)
	a.Push(1)
	a.Push(2)
	a.Push(3)
	assert.Nil(t, a.NullMask())
	assert.Equal(t, 0, a.NullCount())
}

func TestIntegerArrayRetainRelease(t *testing.T) {
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.Retain()
	a.Release()
	a.Release() // refcount reaches zero; must not panic
}
