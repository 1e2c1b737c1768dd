package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbower/minarrow/array"
)

func TestBooleanArrayPushAndGet(t *testing.T) {
	a := array.NewBooleanArray(nil)
	a.Push(true)
	a.PushNull()
	a.Push(false)

	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = a.Get(1)
	assert.False(t, ok)

	v, ok = a.Get(2)
	assert.True(t, ok)
	assert.False(t, v)

	assert.Equal(t, 1, a.NullCount())
}

func TestBooleanArraySetTogglesValue(t *testing.T) {
	a := array.NewBooleanArray(nil)
	a.Push(true)
	a.Set(0, false)
	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.False(t, v)
}
