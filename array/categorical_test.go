package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow/array"
)

func TestCategoricalArrayDictionaryDedup(t *testing.T) {
	a := array.NewCategoricalArray[uint8](nil)
	a.Push("red")
	a.Push("green")
	a.Push("red")
	a.PushNull()

	assert.Equal(t, []string{"red", "green"}, a.Dictionary())
	assert.Equal(t, 1, a.NullCount())

	v, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, "red", v)
	v, ok = a.Get(2)
	require.True(t, ok)
	assert.Equal(t, "red", v)
}

// §8.1 property 4: two categorical arrays built against different
// dictionaries compare equal when their decoded sequences match.
func TestCategoricalArrayEqualIgnoresDictionaryOrder(t *testing.T) {
	a := array.NewCategoricalArray[uint8](nil)
	a.Push("red")
	a.Push("green")
	a.Push("red")
	assert.Equal(t, []string{"red", "green"}, a.Dictionary())

	b := array.NewCategoricalArray[uint8](nil)
	b.Push("green") // seen first here, so "green" takes code 0 in b, not a
	b.Push("red")
	b.Push("green")
	b.Push("red")
	assert.Equal(t, []string{"green", "red"}, b.Dictionary())

	assert.False(t, a.Equal(b)) // different lengths

	c := array.NewCategoricalArray[uint8](nil)
	c.Push("green") // seen first, so c's dictionary is ordered [green, red]
	c.Set(0, "red")
	c.Push("green")
	c.Push("red")
	assert.Equal(t, []string{"green", "red"}, c.Dictionary())
	assert.True(t, a.Equal(c)) // same decoded sequence, dictionaries in different order

	c.SetNull(0)
	assert.False(t, a.Equal(c))
}

func TestCategoricalArraySetRecodesDictionary(t *testing.T) {
	a := array.NewCategoricalArray[uint8](nil)
	a.Push("red")
	a.Set(0, "blue")
	v, ok := a.Get(0)
	require.True(t, ok)
	assert.Equal(t, "blue", v)
	assert.Equal(t, []string{"red", "blue"}, a.Dictionary())
}
