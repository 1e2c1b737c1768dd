package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbower/minarrow"
	"github.com/pbower/minarrow/array"
)

func intColumn(vals []int32) array.Array {
	a := array.NewIntegerArray[int32](nil)
	for _, v := range vals {
		a.Push(v)
	}
	return array.FromNumeric(array.NumericFromInt32(a))
}

func TestNewFieldArrayAcceptsMatchingType(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	fa := array.NewFieldArray(field, intColumn([]int32{1, 2, 3}))
	assert.Equal(t, 3, fa.Len())
}

func TestNewFieldArrayPanicsOnKindMismatch(t *testing.T) {
	field := arrow.NewField("a", arrow.Utf8, true, arrow.Metadata{})
	assert.Panics(t, func() {
		array.NewFieldArray(field, intColumn([]int32{1}))
	})
}

func TestNewFieldArrayPanicsOnNonNullableWithNulls(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, false, arrow.Metadata{})
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.PushNull()
	assert.Panics(t, func() {
		array.NewFieldArray(field, array.FromNumeric(array.NumericFromInt32(a)))
	})
}
