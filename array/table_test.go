package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow"
	"github.com/pbower/minarrow/array"
)

func buildTable(t *testing.T) *array.Table {
	t.Helper()
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.Push(2)
	a.Push(3)
	ids := array.NewFieldArray(arrow.NewField("id", arrow.Int32, true, arrow.Metadata{}), array.FromNumeric(array.NumericFromInt32(a)))

	s := array.NewStringArray[uint32](nil)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	names := array.NewFieldArray(arrow.NewField("name", arrow.Utf8, true, arrow.Metadata{}), array.FromText(array.TextFromString32(s)))

	return array.NewTable("t", []array.FieldArray{ids, names})
}

func TestTableBasics(t *testing.T) {
	table := buildTable(t)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 2, table.Width())

	col, ok := table.Column("name")
	require.True(t, ok)
	assert.Equal(t, 3, col.Len())

	_, ok = table.Column("missing")
	assert.False(t, ok)
}

func TestTableMismatchedRowCountsPanics(t *testing.T) {
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.Push(2)
	ids := array.NewFieldArray(arrow.NewField("id", arrow.Int32, true, arrow.Metadata{}), array.FromNumeric(array.NumericFromInt32(a)))

	b := array.NewIntegerArray[int32](nil)
	b.Push(1)
	mismatched := array.NewFieldArray(arrow.NewField("other", arrow.Int32, true, arrow.Metadata{}), array.FromNumeric(array.NumericFromInt32(b)))

	assert.Panics(t, func() {
		array.NewTable("t", []array.FieldArray{ids, mismatched})
	})
}

func TestTableCAndRCompose(t *testing.T) {
	table := buildTable(t)

	view := table.C([]string{"name"}).R(1, 3)
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, 1, view.Width())

	owned := view.ToOwned()
	assert.Equal(t, 2, owned.Len())
	col, ok := owned.Column("name")
	require.True(t, ok)
	v, ok := col.Data.Text().String32().Get(0)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestTableRThenCComposes(t *testing.T) {
	table := buildTable(t)

	view := table.R(1, 3).C([]string{"id"})
	assert.Equal(t, 2, view.Len())
	owned := view.ToOwned()
	col, ok := owned.Column("id")
	require.True(t, ok)
	v, ok := col.Data.Num().I32().Get(0)
	require.True(t, ok)
	assert.Equal(t, int32(2), v)
}

func TestTableRPanicsOutOfRange(t *testing.T) {
	table := buildTable(t)
	assert.Panics(t, func() { table.R(2, 10) })
}
