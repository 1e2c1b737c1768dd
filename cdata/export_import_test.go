package cdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow"
	"github.com/pbower/minarrow/array"
)

func buildInt32(vals []int32, nulls []bool) array.Array {
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

func buildString32(vals []string, nulls []bool) array.Array {
	a := array.NewStringArray[uint32](nil)
	for i, v := range vals {
		if nulls != nil && nulls[i] {
			a.PushNull()
			continue
		}
		a.Push(v)
	}
	return array.FromText(array.TextFromString32(a))
}

func buildBoolean(vals []bool) array.Array {
	a := array.NewBooleanArray(nil)
	for _, v := range vals {
		a.Push(v)
	}
	return array.FromBoolean(a)
}

func buildCategorical8(vals []string) array.Array {
	a := array.NewCategoricalArray[uint8](nil)
	for _, v := range vals {
		a.Push(v)
	}
	return array.FromText(array.TextFromCategorical8(a))
}

// roundTrip exports data+field and imports it back, asserting the §4.7.2
// release protocol fires exactly once along the way.
func roundTrip(t *testing.T, field arrow.Field, data array.Array) array.Array {
	t.Helper()
	carr := ExportArray(data)
	csch := ExportSchema(field)

	imported, err := ImportFieldArray(csch, carr)
	require.NoError(t, err)
	assert.True(t, carr.IsReleased())
	assert.True(t, csch.IsReleased())
	return imported.Data
}

func TestRoundTripInt32(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	data := buildInt32([]int32{1, 2, 3, 4}, []bool{false, true, false, false})

	out := roundTrip(t, field, data)
	require.Equal(t, array.ArrayNumeric, out.Kind())
	n := out.Num().I32()
	for i, want := range []int32{1, 0, 3, 4} {
		v, ok := n.Get(i)
		if i == 1 {
			assert.False(t, ok)
			continue
		}
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 1, out.NullCount())
}

func TestRoundTripUtf8(t *testing.T) {
	field := arrow.NewField("s", arrow.Utf8, true, arrow.Metadata{})
	data := buildString32([]string{"foo", "", "bar"}, []bool{false, true, false})

	out := roundTrip(t, field, data)
	s := out.Text().String32()
	v0, ok0 := s.Get(0)
	assert.True(t, ok0)
	assert.Equal(t, "foo", v0)
	_, ok1 := s.Get(1)
	assert.False(t, ok1)
	v2, ok2 := s.Get(2)
	assert.True(t, ok2)
	assert.Equal(t, "bar", v2)
}

func TestRoundTripBoolean(t *testing.T) {
	field := arrow.NewField("b", arrow.Boolean, false, arrow.Metadata{})
	data := buildBoolean([]bool{true, false, true})

	out := roundTrip(t, field, data)
	b := out.Bool()
	for i, want := range []bool{true, false, true} {
		v, ok := b.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	// §8.2: [true,false,true] packs LSB-first into a single byte 0x05.
	assert.Equal(t, byte(0x05), b.Values().AsBytes()[0])
}

func TestRoundTripDictionary(t *testing.T) {
	dictField := arrow.NewField("cat", &arrow.DictionaryType{Index: arrow.Uint8, Value: arrow.Utf8}, true, arrow.Metadata{})
	data := buildCategorical8([]string{"red", "green", "red", "blue"})

	out := roundTrip(t, dictField, data)
	require.Equal(t, array.TextCategorical8, out.Text().Kind())
	c := out.Text().Categorical8()
	for i, want := range []string{"red", "green", "red", "blue"} {
		v, ok := c.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestRoundTripSliceWindow(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	full := buildInt32([]int32{10, 20, 30, 40, 50}, nil)
	windowed := full.Slice(1, 3)

	out := roundTrip(t, field, windowed)
	n := out.Num().I32()
	require.Equal(t, 3, out.Len())
	require.Equal(t, 1, out.Offset())
	for i, want := range []int32{20, 30, 40} {
		v, ok := n.Get(out.Offset() + i)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
}

// §8.2 boundary: an empty array exports with buffers[0] == nil (no null
// bitmap allocated) and round-trips to a zero-length array.
func TestEmptyArrayExport(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	data := buildInt32(nil, nil)

	carr := ExportArray(data)
	assert.Equal(t, int64(0), carr.Length)
	assert.Equal(t, int64(0), carr.NullCount)

	out, err := ImportArray(carr, field.Type)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

// §8.2 boundary: a single empty-string element has offsets = [0, 0].
func TestSingleEmptyStringExport(t *testing.T) {
	field := arrow.NewField("s", arrow.Utf8, true, arrow.Metadata{})
	data := buildString32([]string{""}, nil)

	out := roundTrip(t, field, data)
	s := out.Text().String32()
	v, ok := s.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, uint32(0), s.Offsets().Get(0))
	assert.Equal(t, uint32(0), s.Offsets().Get(1))
}

// §8.2 boundary: an i32 array with exactly one null packs its bitmap to a
// single byte with bit 1 cleared: 0b101 for nulls at index 1 of 3.
func TestNullBitmapPacking(t *testing.T) {
	a := array.NewIntegerArray[int32](nil)
	a.Push(1)
	a.PushNull()
	a.Push(3)
	data := array.FromNumeric(array.NumericFromInt32(a))

	carr := ExportArray(data)
	buffers := readBuffers(carr)
	mask := bytesFrom(buffers[0], 1)
	assert.Equal(t, byte(0b101), mask[0])
	callRelease(&carr.Release)
}

func TestReleaseIsIdempotent(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	data := buildInt32([]int32{1, 2, 3}, nil)

	carr := ExportArray(data)
	callRelease(&carr.Release)
	assert.True(t, carr.IsReleased())
	// second call is a documented no-op, not a re-invocation of onFree.
	assert.NotPanics(t, func() { callRelease(&carr.Release) })

	csch := ExportSchema(field)
	callRelease(&csch.Release)
	assert.True(t, csch.IsReleased())
	assert.NotPanics(t, func() { callRelease(&csch.Release) })
}

func TestImportRejectsDoubleRelease(t *testing.T) {
	field := arrow.NewField("a", arrow.Int32, true, arrow.Metadata{})
	data := buildInt32([]int32{1, 2, 3}, nil)
	carr := ExportArray(data)

	_, err := ImportArray(carr, field.Type)
	require.NoError(t, err)

	_, err = ImportArray(carr, field.Type)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyReleased)
}

func TestImportRejectsNonMonotonicOffsets(t *testing.T) {
	data := buildString32([]string{"a", "bb"}, nil)
	carr := ExportArray(data)

	buffers := readBuffers(carr)
	offsets := (*[3]uint32)(buffers[1])
	offsets[1] = 100 // corrupt: offsets become [0, 100, 1], decreasing at index 2
	offsets[2] = 1

	_, err := ImportArray(carr, arrow.Utf8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonMonotonicOffsets)
}

func TestTableStream(t *testing.T) {
	col := array.NewFieldArray(arrow.NewField("a", arrow.Int32, true, arrow.Metadata{}), buildInt32([]int32{1, 2, 3}, nil))
	table := array.NewTable("t", []array.FieldArray{col})

	stream := ExportTableStream(table)

	var sch ArrowSchema
	require.Equal(t, int32(0), StreamGetSchema(stream, &sch))
	assert.Equal(t, "+s", goString(sch.Format))
	callRelease(&sch.Release)

	var batch ArrowArray
	require.Equal(t, int32(0), StreamGetNext(stream, &batch))
	assert.Equal(t, int64(3), batch.Length)
	callRelease(&batch.Release)

	var end ArrowArray
	require.Equal(t, int32(0), StreamGetNext(stream, &end))
	assert.True(t, end.IsReleased())

	StreamRelease(stream)
}
