package cdata

import (
	"unicode/utf8"
	"unsafe"

	"github.com/pbower/minarrow"
	"github.com/pbower/minarrow/array"
	"github.com/pbower/minarrow/bitutil"
)

// readBuffers returns the ArrowArray's n_buffers raw pointers (§4.7.2); a
// nil-typed const void** slot is represented as a nil unsafe.Pointer.
func readBuffers(arr *ArrowArray) []unsafe.Pointer {
	if arr.NBuffers == 0 {
		return nil
	}
	return unsafe.Slice((*unsafe.Pointer)(arr.Buffers), int(arr.NBuffers))
}

func bytesFrom(p unsafe.Pointer, n int) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// adoptBitmapCopy copies buffers[idx], sized for totalBits logical bits,
// into a freshly-owned Bitmask (§4.7.2: "copies to own the allocation and
// simplify lifetime"). Returns nil when the array has no nulls.
func adoptBitmapCopy(buffers []unsafe.Pointer, idx int, nullCount, totalBits int) *array.Bitmask {
	if nullCount == 0 || buffers[idx] == nil {
		return nil
	}
	n := bitutil.BytesForBits(totalBits)
	src := bytesFrom(buffers[idx], n)
	owned := make([]byte, n)
	copy(owned, src)
	return array.NewBitmaskFromBytes(owned, totalBits)
}

// ImportSchema converts an ArrowSchema into a Field, consuming (releasing)
// the schema exactly once — including its dictionary child, if any — per
// §4.7.2's release protocol.
func ImportSchema(sch *ArrowSchema) (arrow.Field, error) {
	if sch.IsReleased() {
		return arrow.Field{}, importErrorf("ImportSchema", "%w", ErrAlreadyReleased)
	}
	defer callRelease(&sch.Release)

	format := goString(sch.Format)
	name := goString(sch.Name)
	nullable := sch.Flags&FlagNullable != 0

	if sch.Dictionary != nil {
		indexType, err := importFormat(format)
		if err != nil {
			return arrow.Field{}, err
		}
		valueField, err := ImportSchema(sch.Dictionary)
		if err != nil {
			return arrow.Field{}, err
		}
		dt := &arrow.DictionaryType{Index: indexType, Value: valueField.Type}
		return arrow.NewField(name, dt, nullable, arrow.Metadata{}), nil
	}

	dt, err := importFormat(format)
	if err != nil {
		return arrow.Field{}, err
	}
	return arrow.NewField(name, dt, nullable, arrow.Metadata{}), nil
}

// ImportArray converts an ArrowArray of logical type dt into an Array,
// consuming (releasing) the source exactly once (§4.7.2). The window
// carried by arr.offset/arr.length is preserved via Array.Slice.
func ImportArray(arr *ArrowArray, dt arrow.DataType) (array.Array, error) {
	if arr.IsReleased() {
		return array.Array{}, importErrorf("ImportArray", "%w", ErrAlreadyReleased)
	}
	if arr.Release == 0 {
		return array.Array{}, importErrorf("ImportArray", "%w", ErrNilRelease)
	}
	defer callRelease(&arr.Release)

	want := expectedBufferCount(dt)
	if arr.NBuffers != want {
		return array.Array{}, importErrorf("ImportArray", "%w: format wants %d, array has %d", ErrBufferCount, want, arr.NBuffers)
	}

	full := int(arr.Length) + int(arr.Offset)
	nullCount := int(arr.NullCount)
	buffers := readBuffers(arr)
	offset, length := int(arr.Offset), int(arr.Length)

	switch t := dt.(type) {
	case *arrow.NullType:
		return array.FromNull(array.NewNullArray(length)), nil
	case *arrow.BooleanType:
		mask := adoptBitmapCopy(buffers, 0, nullCount, full)
		values := array.NewBitmaskFromBytes(bytesFrom(buffers[1], bitutil.BytesForBits(full)), full)
		a := array.AdoptBooleanArray(values, mask, nullCount)
		return array.FromBoolean(a).Slice(offset, length), nil
	case *arrow.Int8Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromInt8(adoptInteger[int8](buffers, full, nullCount))), offset, length), nil
	case *arrow.Int16Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromInt16(adoptInteger[int16](buffers, full, nullCount))), offset, length), nil
	case *arrow.Int32Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromInt32(adoptInteger[int32](buffers, full, nullCount))), offset, length), nil
	case *arrow.Int64Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromInt64(adoptInteger[int64](buffers, full, nullCount))), offset, length), nil
	case *arrow.Uint8Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromUint8(adoptInteger[uint8](buffers, full, nullCount))), offset, length), nil
	case *arrow.Uint16Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromUint16(adoptInteger[uint16](buffers, full, nullCount))), offset, length), nil
	case *arrow.Uint32Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromUint32(adoptInteger[uint32](buffers, full, nullCount))), offset, length), nil
	case *arrow.Uint64Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromUint64(adoptInteger[uint64](buffers, full, nullCount))), offset, length), nil
	case *arrow.Float32Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromFloat32(adoptFloat[float32](buffers, full, nullCount))), offset, length), nil
	case *arrow.Float64Type:
		return sliceNumeric(array.FromNumeric(array.NumericFromFloat64(adoptFloat[float64](buffers, full, nullCount))), offset, length), nil
	case *arrow.Utf8Type:
		s32, err := adoptString[uint32](buffers, full, nullCount)
		if err != nil {
			return array.Array{}, err
		}
		return sliceText(array.FromText(array.TextFromString32(s32)), offset, length)
	case *arrow.LargeUtf8Type:
		s64, err := adoptString[uint64](buffers, full, nullCount)
		if err != nil {
			return array.Array{}, err
		}
		return sliceText(array.FromText(array.TextFromString64(s64)), offset, length)
	case *arrow.Date32Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime32(adoptDatetime[int32](buffers, arrow.Days, full, nullCount))), offset, length), nil
	case *arrow.Date64Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime64(adoptDatetime[int64](buffers, arrow.Milliseconds, full, nullCount))), offset, length), nil
	case *arrow.Time32Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime32(adoptDatetime[int32](buffers, t.Unit, full, nullCount))), offset, length), nil
	case *arrow.Time64Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime64(adoptDatetime[int64](buffers, t.Unit, full, nullCount))), offset, length), nil
	case *arrow.TimestampType:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime64(adoptDatetime[int64](buffers, t.Unit, full, nullCount))), offset, length), nil
	case *arrow.Duration32Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime32(adoptDatetime[int32](buffers, t.Unit, full, nullCount))), offset, length), nil
	case *arrow.Duration64Type:
		return sliceTemporal(array.FromTemporal(array.TemporalFromDatetime64(adoptDatetime[int64](buffers, t.Unit, full, nullCount))), offset, length), nil
	case *arrow.DictionaryType:
		return importDictionary(arr, t, buffers, full, nullCount, offset, length)
	default:
		return array.Array{}, importErrorf("ImportArray", "%w: %T", ErrUnsupportedFormat, dt)
	}
}

func sliceNumeric(a array.Array, offset, length int) array.Array { return a.Slice(offset, length) }

func sliceTemporal(a array.Array, offset, length int) array.Array { return a.Slice(offset, length) }

// sliceText applies the window and performs §4.7.2's lazy UTF-8 validation,
// checked only over the strings the imported window actually exposes.
func sliceText(a array.Array, offset, length int) (array.Array, error) {
	out := a.Slice(offset, length)
	t := out.Text()
	for i := 0; i < out.Len(); i++ {
		var s string
		var ok bool
		switch t.Kind() {
		case array.TextString32:
			s, ok = t.String32().Get(out.Offset() + i)
		case array.TextString64:
			s, ok = t.String64().Get(out.Offset() + i)
		}
		if ok {
			if err := validateUTF8([]byte(s)); err != nil {
				out.Release()
				return array.Array{}, importErrorf("ImportArray", "%w", err)
			}
		}
	}
	return out, nil
}

func adoptInteger[T array.Integer](buffers []unsafe.Pointer, full, nullCount int) *array.IntegerArray[T] {
	mask := adoptBitmapCopy(buffers, 0, nullCount, full)
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	values := array.NewAlignedBufferFromBytes[T](bytesFrom(buffers[1], full*elemSize), full)
	return array.AdoptIntegerArray[T](values, mask, nullCount)
}

func adoptFloat[T array.Float](buffers []unsafe.Pointer, full, nullCount int) *array.FloatArray[T] {
	mask := adoptBitmapCopy(buffers, 0, nullCount, full)
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	values := array.NewAlignedBufferFromBytes[T](bytesFrom(buffers[1], full*elemSize), full)
	return array.AdoptFloatArray[T](values, mask, nullCount)
}

func adoptDatetime[T array.DatetimeStorage](buffers []unsafe.Pointer, unit arrow.TimeUnit, full, nullCount int) *array.DatetimeArray[T] {
	mask := adoptBitmapCopy(buffers, 0, nullCount, full)
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	values := array.NewAlignedBufferFromBytes[T](bytesFrom(buffers[1], full*elemSize), full)
	return array.AdoptDatetimeArray[T](values, unit, mask, nullCount)
}

// adoptString implements §4.7.2's Utf8 rule: offsets are copied into an
// internal aligned buffer (a deliberate non-zero-copy compromise), while the
// values byte buffer is adopted zero-copy. Non-monotonic offsets are a
// construction failure from external data (§7 class 2), not a panic.
func adoptString[O array.Offset](buffers []unsafe.Pointer, full, nullCount int) (*array.StringArray[O], error) {
	mask := adoptBitmapCopy(buffers, 0, nullCount, full)

	var zero O
	offsetSize := int(unsafe.Sizeof(zero))
	srcOffsets := bytesFrom(buffers[1], (full+1)*offsetSize)
	rawOffsets := array.NewAlignedBuffer[O](nil)
	rawOffsets.ExtendFromSlice(unsafe.Slice((*O)(unsafe.Pointer(&srcOffsets[0])), full+1))
	if err := checkMonotonic(rawOffsets, full); err != nil {
		return nil, importErrorf("ImportArray", "%w", err)
	}

	valuesLen := int(rawOffsets.Get(full))
	data := array.NewAlignedBufferFromBytes[uint8](bytesFrom(buffers[2], valuesLen), valuesLen)

	return array.AdoptStringArray[O](rawOffsets, data, mask, nullCount), nil
}

func checkMonotonic[O array.Offset](offsets *array.AlignedBuffer[O], n int) error {
	for i := 0; i < n; i++ {
		if offsets.Get(i) > offsets.Get(i+1) {
			return ErrNonMonotonicOffsets
		}
	}
	return nil
}

func validateUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	return nil
}

// importDictionary imports the codes buffer zero-copy and the dictionary
// child's strings copied out individually (§4.7.2).
func importDictionary(arr *ArrowArray, dt *arrow.DictionaryType, buffers []unsafe.Pointer, full, nullCount, offset, length int) (array.Array, error) {
	if arr.Dictionary == nil {
		return array.Array{}, importErrorf("ImportArray", "dictionary type has no dictionary child")
	}

	dictValues, err := ImportArray(arr.Dictionary, dt.Value)
	if err != nil {
		return array.Array{}, err
	}
	strs := make([]string, dictValues.Len())
	for i := range strs {
		s, ok := dictValues.Text().String32().Get(i)
		if ok {
			strs[i] = s
		}
	}

	mask := adoptBitmapCopy(buffers, 0, nullCount, full)
	switch dt.Index.(type) {
	case *arrow.Uint8Type:
		codes := array.NewAlignedBufferFromBytes[uint8](bytesFrom(buffers[1], full), full)
		a := array.AdoptCategoricalArray[uint8](codes, strs, mask, nullCount)
		return array.FromText(array.TextFromCategorical8(a)).Slice(offset, length), nil
	case *arrow.Uint16Type:
		codes := array.NewAlignedBufferFromBytes[uint16](bytesFrom(buffers[1], full*2), full)
		a := array.AdoptCategoricalArray[uint16](codes, strs, mask, nullCount)
		return array.FromText(array.TextFromCategorical16(a)).Slice(offset, length), nil
	case *arrow.Uint32Type:
		codes := array.NewAlignedBufferFromBytes[uint32](bytesFrom(buffers[1], full*4), full)
		a := array.AdoptCategoricalArray[uint32](codes, strs, mask, nullCount)
		return array.FromText(array.TextFromCategorical32(a)).Slice(offset, length), nil
	case *arrow.Uint64Type:
		codes := array.NewAlignedBufferFromBytes[uint64](bytesFrom(buffers[1], full*8), full)
		a := array.AdoptCategoricalArray[uint64](codes, strs, mask, nullCount)
		return array.FromText(array.TextFromCategorical64(a)).Slice(offset, length), nil
	default:
		return array.Array{}, importErrorf("ImportArray", "%w: unsupported dictionary index type %s", ErrUnsupportedFormat, dt.Index)
	}
}

// ImportFieldArray combines ImportSchema and ImportArray, consuming both the
// schema and the array exactly once.
func ImportFieldArray(sch *ArrowSchema, arr *ArrowArray) (array.FieldArray, error) {
	field, err := ImportSchema(sch)
	if err != nil {
		callRelease(&arr.Release)
		return array.FieldArray{}, err
	}
	data, err := ImportArray(arr, field.Type)
	if err != nil {
		return array.FieldArray{}, err
	}
	return array.NewFieldArray(field, data), nil
}
