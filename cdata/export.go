package cdata

import (
	"unsafe"

	"github.com/pbower/minarrow"
	"github.com/pbower/minarrow/array"
)

// arrayHolder is the private_data payload of every exported ArrowArray
// (§4.7.1): it is the sole owner of the shared handles keeping the
// exported buffers alive, and its teardown (run exactly once, from
// release) is what finally drops this library's own refcounts on them.
type arrayHolder struct {
	buffers []unsafe.Pointer
	onFree  func()
}

// schemaHolder plays the same role for an exported ArrowSchema: it pins the
// format/name C-string byte slices for the struct's lifetime.
type schemaHolder struct {
	format, name []byte
}

// rawBuffer is the shape AlignedBuffer[T] and Bitmask both already expose,
// letting exportFixedWidth cover every 2-buffer (null bitmap + values) shape
// of §6.1 with one implementation regardless of element type.
type rawBuffer interface {
	AsBytes() []byte
	Retain()
	Release()
}

func bufPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func newArrowArray(length, nullCount, offset int, buffers []unsafe.Pointer, onFree func()) *ArrowArray {
	h := &arrayHolder{buffers: buffers, onFree: onFree}
	arr := &ArrowArray{
		Length:      int64(length),
		NullCount:   int64(nullCount),
		Offset:      int64(offset),
		NBuffers:    int64(len(buffers)),
		PrivateData: unsafe.Pointer(h),
	}
	if len(buffers) > 0 {
		arr.Buffers = unsafe.Pointer(&h.buffers[0])
	}
	arr.Release = registerRelease(func() {
		if h.onFree != nil {
			h.onFree()
		}
	})
	return arr
}

// exportNull builds the degenerate n_buffers==0 shape for a Null-typed
// array or variant (§6.1 row "Null").
func exportNull(offset, length int) *ArrowArray {
	return newArrowArray(length, length, offset, nil, nil)
}

// exportFixedWidth covers every §6.1 2-buffer shape: booleans, every
// integer/float width, and every temporal width — null bitmap plus one
// values-shaped buffer.
func exportFixedWidth(mask *array.Bitmask, values rawBuffer, offset, length, nullCount int) *ArrowArray {
	buffers := make([]unsafe.Pointer, 2)
	if mask != nil {
		mask.Retain()
		buffers[0] = bufPtr(mask.AsBytes())
	}
	values.Retain()
	buffers[1] = bufPtr(values.AsBytes())
	return newArrowArray(length, nullCount, offset, buffers, func() {
		if mask != nil {
			mask.Release()
		}
		values.Release()
	})
}

// exportUtf8 covers the §6.1 3-buffer shape: null bitmap, offsets, data.
func exportUtf8(mask *array.Bitmask, offsets, data rawBuffer, offset, length, nullCount int) *ArrowArray {
	buffers := make([]unsafe.Pointer, 3)
	if mask != nil {
		mask.Retain()
		buffers[0] = bufPtr(mask.AsBytes())
	}
	offsets.Retain()
	buffers[1] = bufPtr(offsets.AsBytes())
	data.Retain()
	buffers[2] = bufPtr(data.AsBytes())
	return newArrowArray(length, nullCount, offset, buffers, func() {
		if mask != nil {
			mask.Release()
		}
		offsets.Release()
		data.Release()
	})
}

// exportCategorical exports the codes buffer per exportFixedWidth, then
// attaches a freshly-built UTF-8 array holding the ordered dictionary
// strings as the ArrowArray.dictionary child (§6.1 row "Dictionary").
func exportCategorical[K array.Code](a *array.CategoricalArray[K], offset, length, nullCount int) *ArrowArray {
	arr := exportFixedWidth(a.NullMask(), a.Codes(), offset, length, nullCount)
	arr.Dictionary = exportDictionaryValues(a.Dictionary())
	return arr
}

func exportDictionaryValues(dict []string) *ArrowArray {
	values := array.NewStringArray[uint32](nil)
	for _, s := range dict {
		values.Push(s)
	}
	return exportUtf8(values.NullMask(), values.Offsets(), values.Data(), 0, values.Len(), 0)
}

func exportNumeric(n array.NumericArray, offset, length, nullCount int) *ArrowArray {
	switch n.Kind() {
	case array.NumericInt8:
		a := n.I8()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericInt16:
		a := n.I16()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericInt32:
		a := n.I32()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericInt64:
		a := n.I64()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericUint8:
		a := n.U8()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericUint16:
		a := n.U16()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericUint32:
		a := n.U32()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericUint64:
		a := n.U64()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericFloat32:
		a := n.F32()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericFloat64:
		a := n.F64()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.NumericNull:
		return exportNull(offset, length)
	default:
		panic("cdata: unreachable NumericArray kind")
	}
}

func exportTextArr(t array.TextArray, offset, length, nullCount int) *ArrowArray {
	switch t.Kind() {
	case array.TextString32:
		a := t.String32()
		return exportUtf8(a.NullMask(), a.Offsets(), a.Data(), offset, length, nullCount)
	case array.TextString64:
		a := t.String64()
		return exportUtf8(a.NullMask(), a.Offsets(), a.Data(), offset, length, nullCount)
	case array.TextCategorical8:
		return exportCategorical(t.Categorical8(), offset, length, nullCount)
	case array.TextCategorical16:
		return exportCategorical(t.Categorical16(), offset, length, nullCount)
	case array.TextCategorical32:
		return exportCategorical(t.Categorical32(), offset, length, nullCount)
	case array.TextCategorical64:
		return exportCategorical(t.Categorical64(), offset, length, nullCount)
	case array.TextNull:
		return exportNull(offset, length)
	default:
		panic("cdata: unreachable TextArray kind")
	}
}

func exportTemporalArr(t array.TemporalArray, offset, length, nullCount int) *ArrowArray {
	switch t.Kind() {
	case array.TemporalDatetime32:
		a := t.Datetime32()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.TemporalDatetime64:
		a := t.Datetime64()
		return exportFixedWidth(a.NullMask(), a.Values(), offset, length, nullCount)
	case array.TemporalNull:
		return exportNull(offset, length)
	default:
		panic("cdata: unreachable TemporalArray kind")
	}
}

// ExportArray builds the ArrowArray half of the bridge for data (§4.7.1).
// Buffer pointers reference data's own live storage: the returned struct's
// release callback drops this package's retained references, not the
// storage itself, which this library's own Array may still be using.
func ExportArray(data array.Array) *ArrowArray {
	offset, length, nullCount := data.Offset(), data.Len(), data.NullCount()
	switch data.Kind() {
	case array.ArrayNull:
		return exportNull(offset, length)
	case array.ArrayBoolean:
		b := data.Bool()
		return exportFixedWidth(b.NullMask(), b.Values(), offset, length, nullCount)
	case array.ArrayNumeric:
		return exportNumeric(data.Num(), offset, length, nullCount)
	case array.ArrayText:
		return exportTextArr(data.Text(), offset, length, nullCount)
	case array.ArrayTemporal:
		return exportTemporalArr(data.Temporal(), offset, length, nullCount)
	default:
		panic("cdata: unreachable Array kind")
	}
}

// ExportSchema builds the ArrowSchema half of the bridge for field (§4.7.1).
func ExportSchema(field arrow.Field) *ArrowSchema {
	format, err := exportFormat(field.Type)
	if err != nil {
		// The format table is generated from the same closed DataType union
		// FieldArray.New already validated against, so a miss here is a
		// construction-time bug in this library, not an external failure.
		panic(err)
	}

	formatPtr, formatBytes := cString(format)
	namePtr, nameBytes := cString(field.Name)
	h := &schemaHolder{format: formatBytes, name: nameBytes}

	sch := &ArrowSchema{Format: formatPtr, Name: namePtr, PrivateData: unsafe.Pointer(h)}
	if field.Nullable {
		sch.Flags |= FlagNullable
	}

	if dict, ok := field.Type.(*arrow.DictionaryType); ok {
		valueField := arrow.NewField(field.Name, dict.Value, field.Nullable, arrow.Metadata{})
		sch.Dictionary = ExportSchema(valueField)
	}

	sch.Release = registerRelease(func() {
		if sch.Dictionary != nil {
			callRelease(&sch.Dictionary.Release)
		}
	})
	return sch
}

// ExportFieldArray exports both halves of fa in one call.
func ExportFieldArray(fa array.FieldArray) (*ArrowArray, *ArrowSchema) {
	return ExportArray(fa.Data), ExportSchema(fa.Field)
}

// tableSchema builds the synthetic struct-typed ArrowSchema standing in for
// a Table's row-group schema (§4.7.3: "virtual, not materialised" as a real
// struct array — only its schema is ever exported).
func tableSchema(t *array.Table) *ArrowSchema {
	cols := t.Columns()
	children := make([]*ArrowSchema, len(cols))
	for i, c := range cols {
		children[i] = ExportSchema(c.Field)
	}

	formatPtr, formatBytes := cString("+s")
	namePtr, nameBytes := cString(t.Name())
	h := &schemaHolder{format: formatBytes, name: nameBytes}

	sch := &ArrowSchema{
		Format:      formatPtr,
		Name:        namePtr,
		NChildren:   int64(len(children)),
		PrivateData: unsafe.Pointer(h),
	}
	if len(children) > 0 {
		sch.Children = unsafe.Pointer(&children[0])
	}
	sch.Release = registerRelease(func() {
		for _, c := range children {
			callRelease(&c.Release)
		}
	})
	return sch
}

// ExportTableStream implements the minimal Arrow C Stream Interface (§4.7.3)
// over t: one schema, a single get_next call yielding the whole table as one
// batch, and a second get_next call signalling end-of-stream by returning a
// released (zero) ArrowArray.
func ExportTableStream(t *array.Table) *ArrowArrayStream {
	delivered := false
	stream := &ArrowArrayStream{}

	getSchema := func(out *ArrowSchema) int32 {
		*out = *tableSchema(t)
		return 0
	}
	getNext := func(out *ArrowArray) int32 {
		if delivered {
			*out = ArrowArray{}
			return 0
		}
		delivered = true

		cols := t.Columns()
		children := make([]*ArrowArray, len(cols))
		for i, c := range cols {
			children[i] = ExportArray(c.Data)
		}
		batch := &ArrowArray{Length: int64(t.Len()), NChildren: int64(len(children))}
		if len(children) > 0 {
			batch.Children = unsafe.Pointer(&children[0])
		}
		batch.Release = registerRelease(func() {
			for _, c := range children {
				callRelease(&c.Release)
			}
		})
		*out = *batch
		return 0
	}
	getLastError := func() string { return "" }

	stream.GetSchema = storeHandle(getSchema)
	stream.GetNext = storeHandle(getNext)
	stream.GetLastError = storeHandle(getLastError)
	stream.Release = registerRelease(func() {
		deleteHandle(stream.GetSchema)
		deleteHandle(stream.GetNext)
		deleteHandle(stream.GetLastError)
		stream.GetSchema, stream.GetNext, stream.GetLastError = 0, 0, 0
	})
	return stream
}

// StreamGetSchema, StreamGetNext, StreamGetLastError and StreamRelease are
// the consumer-side calling convention for an ArrowArrayStream, standing in
// for the C inline wrapper functions a cgo-linked consumer would otherwise
// generate (stream_get_schema/stream_get_next/stream_get_last_error in the
// ecosystem's own cdata package).
func StreamGetSchema(s *ArrowArrayStream, out *ArrowSchema) int32 {
	return loadHandle(s.GetSchema).(func(*ArrowSchema) int32)(out)
}

func StreamGetNext(s *ArrowArrayStream, out *ArrowArray) int32 {
	return loadHandle(s.GetNext).(func(*ArrowArray) int32)(out)
}

func StreamGetLastError(s *ArrowArrayStream) string {
	return loadHandle(s.GetLastError).(func() string)()
}

func StreamRelease(s *ArrowArrayStream) {
	callRelease(&s.Release)
}
