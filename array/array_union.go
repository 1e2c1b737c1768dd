package array

// ArrayKind is the discriminant of the top-level Array tagged union (§3.4).
type ArrayKind uint8

const (
	ArrayNumeric ArrayKind = iota
	ArrayBoolean
	ArrayText
	ArrayTemporal
	ArrayNull
)

// Array is the top-level §3.4 tagged union: NumericArray, BooleanArray,
// TextArray, TemporalArray, or Null. It is the type every Field/FieldArray/
// Table column holds, and the type the cdata bridge exports/imports.
//
// offset/length carry a logical window (§4.6, §4.7.1's "offset =
// logical_offset"): Slice never copies a buffer, it only narrows the
// window. A freshly constructed Array (via FromNumeric etc.) always has
// offset 0 and length equal to the wrapped inner array's own length.
//
// Polymorphism is dispatched at match (accessor) sites only — no virtual
// call indirection, per §4.4.
type Array struct {
	kind     ArrayKind
	offset   int
	length   int
	numeric  NumericArray
	boolean  *BooleanArray
	text     TextArray
	temporal TemporalArray
	null     *NullArray
}

func FromNumeric(a NumericArray) Array {
	return Array{kind: ArrayNumeric, numeric: a, length: a.Len()}
}
func FromBoolean(a *BooleanArray) Array {
	return Array{kind: ArrayBoolean, boolean: a, length: a.Len()}
}
func FromText(a TextArray) Array {
	return Array{kind: ArrayText, text: a, length: a.Len()}
}
func FromTemporal(a TemporalArray) Array {
	return Array{kind: ArrayTemporal, temporal: a, length: a.Len()}
}
func FromNull(a *NullArray) Array {
	return Array{kind: ArrayNull, null: a, length: a.Len()}
}

func (a Array) Kind() ArrayKind { return a.kind }

// Offset reports the logical window start carried from Slice (0 for an
// unsliced Array).
func (a Array) Offset() int { return a.offset }

// Len returns the window's logical length, not the underlying inner
// array's full length.
func (a Array) Len() int { return a.length }

func (a Array) innerIsNull(i int) bool {
	switch a.kind {
	case ArrayNumeric:
		return a.numeric.IsNull(i)
	case ArrayBoolean:
		return a.boolean.IsNull(i)
	case ArrayText:
		return a.text.IsNull(i)
	case ArrayTemporal:
		return a.temporal.IsNull(i)
	case ArrayNull:
		return a.null.IsNull(i)
	default:
		panic("array: unreachable Array kind")
	}
}

// IsNull reports whether the i-th position of the window is null.
func (a Array) IsNull(i int) bool {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	return a.innerIsNull(a.offset + i)
}

// NullCount counts nulls within the current window. An unsliced Array (the
// common case) delegates straight to the inner array's cached count; a
// sliced Array recounts over the window, since the cache is kept at the
// scope of the whole buffer (§8.1 property 2 only requires consistency
// against *some* mask, not that every possible window is pre-cached).
func (a Array) NullCount() int {
	if a.offset == 0 && a.length == a.fullLen() {
		switch a.kind {
		case ArrayNumeric:
			return a.numeric.NullCount()
		case ArrayBoolean:
			return a.boolean.NullCount()
		case ArrayText:
			return a.text.NullCount()
		case ArrayTemporal:
			return a.temporal.NullCount()
		case ArrayNull:
			return a.null.NullCount()
		default:
			panic("array: unreachable Array kind")
		}
	}
	n := 0
	for i := 0; i < a.length; i++ {
		if a.innerIsNull(a.offset + i) {
			n++
		}
	}
	return n
}

func (a Array) fullLen() int {
	switch a.kind {
	case ArrayNumeric:
		return a.numeric.Len()
	case ArrayBoolean:
		return a.boolean.Len()
	case ArrayText:
		return a.text.Len()
	case ArrayTemporal:
		return a.temporal.Len()
	case ArrayNull:
		return a.null.Len()
	default:
		panic("array: unreachable Array kind")
	}
}

// Retain increases the shared-ownership refcount of whichever inner array
// is wrapped; cloning an Array is always an O(1) pointer copy (§3.4, §3.9).
func (a Array) Retain() {
	switch a.kind {
	case ArrayNumeric:
		a.numeric.Retain()
	case ArrayBoolean:
		a.boolean.Retain()
	case ArrayText:
		a.text.Retain()
	case ArrayTemporal:
		a.temporal.Retain()
	case ArrayNull:
		a.null.Retain()
	}
}

func (a Array) Release() {
	switch a.kind {
	case ArrayNumeric:
		a.numeric.Release()
	case ArrayBoolean:
		a.boolean.Release()
	case ArrayText:
		a.text.Release()
	case ArrayTemporal:
		a.temporal.Release()
	case ArrayNull:
		a.null.Release()
	}
}

// Slice returns a new Array sharing the same buffers but logically
// narrowed to [offset, offset+length) of the current window (§4.6). No
// buffer is copied; only the window metadata changes, and the shared inner
// array's refcount is bumped by one so the slice keeps its buffers alive
// independently of the array it was sliced from.
//
// §8.1 property 5: array.Slice(a, m).Slice(b, k) == array.Slice(a+b, k)
// when b+k <= m — falls out directly from composing offsets below.
func (a Array) Slice(offset, length int) Array {
	if offset < 0 || length < 0 || offset+length > a.length {
		panic("array: slice out of range")
	}
	out := a
	out.offset = a.offset + offset
	out.length = length
	out.Retain()
	return out
}

func (a Array) Num() NumericArray { return a.numeric }
func (a Array) Bool() *BooleanArray {
	if a.kind != ArrayBoolean {
		return nil
	}
	return a.boolean
}
func (a Array) Text() TextArray         { return a.text }
func (a Array) Temporal() TemporalArray { return a.temporal }
func (a Array) Null() *NullArray {
	if a.kind != ArrayNull {
		return nil
	}
	return a.null
}
