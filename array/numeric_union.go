package array

// NumericKind is the discriminant of the NumericArray tagged union (§3.4).
type NumericKind uint8

const (
	NumericInt8 NumericKind = iota
	NumericInt16
	NumericInt32
	NumericInt64
	NumericUint8
	NumericUint16
	NumericUint32
	NumericUint64
	NumericFloat32
	NumericFloat64
	NumericNull
)

// NumericArray is the §3.4 semantic union grouping every numeric inner
// array kind behind one discriminant + payload pointer (languages without
// sum types emulate them this way, per §4.4/§9). Construction goes through
// the NumericFromX factories; destructuring goes through the per-kind
// accessors, which return nil when the union does not hold that variant
// (spec §7 class 3: "not-applicable access" is a none-equivalent, not a
// panic).
type NumericArray struct {
	kind    NumericKind
	payload innerArray
}

func NumericFromInt8(a *IntegerArray[int8]) NumericArray   { return NumericArray{NumericInt8, a} }
func NumericFromInt16(a *IntegerArray[int16]) NumericArray { return NumericArray{NumericInt16, a} }
func NumericFromInt32(a *IntegerArray[int32]) NumericArray { return NumericArray{NumericInt32, a} }
func NumericFromInt64(a *IntegerArray[int64]) NumericArray { return NumericArray{NumericInt64, a} }
func NumericFromUint8(a *IntegerArray[uint8]) NumericArray { return NumericArray{NumericUint8, a} }
func NumericFromUint16(a *IntegerArray[uint16]) NumericArray {
	return NumericArray{NumericUint16, a}
}
func NumericFromUint32(a *IntegerArray[uint32]) NumericArray {
	return NumericArray{NumericUint32, a}
}
func NumericFromUint64(a *IntegerArray[uint64]) NumericArray {
	return NumericArray{NumericUint64, a}
}
func NumericFromFloat32(a *FloatArray[float32]) NumericArray {
	return NumericArray{NumericFloat32, a}
}
func NumericFromFloat64(a *FloatArray[float64]) NumericArray {
	return NumericArray{NumericFloat64, a}
}
func NumericFromNull(a *NullArray) NumericArray { return NumericArray{NumericNull, a} }

func (n NumericArray) Kind() NumericKind { return n.kind }
func (n NumericArray) Len() int          { return n.payload.Len() }
func (n NumericArray) NullCount() int    { return n.payload.NullCount() }
func (n NumericArray) IsNull(i int) bool { return n.payload.IsNull(i) }
func (n NumericArray) Retain()           { n.payload.Retain() }
func (n NumericArray) Release()          { n.payload.Release() }

func (n NumericArray) I8() *IntegerArray[int8] {
	if n.kind != NumericInt8 {
		return nil
	}
	return n.payload.(*IntegerArray[int8])
}

func (n NumericArray) I16() *IntegerArray[int16] {
	if n.kind != NumericInt16 {
		return nil
	}
	return n.payload.(*IntegerArray[int16])
}

func (n NumericArray) I32() *IntegerArray[int32] {
	if n.kind != NumericInt32 {
		return nil
	}
	return n.payload.(*IntegerArray[int32])
}

func (n NumericArray) I64() *IntegerArray[int64] {
	if n.kind != NumericInt64 {
		return nil
	}
	return n.payload.(*IntegerArray[int64])
}

func (n NumericArray) U8() *IntegerArray[uint8] {
	if n.kind != NumericUint8 {
		return nil
	}
	return n.payload.(*IntegerArray[uint8])
}

func (n NumericArray) U16() *IntegerArray[uint16] {
	if n.kind != NumericUint16 {
		return nil
	}
	return n.payload.(*IntegerArray[uint16])
}

func (n NumericArray) U32() *IntegerArray[uint32] {
	if n.kind != NumericUint32 {
		return nil
	}
	return n.payload.(*IntegerArray[uint32])
}

func (n NumericArray) U64() *IntegerArray[uint64] {
	if n.kind != NumericUint64 {
		return nil
	}
	return n.payload.(*IntegerArray[uint64])
}

func (n NumericArray) F32() *FloatArray[float32] {
	if n.kind != NumericFloat32 {
		return nil
	}
	return n.payload.(*FloatArray[float32])
}

func (n NumericArray) F64() *FloatArray[float64] {
	if n.kind != NumericFloat64 {
		return nil
	}
	return n.payload.(*FloatArray[float64])
}

func (n NumericArray) Null() *NullArray {
	if n.kind != NumericNull {
		return nil
	}
	return n.payload.(*NullArray)
}
