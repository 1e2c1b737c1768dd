package array

// TemporalKind is the discriminant of the TemporalArray tagged union (§3.4).
type TemporalKind uint8

const (
	TemporalDatetime32 TemporalKind = iota
	TemporalDatetime64
	TemporalNull
)

// TemporalArray is the §3.4 semantic union over i32/i64-backed date, time,
// timestamp and duration columns (§4.3.3 fixes which DataTypes pair with
// which storage width).
type TemporalArray struct {
	kind    TemporalKind
	payload innerArray
}

func TemporalFromDatetime32(a *DatetimeArray[int32]) TemporalArray {
	return TemporalArray{TemporalDatetime32, a}
}
func TemporalFromDatetime64(a *DatetimeArray[int64]) TemporalArray {
	return TemporalArray{TemporalDatetime64, a}
}
func TemporalFromNull(a *NullArray) TemporalArray { return TemporalArray{TemporalNull, a} }

func (t TemporalArray) Kind() TemporalKind { return t.kind }
func (t TemporalArray) Len() int           { return t.payload.Len() }
func (t TemporalArray) NullCount() int     { return t.payload.NullCount() }
func (t TemporalArray) IsNull(i int) bool  { return t.payload.IsNull(i) }
func (t TemporalArray) Retain()            { t.payload.Retain() }
func (t TemporalArray) Release()           { t.payload.Release() }

func (t TemporalArray) Datetime32() *DatetimeArray[int32] {
	if t.kind != TemporalDatetime32 {
		return nil
	}
	return t.payload.(*DatetimeArray[int32])
}

func (t TemporalArray) Datetime64() *DatetimeArray[int64] {
	if t.kind != TemporalDatetime64 {
		return nil
	}
	return t.payload.(*DatetimeArray[int64])
}

func (t TemporalArray) Null() *NullArray {
	if t.kind != TemporalNull {
		return nil
	}
	return t.payload.(*NullArray)
}
