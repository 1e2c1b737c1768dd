package array

import (
	"fmt"

	"github.com/pbower/minarrow"
)

// FieldArray is the §3.6 schema-annotated column: (Field, Array, len).
type FieldArray struct {
	Field arrow.Field
	Data  Array
	len   int
}

// NewFieldArray validates the §3.6 invariants and panics on violation
// (fatal, per §4.5/§7 class 1): the Array's length must equal len, its
// kind must structurally match Field.Type (§6.1), and a non-nullable
// field's array must carry zero nulls.
func NewFieldArray(field arrow.Field, data Array) FieldArray {
	if !typeMatchesArray(field.Type, data) {
		panic(fmt.Errorf("array: field %q declares %s but array kind is incompatible", field.Name, field.Type))
	}
	if !field.Nullable && data.NullCount() != 0 {
		panic(fmt.Errorf("array: field %q is not nullable but array has %d nulls", field.Name, data.NullCount()))
	}
	return FieldArray{Field: field, Data: data, len: data.Len()}
}

func (fa FieldArray) Len() int { return fa.len }

// typeMatchesArray implements the §6.1 DataType <-> Array-kind mapping
// used to validate FieldArray construction.
func typeMatchesArray(t arrow.DataType, a Array) bool {
	switch dt := t.(type) {
	case *arrow.Int8Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericInt8
	case *arrow.Int16Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericInt16
	case *arrow.Int32Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericInt32
	case *arrow.Int64Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericInt64
	case *arrow.Uint8Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericUint8
	case *arrow.Uint16Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericUint16
	case *arrow.Uint32Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericUint32
	case *arrow.Uint64Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericUint64
	case *arrow.Float32Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericFloat32
	case *arrow.Float64Type:
		return a.Kind() == ArrayNumeric && a.Num().Kind() == NumericFloat64
	case *arrow.BooleanType:
		return a.Kind() == ArrayBoolean
	case *arrow.Utf8Type:
		return a.Kind() == ArrayText && a.Text().Kind() == TextString32
	case *arrow.LargeUtf8Type:
		return a.Kind() == ArrayText && a.Text().Kind() == TextString64
	case *arrow.DictionaryType:
		if a.Kind() != ArrayText {
			return false
		}
		switch dt.Index.(type) {
		case *arrow.Uint8Type:
			return a.Text().Kind() == TextCategorical8
		case *arrow.Uint16Type:
			return a.Text().Kind() == TextCategorical16
		case *arrow.Uint32Type:
			return a.Text().Kind() == TextCategorical32
		case *arrow.Uint64Type:
			return a.Text().Kind() == TextCategorical64
		default:
			return false
		}
	case *arrow.Date32Type, *arrow.Time32Type, *arrow.Duration32Type:
		return a.Kind() == ArrayTemporal && a.Temporal().Kind() == TemporalDatetime32
	case *arrow.Date64Type, *arrow.Time64Type, *arrow.TimestampType, *arrow.Duration64Type:
		return a.Kind() == ArrayTemporal && a.Temporal().Kind() == TemporalDatetime64
	case *arrow.NullType:
		return a.Kind() == ArrayNull
	default:
		return false
	}
}
