package array

import (
	"fmt"

	"github.com/pbower/minarrow"
)

// ArrayV is the §3.8 non-owning offset+length window over an Array: it
// never allocates on construction, only on ToOwned. Distinct from
// Array.Slice (which returns a new, independently-refcounted Array): an
// ArrayV is the lighter-weight projection used by TableV's row slicing,
// and is expected to be short-lived relative to the Table it views.
type ArrayV struct {
	inner  *Array
	offset int
	length int
}

// NewArrayV checks bounds and returns a view (§4.6).
func NewArrayV(inner *Array, offset, length int) ArrayV {
	if offset < 0 || length < 0 || offset+length > inner.Len() {
		panic(fmt.Errorf("array: view [%d:%d) out of range for array of length %d", offset, offset+length, inner.Len()))
	}
	return ArrayV{inner: inner, offset: offset, length: length}
}

func (v ArrayV) Len() int { return v.length }

func (v ArrayV) IsNull(i int) bool {
	if i < 0 || i >= v.length {
		panic("array: view index out of range")
	}
	return v.inner.IsNull(v.offset + i)
}

// ToOwned materialises an owned Array by copying only the selected window
// (§4.6), walking the source element-by-element into a freshly built inner
// array of the same concrete kind.
func (v ArrayV) ToOwned() Array {
	offset := v.inner.Offset() + v.offset
	switch v.inner.Kind() {
	case ArrayNumeric:
		return FromNumeric(copyNumericWindow(v.inner.Num(), offset, v.length))
	case ArrayBoolean:
		return FromBoolean(copyBooleanWindow(v.inner.Bool(), offset, v.length))
	case ArrayText:
		return FromText(copyTextWindow(v.inner.Text(), offset, v.length))
	case ArrayTemporal:
		return FromTemporal(copyTemporalWindow(v.inner.Temporal(), offset, v.length))
	case ArrayNull:
		return FromNull(NewNullArray(v.length))
	default:
		panic("array: unreachable Array kind")
	}
}

func copyBooleanWindow(src *BooleanArray, offset, length int) *BooleanArray {
	dst := NewBooleanArray(nil)
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

func copyNumericWindow(src NumericArray, offset, length int) NumericArray {
	switch src.Kind() {
	case NumericInt8:
		return NumericFromInt8(copyIntegerWindow(src.I8(), offset, length))
	case NumericInt16:
		return NumericFromInt16(copyIntegerWindow(src.I16(), offset, length))
	case NumericInt32:
		return NumericFromInt32(copyIntegerWindow(src.I32(), offset, length))
	case NumericInt64:
		return NumericFromInt64(copyIntegerWindow(src.I64(), offset, length))
	case NumericUint8:
		return NumericFromUint8(copyIntegerWindow(src.U8(), offset, length))
	case NumericUint16:
		return NumericFromUint16(copyIntegerWindow(src.U16(), offset, length))
	case NumericUint32:
		return NumericFromUint32(copyIntegerWindow(src.U32(), offset, length))
	case NumericUint64:
		return NumericFromUint64(copyIntegerWindow(src.U64(), offset, length))
	case NumericFloat32:
		return NumericFromFloat32(copyFloatWindow(src.F32(), offset, length))
	case NumericFloat64:
		return NumericFromFloat64(copyFloatWindow(src.F64(), offset, length))
	case NumericNull:
		return NumericFromNull(NewNullArray(length))
	default:
		panic("array: unreachable NumericArray kind")
	}
}

func copyIntegerWindow[T Integer](src *IntegerArray[T], offset, length int) *IntegerArray[T] {
	dst := NewIntegerArray[T](nil)
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

func copyFloatWindow[T Float](src *FloatArray[T], offset, length int) *FloatArray[T] {
	dst := NewFloatArray[T](nil)
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

func copyTextWindow(src TextArray, offset, length int) TextArray {
	switch src.Kind() {
	case TextString32:
		return TextFromString32(copyStringWindow(src.String32(), offset, length))
	case TextString64:
		return TextFromString64(copyStringWindow(src.String64(), offset, length))
	case TextCategorical8:
		return TextFromCategorical8(copyCategoricalWindow(src.Categorical8(), offset, length))
	case TextCategorical16:
		return TextFromCategorical16(copyCategoricalWindow(src.Categorical16(), offset, length))
	case TextCategorical32:
		return TextFromCategorical32(copyCategoricalWindow(src.Categorical32(), offset, length))
	case TextCategorical64:
		return TextFromCategorical64(copyCategoricalWindow(src.Categorical64(), offset, length))
	case TextNull:
		return TextFromNull(NewNullArray(length))
	default:
		panic("array: unreachable TextArray kind")
	}
}

func copyStringWindow[O Offset](src *StringArray[O], offset, length int) *StringArray[O] {
	dst := NewStringArray[O](nil)
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

func copyCategoricalWindow[K Code](src *CategoricalArray[K], offset, length int) *CategoricalArray[K] {
	dst := NewCategoricalArray[K](nil)
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

func copyTemporalWindow(src TemporalArray, offset, length int) TemporalArray {
	switch src.Kind() {
	case TemporalDatetime32:
		return TemporalFromDatetime32(copyDatetimeWindow(src.Datetime32(), offset, length))
	case TemporalDatetime64:
		return TemporalFromDatetime64(copyDatetimeWindow(src.Datetime64(), offset, length))
	case TemporalNull:
		return TemporalFromNull(NewNullArray(length))
	default:
		panic("array: unreachable TemporalArray kind")
	}
}

func copyDatetimeWindow[T DatetimeStorage](src *DatetimeArray[T], offset, length int) *DatetimeArray[T] {
	dst := NewDatetimeArray[T](nil, src.Unit())
	for i := offset; i < offset+length; i++ {
		if v, ok := src.Get(i); ok {
			dst.Push(v)
		} else {
			dst.PushNull()
		}
	}
	return dst
}

// TableV is the §3.8 columnar + row view over a Table: a sequence of
// ArrayV plus the row count they share, with the originating Fields kept
// alongside for name-based lookup and for ToOwned's schema reconstruction.
type TableV struct {
	name     string
	fields   []arrow.Field
	columns  []ArrayV
	rowCount int
}

// C implements Table.c(column_names) (§4.6): selects matching columns, in
// the order given, "first match wins" on duplicate names; a missing name
// is a fatal precondition violation in this data model.
func (t *Table) C(names []string) TableV {
	fields := make([]arrow.Field, 0, len(names))
	views := make([]ArrayV, 0, len(names))
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			panic(fmt.Errorf("array: table %q has no column named %q", t.name, name))
		}
		fields = append(fields, col.Field)
		views = append(views, NewArrayV(&col.Data, 0, col.Len()))
	}
	return TableV{name: t.name, fields: fields, columns: views, rowCount: t.rows}
}

// R implements Table.r(row_range) (§4.6): applies the row window to every
// column.
func (t *Table) R(start, end int) TableV {
	if start < 0 || end < start || end > t.rows {
		panic(fmt.Errorf("array: row range [%d:%d) out of range for table of %d rows", start, end, t.rows))
	}
	fields := make([]arrow.Field, len(t.columns))
	views := make([]ArrayV, len(t.columns))
	for i, c := range t.columns {
		fields[i] = c.Field
		views[i] = NewArrayV(&t.columns[i].Data, start, end-start)
	}
	return TableV{name: t.name, fields: fields, columns: views, rowCount: end - start}
}

// C further narrows an existing TableV to the named columns — composing
// .C(...).R(...) is order-independent in effect (§4.6) because C only ever
// selects among already-windowed ArrayVs without touching their window.
func (v TableV) C(names []string) TableV {
	fields := make([]arrow.Field, 0, len(names))
	views := make([]ArrayV, 0, len(names))
	for _, name := range names {
		found := false
		for i, f := range v.fields {
			if f.Name == name {
				fields = append(fields, f)
				views = append(views, v.columns[i])
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Errorf("array: view %q has no column named %q", v.name, name))
		}
	}
	return TableV{name: v.name, fields: fields, columns: views, rowCount: v.rowCount}
}

// R further narrows an existing TableV's row window.
func (v TableV) R(start, end int) TableV {
	if start < 0 || end < start || end > v.rowCount {
		panic(fmt.Errorf("array: row range [%d:%d) out of range for view of %d rows", start, end, v.rowCount))
	}
	views := make([]ArrayV, len(v.columns))
	for i, c := range v.columns {
		views[i] = ArrayV{inner: c.inner, offset: c.offset + start, length: end - start}
	}
	return TableV{name: v.name, fields: v.fields, columns: views, rowCount: end - start}
}

func (v TableV) Len() int   { return v.rowCount }
func (v TableV) Width() int { return len(v.columns) }

// ToOwned materialises an owned Table by copying only the selected window
// of each column (§4.6).
func (v TableV) ToOwned() *Table {
	columns := make([]FieldArray, len(v.columns))
	for i, c := range v.columns {
		columns[i] = NewFieldArray(v.fields[i], c.ToOwned())
	}
	return NewTable(v.name, columns)
}
