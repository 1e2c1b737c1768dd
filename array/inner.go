package array

// innerArray is the minimal shape every concrete typed inner array
// satisfies regardless of its generic instantiation, letting the semantic
// unions (NumericArray, TextArray, TemporalArray) delegate Len/NullCount/
// Retain/Release without a type switch on every call (§4.4: "the union's
// len() and null_count() delegate to the wrapped inner").
type innerArray interface {
	Len() int
	NullCount() int
	IsNull(i int) bool
	Retain()
	Release()
}

var (
	_ innerArray = (*IntegerArray[int64])(nil)
	_ innerArray = (*FloatArray[float64])(nil)
	_ innerArray = (*BooleanArray)(nil)
	_ innerArray = (*StringArray[uint32])(nil)
	_ innerArray = (*CategoricalArray[uint32])(nil)
	_ innerArray = (*DatetimeArray[int64])(nil)
	_ innerArray = (*NullArray)(nil)
)
