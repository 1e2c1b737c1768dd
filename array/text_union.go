package array

// TextKind is the discriminant of the TextArray tagged union (§3.4).
type TextKind uint8

const (
	TextString32 TextKind = iota
	TextString64
	TextCategorical8
	TextCategorical16
	TextCategorical32
	TextCategorical64
	TextNull
)

// TextArray is the §3.4 semantic union over UTF-8 and dictionary-encoded
// string columns.
type TextArray struct {
	kind    TextKind
	payload innerArray
}

func TextFromString32(a *StringArray[uint32]) TextArray { return TextArray{TextString32, a} }
func TextFromString64(a *StringArray[uint64]) TextArray { return TextArray{TextString64, a} }
func TextFromCategorical8(a *CategoricalArray[uint8]) TextArray {
	return TextArray{TextCategorical8, a}
}
func TextFromCategorical16(a *CategoricalArray[uint16]) TextArray {
	return TextArray{TextCategorical16, a}
}
func TextFromCategorical32(a *CategoricalArray[uint32]) TextArray {
	return TextArray{TextCategorical32, a}
}
func TextFromCategorical64(a *CategoricalArray[uint64]) TextArray {
	return TextArray{TextCategorical64, a}
}
func TextFromNull(a *NullArray) TextArray { return TextArray{TextNull, a} }

func (t TextArray) Kind() TextKind { return t.kind }
func (t TextArray) Len() int       { return t.payload.Len() }
func (t TextArray) NullCount() int { return t.payload.NullCount() }
func (t TextArray) IsNull(i int) bool { return t.payload.IsNull(i) }
func (t TextArray) Retain()        { t.payload.Retain() }
func (t TextArray) Release()       { t.payload.Release() }

func (t TextArray) String32() *StringArray[uint32] {
	if t.kind != TextString32 {
		return nil
	}
	return t.payload.(*StringArray[uint32])
}

func (t TextArray) String64() *StringArray[uint64] {
	if t.kind != TextString64 {
		return nil
	}
	return t.payload.(*StringArray[uint64])
}

func (t TextArray) Categorical8() *CategoricalArray[uint8] {
	if t.kind != TextCategorical8 {
		return nil
	}
	return t.payload.(*CategoricalArray[uint8])
}

func (t TextArray) Categorical16() *CategoricalArray[uint16] {
	if t.kind != TextCategorical16 {
		return nil
	}
	return t.payload.(*CategoricalArray[uint16])
}

func (t TextArray) Categorical32() *CategoricalArray[uint32] {
	if t.kind != TextCategorical32 {
		return nil
	}
	return t.payload.(*CategoricalArray[uint32])
}

func (t TextArray) Categorical64() *CategoricalArray[uint64] {
	if t.kind != TextCategorical64 {
		return nil
	}
	return t.payload.(*CategoricalArray[uint64])
}

func (t TextArray) Null() *NullArray {
	if t.kind != TextNull {
		return nil
	}
	return t.payload.(*NullArray)
}
