package arrow

// DictionaryType is the logical type of a CategoricalArray<K>: an index
// (key) type over a dictionary of Value-typed entries. This codebase only
// ever instantiates Value == Utf8, but the field carries both per §3.5.
type DictionaryType struct {
	Index DataType // one of Uint8, Uint16, Uint32, Uint64
	Value DataType // Utf8 in this implementation
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }
func (d *DictionaryType) String() string {
	return "dictionary<values=" + d.Value.String() + ", indices=" + d.Index.String() + ">"
}

var _ DataType = (*DictionaryType)(nil)
