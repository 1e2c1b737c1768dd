package arrow

// Field is the schema metadata half of a FieldArray (§3.5): a name, a
// logical DataType, nullability, and optional key/value metadata.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata
}

// NewField builds a Field. metadata may be the zero Metadata.
func NewField(name string, dtype DataType, nullable bool, metadata Metadata) Field {
	return Field{Name: name, Type: dtype, Nullable: nullable, Metadata: metadata}
}

func (f Field) String() string {
	nullability := "not null"
	if f.Nullable {
		nullability = "nullable"
	}
	return f.Name + ": " + f.Type.String() + " (" + nullability + ")"
}
