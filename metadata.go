package arrow

// Metadata is the key/value metadata carried by a Field (§3.5). It keeps the
// Keys/Values/FindKey accessor surface of the teacher's metadata helpers,
// which are not part of this repository.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata builds a Metadata from parallel keys/values slices. Panics if
// the slices differ in length: a mismatched pair is a construction bug, not
// a runtime condition.
func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: metadata keys/values length mismatch")
	}
	return Metadata{keys: keys, values: values}
}

func (m Metadata) Len() int          { return len(m.keys) }
func (m Metadata) Keys() []string    { return m.keys }
func (m Metadata) Values() []string  { return m.values }

// FindKey returns the index of key, or -1 if absent.
func (m Metadata) FindKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}
