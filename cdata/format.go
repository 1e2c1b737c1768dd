package cdata

import (
	"strings"

	"github.com/pbower/minarrow"
)

// simpleFormats is the §6.1 bit-exact mapping for every format string with no
// embedded parameters.
var simpleFormats = map[string]arrow.DataType{
	"n": arrow.Null,
	"b": arrow.Boolean,
	"c": arrow.Int8,
	"C": arrow.Uint8,
	"s": arrow.Int16,
	"S": arrow.Uint16,
	"i": arrow.Int32,
	"I": arrow.Uint32,
	"l": arrow.Int64,
	"L": arrow.Uint64,
	"f": arrow.Float32,
	"g": arrow.Float64,
	"u": arrow.Utf8,
	"U": arrow.LargeUtf8,
	"tdD": &arrow.Date32Type{},
	"tdm": &arrow.Date64Type{},
	"tts": &arrow.Time32Type{Unit: arrow.Seconds},
	"ttm": &arrow.Time32Type{Unit: arrow.Milliseconds},
	"ttu": &arrow.Time64Type{Unit: arrow.Microseconds},
	"ttn": &arrow.Time64Type{Unit: arrow.Nanoseconds},
	"tDs": &arrow.Duration32Type{Unit: arrow.Seconds},
	"tDm": &arrow.Duration32Type{Unit: arrow.Milliseconds},
	"tDu": &arrow.Duration64Type{Unit: arrow.Microseconds},
	"tDn": &arrow.Duration64Type{Unit: arrow.Nanoseconds},
}

// exportFormat renders dt's §6.1 format string. Dictionary types export the
// index type's own format; the value type travels separately via the
// ArrowSchema.dictionary child.
func exportFormat(dt arrow.DataType) (string, error) {
	switch t := dt.(type) {
	case *arrow.DictionaryType:
		return exportFormat(t.Index)
	case *arrow.TimestampType:
		var unit string
		switch t.Unit {
		case arrow.Seconds:
			unit = "tss"
		case arrow.Milliseconds:
			unit = "tsm"
		case arrow.Microseconds:
			unit = "tsu"
		case arrow.Nanoseconds:
			unit = "tsn"
		default:
			return "", importErrorf("exportFormat", "unsupported timestamp unit %v", t.Unit)
		}
		return unit + ":" + t.TimeZone, nil
	}

	for format, candidate := range simpleFormats {
		if sameDataType(candidate, dt) {
			return format, nil
		}
	}
	return "", importErrorf("exportFormat", "%w: %T", ErrUnsupportedFormat, dt)
}

// importFormat resolves a §6.1 format string back to a DataType. The same
// table serves plain fields and a dictionary field's index format.
func importFormat(format string) (arrow.DataType, error) {
	if dt, ok := simpleFormats[format]; ok {
		return dt, nil
	}

	if strings.HasPrefix(format, "tss:") || strings.HasPrefix(format, "tsm:") ||
		strings.HasPrefix(format, "tsu:") || strings.HasPrefix(format, "tsn:") {
		parts := strings.SplitN(format, ":", 2)
		var unit arrow.TimeUnit
		switch parts[0] {
		case "tss":
			unit = arrow.Seconds
		case "tsm":
			unit = arrow.Milliseconds
		case "tsu":
			unit = arrow.Microseconds
		case "tsn":
			unit = arrow.Nanoseconds
		}
		return &arrow.TimestampType{Unit: unit, TimeZone: parts[1]}, nil
	}

	return nil, importErrorf("importFormat", "%w: %q", ErrUnsupportedFormat, format)
}

// expectedBufferCount returns the §6.1 n_buffers for dt (2 for most
// primitives/booleans/temporals/dictionary codes, 3 for UTF-8, 0 for Null).
func expectedBufferCount(dt arrow.DataType) int64 {
	switch dt.(type) {
	case *arrow.NullType:
		return 0
	case *arrow.Utf8Type, *arrow.LargeUtf8Type:
		return 3
	default:
		return 2
	}
}

func sameDataType(a, b arrow.DataType) bool {
	switch x := a.(type) {
	case *arrow.Time32Type:
		y, ok := b.(*arrow.Time32Type)
		return ok && x.Unit == y.Unit
	case *arrow.Time64Type:
		y, ok := b.(*arrow.Time64Type)
		return ok && x.Unit == y.Unit
	case *arrow.Duration32Type:
		y, ok := b.(*arrow.Duration32Type)
		return ok && x.Unit == y.Unit
	case *arrow.Duration64Type:
		y, ok := b.(*arrow.Duration64Type)
		return ok && x.Unit == y.Unit
	default:
		return a.ID() == b.ID()
	}
}
