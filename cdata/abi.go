// Package cdata implements the Arrow C Data Interface bridge (§4.7): a
// bidirectional, zero-copy-where-possible boundary between this library's
// Array/Table types and the language-neutral ArrowArray/ArrowSchema ABI.
//
// The struct layouts below mirror abi.h field-for-field (int64 width, field
// order, the trailing release/private_data pair) so that a cgo-linked
// consumer sees byte-identical memory. Function-pointer fields (release,
// get_schema, ...) are carried as uintptr holding a runtime/cgo.Handle value
// rather than a true C function pointer, since this module carries no cgo
// dependency: the same indirection the newer no-cgo builds of the Apache Arrow
// Go module use, generalised here to the whole bridge rather than only the
// stream reader.
package cdata

import "unsafe"

const (
	FlagDictionaryOrdered = 1 << 0
	FlagNullable          = 1 << 1
	FlagMapKeysSorted     = 1 << 2
)

// ArrowArray mirrors the C ABI struct of the same name (§4.7).
type ArrowArray struct {
	Length     int64
	NullCount  int64
	Offset     int64
	NBuffers   int64
	NChildren  int64
	Buffers    unsafe.Pointer // const void**
	Children   unsafe.Pointer // ArrowArray**
	Dictionary *ArrowArray
	Release    uintptr // cgo.Handle of func(), 0 once released
	PrivateData unsafe.Pointer
}

// ArrowSchema mirrors the C ABI struct of the same name (§4.7).
type ArrowSchema struct {
	Format      unsafe.Pointer // const char*, NUL-terminated
	Name        unsafe.Pointer // const char*, NUL-terminated
	Metadata    unsafe.Pointer // const char*, may be nil
	Flags       int64
	NChildren   int64
	Children    unsafe.Pointer // ArrowSchema**
	Dictionary  *ArrowSchema
	Release     uintptr // cgo.Handle of func(), 0 once released
	PrivateData unsafe.Pointer
}

// ArrowArrayStream mirrors the minimal Arrow C Stream Interface (§4.7.3).
type ArrowArrayStream struct {
	GetSchema    uintptr // cgo.Handle of func(*ArrowSchema) int32
	GetNext      uintptr // cgo.Handle of func(*ArrowArray) int32
	GetLastError uintptr // cgo.Handle of func() string
	Release      uintptr // cgo.Handle of func()
	PrivateData  unsafe.Pointer
}

// IsReleased reports whether the release slot has already fired (§8.1
// property 7: after release, the pointer field is NULL; a second call is a
// no-op).
func (a *ArrowArray) IsReleased() bool  { return a.Release == 0 }
func (s *ArrowSchema) IsReleased() bool { return s.Release == 0 }
