package array

import "github.com/pbower/minarrow/memory"

// Integer is the element-type constraint for IntegerArray<T> (§3.3:
// T ∈ {i8,i16,i32,i64,u8,u16,u32,u64}).
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntegerArray[T] is the §3.3 masked integer column: an aligned values
// buffer plus an optional null mask. Null positions keep addressable
// (zero-valued) storage rather than shrinking the buffer.
type IntegerArray[T Integer] struct {
	masked
	values *AlignedBuffer[T]
}

// NewIntegerArray returns an empty IntegerArray backed by mem.
func NewIntegerArray[T Integer](mem memory.Allocator) *IntegerArray[T] {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &IntegerArray[T]{masked: newMasked(mem), values: NewAlignedBuffer[T](mem)}
}

// AdoptIntegerArray wraps a pre-built values buffer and optional validity
// mask as an IntegerArray without copying — the cdata import path's
// zero-copy buffer adoption (§4.7.2).
func AdoptIntegerArray[T Integer](values *AlignedBuffer[T], mask *Bitmask, nullCount int) *IntegerArray[T] {
	return &IntegerArray[T]{masked: maskedFromParts(nil, values.Len(), mask, nullCount), values: values}
}

// Push appends a valid value.
func (a *IntegerArray[T]) Push(v T) {
	a.values.Push(v)
	a.pushValidity(true)
}

// PushNull appends a null; the underlying slot is zero-valued but
// addressable (§4.3).
func (a *IntegerArray[T]) PushNull() {
	var zero T
	a.values.Push(zero)
	a.pushValidity(false)
}

// Get returns (value, true) or (zero, false) if the position is null.
func (a *IntegerArray[T]) Get(i int) (T, bool) {
	if a.IsNull(i) {
		var zero T
		return zero, false
	}
	return a.values.Get(i), true
}

// Set overwrites position i with a valid value.
func (a *IntegerArray[T]) Set(i int, v T) {
	a.values.Set(i, v)
	a.setValidity(i, true)
}

// SetNull marks position i null without touching its storage slot.
func (a *IntegerArray[T]) SetNull(i int) {
	a.setValidity(i, false)
}

// Values exposes the raw values buffer for bulk/zero-copy consumers
// (the cdata export path in particular).
func (a *IntegerArray[T]) Values() *AlignedBuffer[T] { return a.values }

// Retain increments the shared-ownership refcount (§3.4/§3.9): cloning the
// Array wrapping this inner array is an O(1) pointer copy plus this.
func (a *IntegerArray[T]) Retain() { a.retain() }

// Release decrements the refcount, freeing the values buffer and null mask
// once the last reference drops.
func (a *IntegerArray[T]) Release() {
	if a.release() {
		a.values.Release()
	}
}
