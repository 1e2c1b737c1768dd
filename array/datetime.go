package array

import (
	"github.com/pbower/minarrow/memory"

	"github.com/pbower/minarrow"
)

// DatetimeArray[T] is the §3.3/§4.3.3 temporal column: an integer storage
// buffer plus the TimeUnit that, together with T's width, determines the
// wire encoding (§6.1). The in-memory representation is just the integer —
// no calendar arithmetic lives here, matching spec.md's scope (pretty
// printing/compute kernels are external collaborators).
type DatetimeArray[T DatetimeStorage] struct {
	masked
	values *AlignedBuffer[T]
	unit   arrow.TimeUnit
}

func NewDatetimeArray[T DatetimeStorage](mem memory.Allocator, unit arrow.TimeUnit) *DatetimeArray[T] {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &DatetimeArray[T]{masked: newMasked(mem), values: NewAlignedBuffer[T](mem), unit: unit}
}

func (a *DatetimeArray[T]) Unit() arrow.TimeUnit { return a.unit }

// AdoptDatetimeArray wraps a pre-built values buffer and optional validity
// mask as a DatetimeArray without copying (cdata import path, §4.7.2).
func AdoptDatetimeArray[T DatetimeStorage](values *AlignedBuffer[T], unit arrow.TimeUnit, mask *Bitmask, nullCount int) *DatetimeArray[T] {
	return &DatetimeArray[T]{masked: maskedFromParts(nil, values.Len(), mask, nullCount), values: values, unit: unit}
}

func (a *DatetimeArray[T]) Push(v T) {
	a.values.Push(v)
	a.pushValidity(true)
}

func (a *DatetimeArray[T]) PushNull() {
	var zero T
	a.values.Push(zero)
	a.pushValidity(false)
}

func (a *DatetimeArray[T]) Get(i int) (T, bool) {
	if a.IsNull(i) {
		var zero T
		return zero, false
	}
	return a.values.Get(i), true
}

func (a *DatetimeArray[T]) Set(i int, v T) {
	a.values.Set(i, v)
	a.setValidity(i, true)
}

func (a *DatetimeArray[T]) SetNull(i int) { a.setValidity(i, false) }

func (a *DatetimeArray[T]) Values() *AlignedBuffer[T] { return a.values }

func (a *DatetimeArray[T]) Retain() { a.retain() }
func (a *DatetimeArray[T]) Release() {
	if a.release() {
		a.values.Release()
	}
}
