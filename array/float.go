package array

import "github.com/pbower/minarrow/memory"

// Float is the element-type constraint for FloatArray<T> (§3.3:
// T ∈ {f32,f64}).
type Float interface{ ~float32 | ~float64 }

// FloatArray[T] mirrors IntegerArray[T]'s layout and push/get/set contract
// for floating-point storage (§3.3).
type FloatArray[T Float] struct {
	masked
	values *AlignedBuffer[T]
}

func NewFloatArray[T Float](mem memory.Allocator) *FloatArray[T] {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &FloatArray[T]{masked: newMasked(mem), values: NewAlignedBuffer[T](mem)}
}

// AdoptFloatArray wraps a pre-built values buffer and optional validity mask
// as a FloatArray without copying (cdata import path, §4.7.2).
func AdoptFloatArray[T Float](values *AlignedBuffer[T], mask *Bitmask, nullCount int) *FloatArray[T] {
	return &FloatArray[T]{masked: maskedFromParts(nil, values.Len(), mask, nullCount), values: values}
}

func (a *FloatArray[T]) Push(v T) {
	a.values.Push(v)
	a.pushValidity(true)
}

func (a *FloatArray[T]) PushNull() {
	var zero T
	a.values.Push(zero)
	a.pushValidity(false)
}

func (a *FloatArray[T]) Get(i int) (T, bool) {
	if a.IsNull(i) {
		var zero T
		return zero, false
	}
	return a.values.Get(i), true
}

func (a *FloatArray[T]) Set(i int, v T) {
	a.values.Set(i, v)
	a.setValidity(i, true)
}

func (a *FloatArray[T]) SetNull(i int) { a.setValidity(i, false) }

func (a *FloatArray[T]) Values() *AlignedBuffer[T] { return a.values }

func (a *FloatArray[T]) Retain() { a.retain() }
func (a *FloatArray[T]) Release() {
	if a.release() {
		a.values.Release()
	}
}
