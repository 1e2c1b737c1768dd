package array

import (
	"unsafe"

	"github.com/pbower/minarrow/memory"
)

// Numeric is the union of primitive element kinds an AlignedBuffer may
// store: the integer and float storage types of §3.3, plus the narrower
// constraints (Offset, Code) used by StringArray and CategoricalArray.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Offset is the StringArray<O> offset element type (§3.3, row StringArray).
type Offset interface{ ~uint32 | ~uint64 }

// Code is the CategoricalArray<K> dictionary-code element type.
type Code interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

// DatetimeStorage is the DatetimeArray<T> backing integer type (§4.3.3).
type DatetimeStorage interface{ ~int32 | ~int64 }

// AlignedBuffer[T] is the §3.1 aligned buffer, generalised over element
// type T with Go generics in place of the teacher's per-type builder
// codegen (Int8Builder, Int16Builder, ... each a hand-duplicated copy of
// the same append/resize logic). The HOW — growth-by-doubling through a
// 64-byte-aligned memory.Allocator, refcounted like every other buffer in
// this codebase — is carried over unchanged from array/builder.go; only the
// per-type duplication is replaced.
type AlignedBuffer[T Numeric] struct {
	buf    *memory.Buffer
	length int // element count, not byte count
}

func elemSize[T Numeric]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// NewAlignedBuffer returns an empty buffer backed by mem.
func NewAlignedBuffer[T Numeric](mem memory.Allocator) *AlignedBuffer[T] {
	return &AlignedBuffer[T]{buf: memory.NewResizableBuffer(mem)}
}

// NewAlignedBufferWithCapacity pre-reserves room for n elements.
func NewAlignedBufferWithCapacity[T Numeric](mem memory.Allocator, n int) *AlignedBuffer[T] {
	b := NewAlignedBuffer[T](mem)
	if n > 0 {
		b.buf.Resize(n * elemSize[T]())
		b.buf.Resize(0)
	}
	return b
}

// NewAlignedBufferFromBytes adopts a foreign raw byte buffer (zero-copy) as
// the backing store of n elements — the cdata import path's primitive
// buffer adoption (§4.7.2).
func NewAlignedBufferFromBytes[T Numeric](bytes []byte, n int) *AlignedBuffer[T] {
	return &AlignedBuffer[T]{buf: memory.NewBufferBytes(bytes), length: n}
}

func (b *AlignedBuffer[T]) Len() int { return b.length }
func (b *AlignedBuffer[T]) Cap() int { return b.buf.Cap() / elemSize[T]() }

// slice returns the full backing storage reinterpreted as []T, sized to the
// logical element length. Empty buffers return nil — the "dangling but
// aligned sentinel pointer" of §4.1 collapses to Go's nil slice, which is a
// valid (if unaddressable) aligned-looking pointer for our purposes since
// nothing ever dereferences it.
func (b *AlignedBuffer[T]) slice() []T {
	bytes := b.buf.Bytes()
	if len(bytes) == 0 || b.length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&bytes[0])), b.length)
}

// AsSlice exposes the logical []T view for read access.
func (b *AlignedBuffer[T]) AsSlice() []T { return b.slice() }

// AsBytes reinterprets the logical range as raw bytes — used when exporting
// a values buffer across the C Data Interface (§4.7.1), where the ABI deals
// in untyped `const void*` pointers.
func (b *AlignedBuffer[T]) AsBytes() []byte {
	bytes := b.buf.Bytes()
	n := b.length * elemSize[T]()
	if n == 0 {
		return nil
	}
	return bytes[:n]
}

// AsPtr exposes the raw base pointer, or nil for an empty buffer.
func (b *AlignedBuffer[T]) AsPtr() unsafe.Pointer {
	bytes := b.buf.Bytes()
	if len(bytes) == 0 {
		return nil
	}
	return unsafe.Pointer(&bytes[0])
}

func (b *AlignedBuffer[T]) Get(i int) T {
	if i < 0 || i >= b.length {
		panic("array: buffer index out of range")
	}
	return b.slice()[i]
}

func (b *AlignedBuffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.length {
		panic("array: buffer index out of range")
	}
	b.slice()[i] = v
}

// Push appends v, growing by doubling (minimum 1) when out of capacity.
func (b *AlignedBuffer[T]) Push(v T) {
	b.reserve(1)
	b.buf.Resize((b.length + 1) * elemSize[T]())
	b.length++
	b.slice()[b.length-1] = v
}

// ExtendFromSlice appends every element of v.
func (b *AlignedBuffer[T]) ExtendFromSlice(v []T) {
	if len(v) == 0 {
		return
	}
	b.reserve(len(v))
	oldLen := b.length
	b.buf.Resize((oldLen + len(v)) * elemSize[T]())
	b.length = oldLen + len(v)
	copy(b.slice()[oldLen:], v)
}

func (b *AlignedBuffer[T]) reserve(n int) {
	need := b.length + n
	if need <= b.Cap() {
		return
	}
	newCap := need
	if b.Cap() > 0 {
		c := b.Cap()
		for c < need {
			c *= 2
		}
		newCap = c
	}
	if newCap < 1 {
		newCap = 1
	}
	cur := b.length
	b.buf.Resize(newCap * elemSize[T]())
	b.buf.Resize(cur * elemSize[T]())
}

// Resize adjusts the logical length to n elements, filling any newly
// exposed slots with fill (§4.1).
func (b *AlignedBuffer[T]) Resize(n int, fill T) {
	old := b.length
	if n > b.Cap() {
		b.reserve(n - old)
	}
	b.buf.Resize(n * elemSize[T]())
	b.length = n
	if n > old {
		s := b.slice()
		for i := old; i < n; i++ {
			s[i] = fill
		}
	}
}

// Truncate shortens the logical length to n without reallocating.
func (b *AlignedBuffer[T]) Truncate(n int) {
	if n > b.length {
		panic("array: truncate grows the buffer")
	}
	b.buf.Resize(n * elemSize[T]())
	b.length = n
}

func (b *AlignedBuffer[T]) Retain()  { b.buf.Retain() }
func (b *AlignedBuffer[T]) Release() { b.buf.Release() }
