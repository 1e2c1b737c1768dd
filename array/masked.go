package array

import (
	"sync/atomic"

	"github.com/pbower/minarrow/internal/debug"
	"github.com/pbower/minarrow/memory"
)

// masked is the embedded common contract of §4.3: refcounted length and
// null-mask bookkeeping shared by every concrete inner array. A nil mask
// means "no nulls have ever been pushed" (null_count == 0, §4.3); the mask
// is allocated lazily on first push_null/set_null so an all-valid column
// never pays for a validity bitmap it does not need.
type masked struct {
	refCount  int64
	mem       memory.Allocator
	mask      *Bitmask
	nullCount int
	length    int
}

func newMasked(mem memory.Allocator) masked {
	return masked{refCount: 1, mem: mem}
}

// maskedFromParts builds a masked around already-materialised storage — the
// cdata import path (§4.7.2), which adopts or copies buffers wholesale
// rather than appending push-by-push through an Allocator.
func maskedFromParts(mem memory.Allocator, length int, mask *Bitmask, nullCount int) masked {
	return masked{refCount: 1, mem: mem, mask: mask, nullCount: nullCount, length: length}
}

func (m *masked) Len() int         { return m.length }
func (m *masked) NullCount() int   { return m.nullCount }
func (m *masked) IsNull(i int) bool {
	if i < 0 || i >= m.length {
		panic("array: index out of range")
	}
	if m.mask == nil {
		return false
	}
	return !m.mask.Get(i)
}

// NullMask returns the validity bitmap, or nil if the array has no nulls.
func (m *masked) NullMask() *Bitmask { return m.mask }

// ensureMask materialises the validity bitmap, backfilling it as "all valid
// so far" — called the first time a null is pushed or set.
func (m *masked) ensureMask() *Bitmask {
	if m.mask == nil {
		m.mask = NewBitmask(m.mem, 0)
		m.mask.appendNValid(m.length)
	}
	return m.mask
}

// pushValidity appends one bit of validity tracking in step with a value
// push. Only materialises the mask when the first `false` arrives, mirroring
// the teacher's unsafeAppendBoolToBitmap optimisation of skipping bitmap
// writes entirely while every element seen so far is valid.
func (m *masked) pushValidity(valid bool) {
	if m.mask == nil {
		if valid {
			m.length++
			return
		}
		m.ensureMask()
	}
	m.mask.Push(valid)
	m.length++
	if !valid {
		m.nullCount++
	}
}

// setValidity flips validity at i, which must already be within range.
func (m *masked) setValidity(i int, valid bool) {
	if i < 0 || i >= m.length {
		panic("array: index out of range")
	}
	wasValid := m.mask == nil || m.mask.Get(i)
	if valid == wasValid {
		return
	}
	m.ensureMask().Set(i, valid)
	if valid {
		m.nullCount--
	} else {
		m.nullCount++
	}
}

func (m *masked) retain() { atomic.AddInt64(&m.refCount, 1) }

// release decrements the refcount and reports whether this was the last
// reference (caller then frees its own value buffers).
func (m *masked) release() bool {
	debug.Assert(atomic.LoadInt64(&m.refCount) > 0, "array: too many releases")
	if atomic.AddInt64(&m.refCount, -1) == 0 {
		if m.mask != nil {
			m.mask.Release()
		}
		return true
	}
	return false
}
