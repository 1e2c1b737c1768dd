package memory

import (
	"sync/atomic"

	"github.com/pbower/minarrow/bitutil"
)

// Buffer is a refcounted, resizable byte buffer allocated through an
// Allocator (so every growth path stays 64-byte aligned, §3.1's invariant).
// Mirrors the teacher's memory.Buffer call surface (NewResizableBuffer,
// Resize, Bytes, Buf, Len, Retain, Release) that array/builder.go already
// depends on; the refcount is what the cdata holder (package cdata) reuses
// to keep exported buffers alive past a Go GC cycle.
type Buffer struct {
	refCount int64
	mem      Allocator
	buf      []byte
	length   int // logical length in bytes; buf may be larger (capacity)
}

// NewResizableBuffer returns a zero-length Buffer backed by mem.
func NewResizableBuffer(mem Allocator) *Buffer {
	return &Buffer{refCount: 1, mem: mem}
}

// NewBufferBytes wraps an existing byte slice as a Buffer with refcount 1 and
// no Allocator. Used by the cdata import path to adopt a foreign buffer
// without copying (§4.7.2). Growing it past the slice's capacity reallocates
// through DefaultAllocator and copies, leaving the wrapped slice untouched.
func NewBufferBytes(b []byte) *Buffer {
	return &Buffer{refCount: 1, buf: b, length: len(b)}
}

// Retain increases the reference count by 1. Safe for concurrent callers
// (§5: "release may be called from any thread").
func (b *Buffer) Retain() {
	atomic.AddInt64(&b.refCount, 1)
}

// Release decreases the reference count by 1, freeing the backing storage
// via the Allocator when it reaches zero. Calling Release on a buffer with
// no Allocator (an adopted foreign buffer) simply drops the Go reference;
// any foreign release hook is invoked by the holder that owns it, not here.
func (b *Buffer) Release() {
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.mem != nil && b.buf != nil {
			b.mem.Free(b.buf)
		}
		b.buf = nil
	}
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int { return b.length }

// Cap returns the backing capacity in bytes.
func (b *Buffer) Cap() int { return len(b.buf) }

// Bytes returns the logical (length-bounded) byte slice.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf[:b.length]
}

// Buf returns the same length-bounded slice as Bytes; it is kept as a
// distinct accessor name for parity with the teacher's Buffer.Buf().
func (b *Buffer) Buf() []byte { return b.Bytes() }

// Resize grows or shrinks the buffer to n bytes, reallocating through the
// Allocator (and therefore preserving 64-byte alignment) when it grows past
// capacity. Shrinking never reallocates.
func (b *Buffer) Resize(n int) {
	if n == b.length {
		return
	}
	if n < b.length {
		b.length = n
		return
	}
	if n > cap(b.buf) {
		newCap := bitutil.NextPowerOf2(n)
		if b.mem == nil {
			b.mem = DefaultAllocator
		}
		var newBuf []byte
		if b.buf == nil {
			newBuf = b.mem.Allocate(newCap)
		} else {
			newBuf = b.mem.Reallocate(newCap, b.buf)
		}
		b.buf = newBuf[:newCap]
	}
	b.length = n
}

// Set fills buf with v — a free function (not a Buffer method) matching the
// teacher's package-level memory.Set helper used throughout builder.go to
// zero freshly-grown validity bitmaps.
func Set(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}
