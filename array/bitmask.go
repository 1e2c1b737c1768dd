// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"github.com/pbower/minarrow/bitutil"
	"github.com/pbower/minarrow/memory"
)

// Bitmask is the packed bit-vector of §3.2: N logical bits backed by
// ceil(N/8) bytes in a 64-byte-aligned memory.Buffer, LSB-first within each
// byte. A set bit means valid (§6.2). This is both the validity bitmap
// embedded in every masked inner array and the storage for BooleanArray's
// values buffer — the two uses share this type because the wire layout is
// identical (§4.3, row "BooleanArray").
//
// appendBoolsRunLength/appendNValid below carry over the teacher's
// byte-at-a-time bitmap-append algorithm from array/builder.go, generalised
// from "the validity bitmap of a Builder" to "any Bitmask" so BooleanArray's
// values buffer and every inner array's null mask share one implementation.
type Bitmask struct {
	buf    *memory.Buffer
	length int // logical bit length
}

// NewBitmask allocates a zeroed Bitmask of n bits.
func NewBitmask(mem memory.Allocator, n int) *Bitmask {
	m := &Bitmask{buf: memory.NewResizableBuffer(mem)}
	m.buf.Resize(bitutil.BytesForBits(n))
	memory.Set(m.buf.Bytes(), 0)
	m.length = n
	return m
}

// NewBitmaskFromBytes wraps an existing packed byte slice (e.g. a bitmap
// adopted zero-copy across the C Data Interface) as a Bitmask of n bits.
func NewBitmaskFromBytes(bytes []byte, n int) *Bitmask {
	return &Bitmask{buf: memory.NewBufferBytes(bytes), length: n}
}

func (m *Bitmask) Len() int { return m.length }

// AsBytes exposes the packed byte-slice backing, sized to ceil(len/8).
func (m *Bitmask) AsBytes() []byte { return m.buf.Bytes()[:bitutil.BytesForBits(m.length)] }

// Get reports whether bit i is set.
func (m *Bitmask) Get(i int) bool {
	if i < 0 || i >= m.length {
		panic("array: bitmask index out of range")
	}
	return bitutil.BitIsSet(m.buf.Bytes(), i)
}

// Set sets bit i to v.
func (m *Bitmask) Set(i int, v bool) {
	if i < 0 || i >= m.length {
		panic("array: bitmask index out of range")
	}
	bitutil.SetBitTo(m.buf.Bytes(), i, v)
}

// SetAll sets every bit in [0, len) to v.
func (m *Bitmask) SetAll(v bool) {
	fill := byte(0x00)
	if v {
		fill = 0xff
	}
	memory.Set(m.buf.Bytes()[:bitutil.BytesForBits(m.length)], fill)
}

// CountOnes counts set bits over [0, len), never touching the indeterminate
// trailing bits of the final byte (§4.2).
func (m *Bitmask) CountOnes() int {
	return bitutil.CountSetBits(m.buf.Bytes(), 0, m.length)
}

// Push appends one bit, growing the backing buffer as needed.
func (m *Bitmask) Push(v bool) {
	m.reserve(1)
	bitutil.SetBitTo(m.buf.Bytes(), m.length, v)
	m.length++
}

// reserve ensures capacity for appending n more bits, doubling per §4.1.
func (m *Bitmask) reserve(n int) {
	needed := bitutil.BytesForBits(m.length + n)
	if needed <= m.buf.Cap() {
		if needed > m.buf.Len() {
			oldLen := m.buf.Len()
			m.buf.Resize(needed)
			memory.Set(m.buf.Bytes()[oldLen:], 0)
		}
		return
	}
	newCap := bitutil.BytesForBits(bitutil.NextPowerOf2(m.length + n))
	oldLen := m.buf.Len()
	m.buf.Resize(newCap)
	memory.Set(m.buf.Bytes()[oldLen:], 0)
}

// appendBoolsRunLength appends len(valid) bits (or, if valid is empty, n
// bits all set to true — the "no nulls in this chunk" fast path used when a
// caller passes no validity slice at all).
func (m *Bitmask) appendBoolsRunLength(valid []bool, n int) {
	if len(valid) == 0 {
		m.appendNValid(n)
		return
	}
	m.reserve(len(valid))
	bytes := m.buf.Bytes()
	byteOffset := m.length / 8
	bitOffset := byte(m.length % 8)
	bitSet := bytes[byteOffset]
	for _, v := range valid {
		if bitOffset == 8 {
			bitOffset = 0
			bytes[byteOffset] = bitSet
			byteOffset++
			bitSet = bytes[byteOffset]
		}
		if v {
			bitSet |= bitutil.BitMask[bitOffset]
		} else {
			bitSet &= bitutil.FlippedBitMask[bitOffset]
		}
		bitOffset++
	}
	if bitOffset != 0 {
		bytes[byteOffset] = bitSet
	}
	m.length += len(valid)
}

// appendNValid appends n bits all set to true.
func (m *Bitmask) appendNValid(n int) {
	m.reserve(n)
	bytes := m.buf.Bytes()
	for i := m.length; i < m.length+n; i++ {
		bitutil.SetBit(bytes, i)
	}
	m.length += n
}

// Retain/Release thread the Bitmask's backing Buffer refcount through, so a
// Bitmask shared by a sliced Array costs one atomic increment, not a copy.
func (m *Bitmask) Retain()  { m.buf.Retain() }
func (m *Bitmask) Release() { m.buf.Release() }
