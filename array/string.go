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

import "github.com/pbower/minarrow/memory"

// StringArray[O] is the §3.3/§4.3.1 variable-length UTF-8 column: offsets
// (O-typed, length N+1, monotonic non-decreasing, offsets[0]==0,
// offsets[N]==len(bytes)) over a flat UTF-8 bytes buffer. O is u32 (Utf8)
// or u64 (LargeUtf8). Adapted from the teacher's BinaryBuilder
// (array/binarybuilder.go: appendNextOffset/offsets/values split), with the
// builder/array split collapsed into a single mutable array matching this
// library's push/get/set contract (§4.3).
type StringArray[O Offset] struct {
	masked
	offsets *AlignedBuffer[O]
	data    *AlignedBuffer[uint8]
}

func NewStringArray[O Offset](mem memory.Allocator) *StringArray[O] {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	s := &StringArray[O]{
		masked:  newMasked(mem),
		offsets: NewAlignedBuffer[O](mem),
		data:    NewAlignedBuffer[uint8](mem),
	}
	s.offsets.Push(0) // offsets[0] == 0, invariant of §4.3.1
	return s
}

// AdoptStringArray wraps pre-built offsets/data buffers and an optional
// validity mask as a StringArray without copying the data buffer (the
// offsets buffer is still expected to already be this library's own
// AlignedBuffer, since the cdata import path copies offsets rather than
// adopting them, §4.7.2).
func AdoptStringArray[O Offset](offsets *AlignedBuffer[O], data *AlignedBuffer[uint8], mask *Bitmask, nullCount int) *StringArray[O] {
	return &StringArray[O]{
		masked:  maskedFromParts(nil, offsets.Len()-1, mask, nullCount),
		offsets: offsets,
		data:    data,
	}
}

// appendNextOffset records the current end-of-data as the new element's
// trailing offset, exactly mirroring BinaryBuilder.appendNextOffset.
func (a *StringArray[O]) appendNextOffset() {
	a.offsets.Push(O(a.data.Len()))
}

// Push appends a valid UTF-8 string value.
func (a *StringArray[O]) Push(v string) {
	a.data.ExtendFromSlice(stringToBytes(v))
	a.appendNextOffset()
	a.pushValidity(true)
}

// PushNull appends a null: the previous offset is duplicated, yielding a
// zero-length logical slot with no new bytes written (§4.3).
func (a *StringArray[O]) PushNull() {
	a.appendNextOffset()
	a.pushValidity(false)
}

// Get returns (value, true), or ("", false) if the position is null.
func (a *StringArray[O]) Get(i int) (string, bool) {
	if a.IsNull(i) {
		return "", false
	}
	start := a.offsets.Get(i)
	end := a.offsets.Get(i + 1)
	return string(a.data.AsSlice()[start:end]), true
}

// Set overwrites position i with v, rebuilding the bytes buffer and
// shifting every later offset by the length delta. Each call copies the
// whole bytes buffer into a fresh one and rewrites every offset after
// position i: StringArray's variable-width layout has no
// cheaper in-place update when the new value's length differs from the
// old one.
func (a *StringArray[O]) Set(i int, v string) {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	start := int(a.offsets.Get(i))
	end := int(a.offsets.Get(i + 1))
	old := a.data.AsSlice()
	newBytes := stringToBytes(v)
	rebuilt := make([]byte, 0, len(old)-(end-start)+len(newBytes))
	rebuilt = append(rebuilt, old[:start]...)
	rebuilt = append(rebuilt, newBytes...)
	rebuilt = append(rebuilt, old[end:]...)

	delta := len(newBytes) - (end - start)
	data := NewAlignedBuffer[uint8](a.mem)
	data.ExtendFromSlice(rebuilt)
	a.data = data

	for j := i + 1; j <= a.length; j++ {
		a.offsets.Set(j, O(int(a.offsets.Get(j))+delta))
	}
	a.setValidity(i, true)
}

// SetNull marks position i null. Per the common contract this does not
// alter byte storage; the logical slice at i still decodes to whatever
// bytes previously occupied [offsets[i], offsets[i+1]) but is masked out.
func (a *StringArray[O]) SetNull(i int) { a.setValidity(i, false) }

// Offsets exposes the raw offsets buffer (cdata export, §4.7.1).
func (a *StringArray[O]) Offsets() *AlignedBuffer[O] { return a.offsets }

// Data exposes the raw UTF-8 bytes buffer (cdata export, §4.7.1).
func (a *StringArray[O]) Data() *AlignedBuffer[uint8] { return a.data }

func (a *StringArray[O]) Retain() { a.retain() }
func (a *StringArray[O]) Release() {
	if a.release() {
		a.offsets.Release()
		a.data.Release()
	}
}

func stringToBytes(s string) []byte {
	b := make([]byte, len(s))
	copy(b, s)
	return b
}
