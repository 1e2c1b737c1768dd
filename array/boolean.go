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

// BooleanArray is the §3.3 bit-packed boolean column: values is itself a
// Bitmask (N bits), separate from the optional null mask. Adapted from the
// teacher's BooleanBuilder (array/booleanbuilder.go), with Append/Reserve
// replaced by a single Push that mutates the array in place instead of
// handing off to a NewArray() finalisation step.
type BooleanArray struct {
	masked
	values *Bitmask
}

func NewBooleanArray(mem memory.Allocator) *BooleanArray {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &BooleanArray{masked: newMasked(mem), values: NewBitmask(mem, 0)}
}

// AdoptBooleanArray wraps pre-built packed values and an optional validity
// mask as a BooleanArray without copying (cdata import path, §4.7.2).
func AdoptBooleanArray(values *Bitmask, mask *Bitmask, nullCount int) *BooleanArray {
	return &BooleanArray{masked: maskedFromParts(nil, values.Len(), mask, nullCount), values: values}
}

func (a *BooleanArray) Push(v bool) {
	a.values.Push(v)
	a.pushValidity(true)
}

func (a *BooleanArray) PushNull() {
	a.values.Push(false)
	a.pushValidity(false)
}

func (a *BooleanArray) Get(i int) (bool, bool) {
	if a.IsNull(i) {
		return false, false
	}
	return a.values.Get(i), true
}

func (a *BooleanArray) Set(i int, v bool) {
	a.values.Set(i, v)
	a.setValidity(i, true)
}

func (a *BooleanArray) SetNull(i int) { a.setValidity(i, false) }

// Values exposes the packed bit-values buffer (used directly by the cdata
// export path and by S4's "packs to a single byte 0x05" boundary case).
func (a *BooleanArray) Values() *Bitmask { return a.values }

func (a *BooleanArray) Retain() { a.retain() }
func (a *BooleanArray) Release() {
	if a.release() {
		a.values.Release()
	}
}
