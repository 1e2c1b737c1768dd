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

// Package arrow holds the closed family of logical types (Field.dtype, §3.5
// of the design) and the schema-level Field/Metadata types shared by the
// array, table and cdata packages.
package arrow

// Type is the discriminant of the closed ArrowType tagged union.
type Type int

const (
	NULL Type = iota
	BOOL
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	STRING
	LARGE_STRING
	DICTIONARY
	DATE32
	DATE64
	TIME32
	TIME64
	TIMESTAMP
	DURATION
)

// DataType is the closed tagged variant enumerating every supported Arrow
// logical type. Implementations are pointer types (*Int32Type, ...); the
// cdata format mapping compares them by ID and unit fields, not by pointer
// identity.
type DataType interface {
	ID() Type
	Name() string
	String() string
}

// fixed-width primitive types. 每个类型只是一个标签，没有额外字段。
type (
	BooleanType struct{}
	Int8Type    struct{}
	Int16Type   struct{}
	Int32Type   struct{}
	Int64Type   struct{}
	Uint8Type   struct{}
	Uint16Type  struct{}
	Uint32Type  struct{}
	Uint64Type  struct{}
	Float32Type struct{}
	Float64Type struct{}
)

func (*BooleanType) ID() Type       { return BOOL }
func (*BooleanType) Name() string   { return "bool" }
func (*BooleanType) String() string { return "bool" }

func (*Int8Type) ID() Type       { return INT8 }
func (*Int8Type) Name() string   { return "int8" }
func (*Int8Type) String() string { return "int8" }

func (*Int16Type) ID() Type       { return INT16 }
func (*Int16Type) Name() string   { return "int16" }
func (*Int16Type) String() string { return "int16" }

func (*Int32Type) ID() Type       { return INT32 }
func (*Int32Type) Name() string   { return "int32" }
func (*Int32Type) String() string { return "int32" }

func (*Int64Type) ID() Type       { return INT64 }
func (*Int64Type) Name() string   { return "int64" }
func (*Int64Type) String() string { return "int64" }

func (*Uint8Type) ID() Type       { return UINT8 }
func (*Uint8Type) Name() string   { return "uint8" }
func (*Uint8Type) String() string { return "uint8" }

func (*Uint16Type) ID() Type       { return UINT16 }
func (*Uint16Type) Name() string   { return "uint16" }
func (*Uint16Type) String() string { return "uint16" }

func (*Uint32Type) ID() Type       { return UINT32 }
func (*Uint32Type) Name() string   { return "uint32" }
func (*Uint32Type) String() string { return "uint32" }

func (*Uint64Type) ID() Type       { return UINT64 }
func (*Uint64Type) Name() string   { return "uint64" }
func (*Uint64Type) String() string { return "uint64" }

func (*Float32Type) ID() Type       { return FLOAT32 }
func (*Float32Type) Name() string   { return "float32" }
func (*Float32Type) String() string { return "float32" }

func (*Float64Type) ID() Type       { return FLOAT64 }
func (*Float64Type) Name() string   { return "float64" }
func (*Float64Type) String() string { return "float64" }

// Shared singleton instances, mirroring the teacher's arrow.FixedWidthTypes
// convention of pre-allocated stateless type tags.
var (
	Boolean *BooleanType = &BooleanType{}
	Int8    *Int8Type    = &Int8Type{}
	Int16   *Int16Type   = &Int16Type{}
	Int32   *Int32Type   = &Int32Type{}
	Int64   *Int64Type   = &Int64Type{}
	Uint8   *Uint8Type   = &Uint8Type{}
	Uint16  *Uint16Type  = &Uint16Type{}
	Uint32  *Uint32Type  = &Uint32Type{}
	Uint64  *Uint64Type  = &Uint64Type{}
	Float32 *Float32Type = &Float32Type{}
	Float64 *Float64Type = &Float64Type{}

	_ DataType = Boolean
	_ DataType = Int8
	_ DataType = Int16
	_ DataType = Int32
	_ DataType = Int64
	_ DataType = Uint8
	_ DataType = Uint16
	_ DataType = Uint32
	_ DataType = Uint64
	_ DataType = Float32
	_ DataType = Float64
)
