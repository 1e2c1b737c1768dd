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
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Table is the §3.7 row-group container: an ordered sequence of
// FieldArrays sharing a common row count, plus a name. Adapted from the
// teacher's simpleTable (vendored apache/arrow/go/v7/arrow/array/table.go
// in the retrieval pack): same rows/cols shape, minus the Schema/Chunked
// machinery this spec's Non-goals exclude (chunked "super" containers).
type Table struct {
	name    string
	columns []FieldArray
	rows    int
}

// NewTable validates that every column shares the same row count (§4.5);
// empty tables (no columns) have row count 0. Each column's own
// construction-time invariants were already enforced by NewFieldArray, so
// validation here is purely cross-column — embarrassingly parallel, and
// run concurrently via errgroup for wide tables.
func NewTable(name string, columns []FieldArray) *Table {
	if len(columns) == 0 {
		return &Table{name: name}
	}

	rows := columns[0].Len()
	var g errgroup.Group
	for idx := range columns {
		idx := idx
		g.Go(func() error {
			if columns[idx].Len() != rows {
				return fmt.Errorf("array: column %q has %d rows, want %d", columns[idx].Field.Name, columns[idx].Len(), rows)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err) // cross-column length mismatch is a construction-time fatal precondition, §4.5
	}

	return &Table{name: name, columns: append([]FieldArray(nil), columns...), rows: rows}
}

func (t *Table) Name() string  { return t.name }
func (t *Table) Len() int      { return t.rows }
func (t *Table) Width() int    { return len(t.columns) }
func (t *Table) Columns() []FieldArray { return t.columns }

// Column returns the first column named name, and whether one was found
// (duplicate-name ties broken "first wins", §4.6/§9).
func (t *Table) Column(name string) (FieldArray, bool) {
	for _, c := range t.columns {
		if c.Field.Name == name {
			return c, true
		}
	}
	return FieldArray{}, false
}

// Retain bumps every column's shared-ownership refcount; Release drops it.
// A Table owns its FieldArrays (§3.9): these propagate to the wrapped
// Arrays, not to any view over the table.
func (t *Table) Retain() {
	for _, c := range t.columns {
		c.Data.Retain()
	}
}

func (t *Table) Release() {
	for _, c := range t.columns {
		c.Data.Release()
	}
}
