// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package parquet

import "golang.org/x/exp/slices"

// Encoding identifies how a data page's values are laid out.
type Encoding int

const (
	// Plain is a contiguous stream of raw values (fixed-width or
	// length-prefixed, depending on the physical type).
	Plain Encoding = iota
	// RLEDictionary is an RLE/bit-packed stream of dictionary
	// indices; the actual values live in a companion DictPage.
	RLEDictionary
)

// DataPage describes one data page's worth of a column chunk.
type DataPage struct {
	// Values holds the page's raw value bytes (Plain) or its
	// RLE/bit-packed index stream (RLEDictionary).
	Values []byte
	// DefLevels holds one entry per logical row in the page; a
	// zero (or below max, for this single-level schema) entry
	// marks a null row. A nil slice means the page has no nulls
	// and every row occupies a slot in Values.
	DefLevels []uint8
	// MaxDefLevel is the definition level that marks a present
	// (non-null) row; any lower level marks a null.
	MaxDefLevel uint8
	// ValueCount is the number of actual (non-null) values present
	// in Values.
	ValueCount int
	// RowCount is the number of logical rows this page covers. It
	// equals len(DefLevels) when DefLevels is non-nil, and
	// ValueCount otherwise.
	RowCount int
	// Encoding selects how Values is interpreted.
	Encoding Encoding
}

// DictPage describes a dictionary page backing an RLEDictionary data
// page.
type DictPage struct {
	Values     []byte
	ValueCount int
}

// ColumnChunkBuffers is the append-only destination for decoded
// values. Data's length is always a multiple of the sink's target
// width.
type ColumnChunkBuffers struct {
	Data []byte
}

// reserve grows Data's capacity (not its length) by n bytes, mirroring
// the reserve-then-append-then-commit discipline used by this
// codebase's other streaming encoders.
func (b *ColumnChunkBuffers) reserve(n int) error {
	if n < 0 {
		return capacityf("negative reservation %d", n)
	}
	if n == 0 {
		return nil
	}
	cur := len(b.Data)
	b.Data = slices.Grow(b.Data, n)
	b.Data = b.Data[:cur]
	return nil
}

// Reserve pre-allocates capacity for rows additional values of width
// bytes each. It never changes Data's length.
func (b *ColumnChunkBuffers) Reserve(rows, width int) error {
	if rows < 0 || width <= 0 {
		return capacityf("invalid reservation rows=%d width=%d", rows, width)
	}
	if rows > int(^uint(0)>>1)/width {
		return capacityf("reservation rows=%d width=%d overflows int", rows, width)
	}
	return b.reserve(rows * width)
}

// appendN appends n copies of val (len(val) bytes each) to Data.
func (b *ColumnChunkBuffers) appendN(val []byte, n int) {
	for i := 0; i < n; i++ {
		b.Data = append(b.Data, val...)
	}
}
