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

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeFixedDecimalUnfiltered(t *testing.T) {
	page := &DataPage{
		Values:     []byte{0x00, 0x00, 0x00, 0x00, 0x7F, 0xFF, 0xFF, 0xFF},
		ValueCount: 1,
		RowCount:   1,
		Encoding:   Plain,
	}
	buf := &ColumnChunkBuffers{}
	err := DecodeFixedDecimal(page, buf, 8, 0, 1, Decimal32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buf.Data) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(buf.Data))
	}
}

func TestDecodeFixedDecimalInvalidSrcLen(t *testing.T) {
	page := &DataPage{Values: []byte{}, ValueCount: 0, RowCount: 0}
	buf := &ColumnChunkBuffers{}
	if err := DecodeFixedDecimal(page, buf, 0, 0, 0, Decimal32); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := DecodeFixedDecimal(page, buf, 33, 0, 0, Decimal32); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDecodeFixedDecimalUnknownTag(t *testing.T) {
	page := &DataPage{Values: []byte{1}, ValueCount: 1, RowCount: 1}
	buf := &ColumnChunkBuffers{}
	if err := DecodeFixedDecimal(page, buf, 1, 0, 1, TargetTag(99)); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if len(buf.Data) != 0 {
		t.Fatal("must not mutate buffer before validating the target tag")
	}
}

func TestDecodeFixedDecimalDictRoundTrip(t *testing.T) {
	dictBuf := []byte{0x80, 0x00, 0x00, 0x01}
	dictPage := &DictPage{Values: dictBuf, ValueCount: 2}
	// bit width 1, one bit-packed group: indices 0,1,0,...
	idxBits := byte(0b00000010)
	page := &DataPage{
		Values:     append([]byte{1}, byte(1<<1|1), idxBits),
		ValueCount: 3,
		RowCount:   3,
		Encoding:   RLEDictionary,
	}
	buf := &ColumnChunkBuffers{}
	if err := DecodeFixedDecimalDict(page, dictPage, buf, 2, 0, 3, Decimal16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x00, 0x80, 0x01, 0x00, 0x00, 0x80}
	if !bytes.Equal(buf.Data, want) {
		t.Fatalf("got % x want % x", buf.Data, want)
	}
}

func TestDecodeByteArrayDecimalUnfiltered(t *testing.T) {
	values := []byte{1, 0, 0, 0, 0x05}
	page := &DataPage{Values: values, ValueCount: 1, RowCount: 1, Encoding: Plain}
	buf := &ColumnChunkBuffers{}
	if err := DecodeByteArrayDecimal(page, buf, 0, 1, Decimal16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x05, 0x00}
	if !bytes.Equal(buf.Data, want) {
		t.Fatalf("got % x want % x", buf.Data, want)
	}
}

func TestDecodeByteArrayDecimalFilteredFillNulls(t *testing.T) {
	// four single-byte values: 10, 20, 30, 40
	values := []byte{
		1, 0, 0, 0, 10,
		1, 0, 0, 0, 20,
		1, 0, 0, 0, 30,
		1, 0, 0, 0, 40,
	}
	page := &DataPage{Values: values, ValueCount: 4, RowCount: 4, Encoding: Plain}
	buf := &ColumnChunkBuffers{}
	filter := []int64{1, 3}
	if err := DecodeByteArrayDecimalFiltered(page, buf, 0, 0, 0, 4, filter, true, Decimal8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{Decimal8Null[0], 20, Decimal8Null[0], 40}
	if !bytes.Equal(buf.Data, want) {
		t.Fatalf("got % x want % x", buf.Data, want)
	}
}
