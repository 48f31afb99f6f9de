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

func TestRleDictionarySlicerOutOfRangeDeferred(t *testing.T) {
	dict, err := NewFixedDict([]byte{0xAA, 0xBB}, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// bit width 2, one RLE run of 3 copies of index 3 (out of range)
	data := []byte{2, byte(3<<1 | 0), 3}
	s, err := NewRleDictionarySlicer(data, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		v := s.Next()
		if len(v) == 0 {
			t.Fatalf("expected a placeholder value, got empty")
		}
	}
	if err := s.Result(); !errors.Is(err, ErrLayout) {
		t.Fatalf("expected deferred ErrLayout, got %v", err)
	}
}

func TestRleDictionarySlicerValid(t *testing.T) {
	dict, err := NewFixedDict([]byte{0x01, 0x02, 0x03}, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// bit width 2, RLE run of 2 copies of index 1
	data := []byte{2, byte(2<<1 | 0), 1}
	s, err := NewRleDictionarySlicer(data, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(s.Next(), []byte{0x02}) {
		t.Fatal("wrong first value")
	}
	if !bytes.Equal(s.Next(), []byte{0x02}) {
		t.Fatal("wrong second value")
	}
	if err := s.Result(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
