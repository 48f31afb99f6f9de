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
	"testing"
)

func TestFixedDict(t *testing.T) {
	buf := []byte{0x80, 0x00, 0x00, 0x01}
	d, err := NewFixedDict(buf, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(d.Get(0), []byte{0x80, 0x00}) {
		t.Fatal("wrong entry 0")
	}
	if !bytes.Equal(d.Get(1), []byte{0x00, 0x01}) {
		t.Fatal("wrong entry 1")
	}
	if d.Len() != 2 {
		t.Fatalf("wrong len: %d", d.Len())
	}
}

func TestFixedDictBadLayout(t *testing.T) {
	if _, err := NewFixedDict([]byte{1, 2, 3}, 2, 1); err == nil {
		t.Fatal("expected layout error for mismatched buffer length")
	}
	if _, err := NewFixedDict([]byte{1, 2}, 0, 2); err == nil {
		t.Fatal("expected layout error for zero value size")
	}
}

func TestVarDict(t *testing.T) {
	buf := []byte{
		2, 0, 0, 0, 0x80, 0x00,
		1, 0, 0, 0, 0x05,
	}
	d, err := NewVarDict(buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(d.Get(0), []byte{0x80, 0x00}) {
		t.Fatal("wrong entry 0")
	}
	if !bytes.Equal(d.Get(1), []byte{0x05}) {
		t.Fatal("wrong entry 1")
	}
	if avg := d.AvgKeyLen(); avg != 1.5 {
		t.Fatalf("wrong avg key len: %v", avg)
	}
}

func TestVarDictTruncated(t *testing.T) {
	if _, err := NewVarDict([]byte{5, 0, 0, 0, 1}, 1); err == nil {
		t.Fatal("expected layout error")
	}
}
