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

import "encoding/binary"

// Slicer produces a lazy, forward-only sequence of value byte slices
// over a page's value stream.
type Slicer interface {
	// Next returns the next value. The returned slice is only
	// valid until the following call to Next or Skip.
	Next() []byte
	// Skip advances n values without materializing them.
	Skip(n int) error
	// Result surfaces any error deferred during iteration (see
	// RleDictionarySlicer). It should be called once after the
	// slicer has been fully consumed.
	Result() error
}

// FixedSlicer reads fixed-width values from a contiguous buffer.
type FixedSlicer struct {
	buf   []byte
	width int
	pos   int
}

// NewFixedSlicer returns a slicer over valueCount values of width
// bytes each, read from buf.
func NewFixedSlicer(buf []byte, width, valueCount int) (*FixedSlicer, error) {
	if width <= 0 {
		return nil, layoutf("invalid fixed value width %d", width)
	}
	if len(buf) < width*valueCount {
		return nil, layoutf("fixed value buffer too short: have %d bytes, need %d", len(buf), width*valueCount)
	}
	return &FixedSlicer{buf: buf, width: width}, nil
}

func (s *FixedSlicer) Next() []byte {
	v := s.buf[s.pos : s.pos+s.width]
	s.pos += s.width
	return v
}

func (s *FixedSlicer) Skip(n int) error {
	s.pos += n * s.width
	return nil
}

func (s *FixedSlicer) Result() error { return nil }

// VarSlicer reads length-prefixed values (4-byte little-endian
// unsigned length, then that many bytes) from a contiguous buffer.
type VarSlicer struct {
	buf []byte
	pos int
	err error
}

// NewVarSlicer returns a slicer over buf, which holds a sequence of
// length-prefixed values.
func NewVarSlicer(buf []byte) *VarSlicer {
	return &VarSlicer{buf: buf}
}

func (s *VarSlicer) readLen() (int, error) {
	if s.pos+4 > len(s.buf) {
		return 0, layoutf("truncated length prefix at offset %d", s.pos)
	}
	n := int(binary.LittleEndian.Uint32(s.buf[s.pos:]))
	if n < 0 || s.pos+4+n > len(s.buf) {
		return 0, layoutf("value length %d at offset %d exceeds buffer", n, s.pos)
	}
	return n, nil
}

func (s *VarSlicer) Next() []byte {
	n, err := s.readLen()
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		s.pos = len(s.buf)
		return nil
	}
	v := s.buf[s.pos+4 : s.pos+4+n]
	s.pos += 4 + n
	return v
}

func (s *VarSlicer) Skip(n int) error {
	for i := 0; i < n; i++ {
		l, err := s.readLen()
		if err != nil {
			return err
		}
		s.pos += 4 + l
	}
	return nil
}

func (s *VarSlicer) Result() error { return s.err }
