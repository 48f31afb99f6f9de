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

import "github.com/SnellerInc/sneller/parquet/rle"

// RleDictionarySlicer resolves an RLE/bit-packed index stream against
// a Dictionary. A dictionary index that falls outside the
// dictionary's range is not fatal immediately: the slicer substitutes
// a zero-filled placeholder of the dictionary's average key width
// truncated to an integer (or a single zero byte, if that truncates
// to zero) so that geometry is
// preserved for the rest of the page, and records the first such
// fault; callers must check Result() after the page is fully
// consumed.
type RleDictionarySlicer struct {
	dict   Dictionary
	rle    *rle.Decoder
	err    error
	badVal []byte
}

// NewRleDictionarySlicer returns a slicer that resolves indices parsed
// from data (an RLE/bit-packed stream prefixed by its own one-byte bit
// width) against dict.
func NewRleDictionarySlicer(data []byte, dict Dictionary) (*RleDictionarySlicer, error) {
	if len(data) < 1 {
		return nil, layoutf("rle dictionary stream missing bit-width prefix")
	}
	bitWidth := uint(data[0])
	placeholderLen := int(dict.AvgKeyLen())
	if placeholderLen <= 0 {
		placeholderLen = 1
	}
	return &RleDictionarySlicer{
		dict:   dict,
		rle:    rle.NewDecoder(data[1:], bitWidth),
		badVal: make([]byte, placeholderLen),
	}, nil
}

func (s *RleDictionarySlicer) next() []byte {
	idx, ok, err := s.rle.Next()
	if err != nil {
		if s.err == nil {
			s.err = layoutf("malformed dictionary index stream: %w", err)
		}
		return s.badVal
	}
	if !ok {
		if s.err == nil {
			s.err = layoutf("dictionary index stream exhausted early")
		}
		return s.badVal
	}
	if int(idx) >= s.dict.Len() {
		if s.err == nil {
			s.err = layoutf("dictionary index %d out of range (len %d)", idx, s.dict.Len())
		}
		return s.badVal
	}
	return s.dict.Get(int(idx))
}

func (s *RleDictionarySlicer) Next() []byte {
	return s.next()
}

// Skip advances n indices. A malformed or exhausted index stream is
// returned immediately; an out-of-range index is deferred to Result,
// as in Next.
func (s *RleDictionarySlicer) Skip(n int) error {
	for i := 0; i < n; i++ {
		idx, ok, err := s.rle.Next()
		if err != nil {
			return layoutf("malformed dictionary index stream: %w", err)
		}
		if !ok {
			return layoutf("dictionary index stream exhausted early")
		}
		if int(idx) >= s.dict.Len() && s.err == nil {
			s.err = layoutf("dictionary index %d out of range (len %d)", idx, s.dict.Len())
		}
	}
	return nil
}

func (s *RleDictionarySlicer) Result() error { return s.err }
