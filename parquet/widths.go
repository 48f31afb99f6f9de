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

// TargetTag identifies one of the column store's six native decimal
// widths.
type TargetTag int

const (
	Decimal8 TargetTag = iota
	Decimal16
	Decimal32
	Decimal64
	Decimal128
	Decimal256
)

// targetWidth returns the byte width of t, or 0 if t is not a
// recognized tag.
func targetWidth(t TargetTag) int {
	switch t {
	case Decimal8:
		return 1
	case Decimal16:
		return 2
	case Decimal32:
		return 4
	case Decimal64:
		return 8
	case Decimal128:
		return 16
	case Decimal256:
		return 32
	default:
		return 0
	}
}

// Null sentinels: the minimum representable signed value for each
// width, stored in the same little-endian (word-swapped, for 16/32)
// layout that ConvertDecimal produces. ConvertDecimal does not treat
// these patterns specially: a source value equal to the minimum
// representable value of the target width (for example 80 00 into a
// 2-byte target) converts to the same bytes as the sentinel.
var (
	Decimal8Null   = []byte{0x80}
	Decimal16Null  = []byte{0x00, 0x80}
	Decimal32Null  = []byte{0x00, 0x00, 0x00, 0x80}
	Decimal64Null  = []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}
	Decimal128Null = []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80,
	}
	Decimal256Null = []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80,
	}
)

func nullValue(t TargetTag) []byte {
	switch t {
	case Decimal8:
		return Decimal8Null
	case Decimal16:
		return Decimal16Null
	case Decimal32:
		return Decimal32Null
	case Decimal64:
		return Decimal64Null
	case Decimal128:
		return Decimal128Null
	case Decimal256:
		return Decimal256Null
	default:
		return nil
	}
}
