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

// Package parquet decodes Parquet decimal column chunks into the
// fixed-width little-endian layout used by the column store.
//
// It covers the PLAIN and RLE_DICTIONARY encodings for both
// FIXED_LEN_BYTE_ARRAY and BYTE_ARRAY physical types, with optional
// definition levels and an optional row filter. It does not parse
// Parquet containers, decompress pages, or interpret Thrift metadata;
// callers are expected to have already materialized a page's raw
// value bytes and definition levels.
package parquet

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a value or configuration cannot be
// represented in the target layout: an out-of-range source length, an
// unknown target width, or a value that does not fit the target width
// (the bytes being dropped are not a pure sign extension of the
// retained bytes).
var ErrUnsupported = errors.New("parquet: unsupported decimal conversion")

// ErrLayout is returned when a dictionary or encoded value stream does
// not have the shape it claims to have: a dictionary buffer whose
// length is not a multiple of its value width, a dictionary index that
// falls outside the dictionary, or a malformed RLE/bit-packed stream.
var ErrLayout = errors.New("parquet: malformed column layout")

// ErrCapacity is returned for a degenerate buffer reservation request.
var ErrCapacity = errors.New("parquet: invalid buffer capacity")

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnsupported)...)
}

func layoutf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrLayout)...)
}

func capacityf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrCapacity)...)
}
