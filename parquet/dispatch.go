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

// newFixedSink picks the cheapest sink for a fixed-width source of
// srcLen bytes landing in a target of width bytes: a plain byte
// reversal or word-swap when the widths already match, falling back
// to the general sign-extending converter otherwise.
func newFixedSink(buf *ColumnChunkBuffers, slicer Slicer, srcLen, width int, null []byte) Sink {
	if srcLen == width {
		if width <= 8 {
			return newReverseSink(buf, slicer, width, null)
		}
		return newWordSwapSink(buf, slicer, width, null)
	}
	return newSignExtendSink(buf, slicer, width, null)
}

func resolveWidth(tag TargetTag) (int, []byte, error) {
	n := targetWidth(tag)
	if n == 0 {
		return 0, nil, unsupportedf("unknown target tag %d", tag)
	}
	return n, nullValue(tag), nil
}

// DecodeFixedDecimal decodes a PLAIN-encoded FIXED_LEN_BYTE_ARRAY
// decimal data page (no row filter).
func DecodeFixedDecimal(page *DataPage, buf *ColumnChunkBuffers, srcLen int, rowLo, rowHi int, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	if srcLen < 1 || srcLen > 32 {
		return unsupportedf("invalid fixed decimal source length %d", srcLen)
	}
	slicer, err := NewFixedSlicer(page.Values, srcLen, page.ValueCount)
	if err != nil {
		return err
	}
	sink := newFixedSink(buf, slicer, srcLen, width, null)
	return DecodePage0(page, rowLo, rowHi, sink)
}

// DecodeFixedDecimalDict decodes an RLE_DICTIONARY-encoded
// FIXED_LEN_BYTE_ARRAY decimal data page (no row filter).
func DecodeFixedDecimalDict(page *DataPage, dictPage *DictPage, buf *ColumnChunkBuffers, srcLen int, rowLo, rowHi int, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	if srcLen < 1 || srcLen > 32 {
		return unsupportedf("invalid fixed decimal source length %d", srcLen)
	}
	dict, err := NewFixedDict(dictPage.Values, srcLen, dictPage.ValueCount)
	if err != nil {
		return err
	}
	slicer, err := NewRleDictionarySlicer(page.Values, dict)
	if err != nil {
		return err
	}
	sink := newFixedSink(buf, slicer, srcLen, width, null)
	return DecodePage0(page, rowLo, rowHi, sink)
}

// DecodeFixedDecimalFiltered decodes a PLAIN-encoded
// FIXED_LEN_BYTE_ARRAY decimal data page restricted to rowsFilter.
func DecodeFixedDecimalFiltered(page *DataPage, buf *ColumnChunkBuffers, srcLen int, pageRowStart, rowGroupLo, rowLo, rowHi int, rowsFilter []int64, fillNulls bool, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	if srcLen < 1 || srcLen > 32 {
		return unsupportedf("invalid fixed decimal source length %d", srcLen)
	}
	slicer, err := NewFixedSlicer(page.Values, srcLen, page.ValueCount)
	if err != nil {
		return err
	}
	sink := newFixedSink(buf, slicer, srcLen, width, null)
	return DecodePage0Filtered(page, pageRowStart, rowGroupLo, rowLo, rowHi, rowsFilter, fillNulls, sink)
}

// DecodeFixedDecimalDictFiltered decodes an RLE_DICTIONARY-encoded
// FIXED_LEN_BYTE_ARRAY decimal data page restricted to rowsFilter.
func DecodeFixedDecimalDictFiltered(page *DataPage, dictPage *DictPage, buf *ColumnChunkBuffers, srcLen int, pageRowStart, rowGroupLo, rowLo, rowHi int, rowsFilter []int64, fillNulls bool, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	if srcLen < 1 || srcLen > 32 {
		return unsupportedf("invalid fixed decimal source length %d", srcLen)
	}
	dict, err := NewFixedDict(dictPage.Values, srcLen, dictPage.ValueCount)
	if err != nil {
		return err
	}
	slicer, err := NewRleDictionarySlicer(page.Values, dict)
	if err != nil {
		return err
	}
	sink := newFixedSink(buf, slicer, srcLen, width, null)
	return DecodePage0Filtered(page, pageRowStart, rowGroupLo, rowLo, rowHi, rowsFilter, fillNulls, sink)
}

// DecodeByteArrayDecimal decodes a PLAIN-encoded BYTE_ARRAY decimal
// data page (no row filter). Each value's length is read from its own
// length prefix, so the source width varies per value.
func DecodeByteArrayDecimal(page *DataPage, buf *ColumnChunkBuffers, rowLo, rowHi int, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	slicer := NewVarSlicer(page.Values)
	sink := newByteArraySink(buf, slicer, width, null)
	return DecodePage0(page, rowLo, rowHi, sink)
}

// DecodeByteArrayDecimalDict decodes an RLE_DICTIONARY-encoded
// BYTE_ARRAY decimal data page (no row filter).
func DecodeByteArrayDecimalDict(page *DataPage, dictPage *DictPage, buf *ColumnChunkBuffers, rowLo, rowHi int, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	dict, err := NewVarDict(dictPage.Values, dictPage.ValueCount)
	if err != nil {
		return err
	}
	slicer, err := NewRleDictionarySlicer(page.Values, dict)
	if err != nil {
		return err
	}
	sink := newByteArraySink(buf, slicer, width, null)
	return DecodePage0(page, rowLo, rowHi, sink)
}

// DecodeByteArrayDecimalFiltered decodes a PLAIN-encoded BYTE_ARRAY
// decimal data page restricted to rowsFilter.
func DecodeByteArrayDecimalFiltered(page *DataPage, buf *ColumnChunkBuffers, pageRowStart, rowGroupLo, rowLo, rowHi int, rowsFilter []int64, fillNulls bool, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	slicer := NewVarSlicer(page.Values)
	sink := newByteArraySink(buf, slicer, width, null)
	return DecodePage0Filtered(page, pageRowStart, rowGroupLo, rowLo, rowHi, rowsFilter, fillNulls, sink)
}

// DecodeByteArrayDecimalDictFiltered decodes an RLE_DICTIONARY-encoded
// BYTE_ARRAY decimal data page restricted to rowsFilter.
func DecodeByteArrayDecimalDictFiltered(page *DataPage, dictPage *DictPage, buf *ColumnChunkBuffers, pageRowStart, rowGroupLo, rowLo, rowHi int, rowsFilter []int64, fillNulls bool, tag TargetTag) error {
	width, null, err := resolveWidth(tag)
	if err != nil {
		return err
	}
	dict, err := NewVarDict(dictPage.Values, dictPage.ValueCount)
	if err != nil {
		return err
	}
	slicer, err := NewRleDictionarySlicer(page.Values, dict)
	if err != nil {
		return err
	}
	sink := newByteArraySink(buf, slicer, width, null)
	return DecodePage0Filtered(page, pageRowStart, rowGroupLo, rowLo, rowHi, rowsFilter, fillNulls, sink)
}
