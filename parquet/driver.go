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
	"sort"

	"github.com/SnellerInc/sneller/ints"
)

// isNull reports whether def-level d marks a null row.
func isNull(d uint8, maxDefLevel uint8) bool {
	return d < maxDefLevel
}

// runs decomposes defLevels[lo:hi] into maximal null/non-null runs,
// invoking fn(start, end, null) for each, with start/end relative to
// the defLevels slice itself (i.e. already offset by lo).
func runs(defLevels []uint8, lo, hi int, maxDefLevel uint8, fn func(start, end int, null bool)) {
	i := lo
	for i < hi {
		null := isNull(defLevels[i], maxDefLevel)
		j := i + 1
		for j < hi && isNull(defLevels[j], maxDefLevel) == null {
			j++
		}
		fn(i, j, null)
		i = j
	}
}

// DecodePage0 decodes rows [rowLo, rowHi) of page into sink, with no
// row filter applied.
func DecodePage0(page *DataPage, rowLo, rowHi int, sink Sink) error {
	if err := sink.Reserve(rowHi - rowLo); err != nil {
		return err
	}
	if len(page.DefLevels) == 0 {
		if rowLo > 0 {
			if err := sink.Skip(rowLo); err != nil {
				return err
			}
		}
		if n := rowHi - rowLo; n > 0 {
			if err := sink.PushSlice(n); err != nil {
				return err
			}
		}
		return sink.Result()
	}

	before := ints.Interval{Start: 0, End: rowLo}
	within := ints.Interval{Start: rowLo, End: rowHi}
	var runErr error
	runs(page.DefLevels, 0, rowHi, page.MaxDefLevel, func(start, end int, null bool) {
		if runErr != nil {
			return
		}
		run := ints.Interval{Start: start, End: end}
		if b := run.Intersect(before); !b.Empty() && !null {
			// non-null rows before rowLo occupy a slot in the
			// value stream and must be skipped; null rows do
			// not and need no action.
			if err := sink.Skip(b.Len()); err != nil {
				runErr = err
				return
			}
		}
		if w := run.Intersect(within); !w.Empty() {
			var err error
			if null {
				err = sink.PushNulls(w.Len())
			} else {
				err = sink.PushSlice(w.Len())
			}
			if err != nil {
				runErr = err
			}
		}
	})
	if runErr != nil {
		return runErr
	}
	return sink.Result()
}

// DecodePage0Filtered decodes rows [rowLo, rowHi) of page into sink,
// restricted to the rows named by rowsFilter. rowLo and rowHi are
// page-local row indices, exactly as in DecodePage0 (they index
// page.DefLevels and bound the slice of the page's own value stream
// the caller wants); rowsFilter, by contrast, is expressed in the
// outer coordinate space shared across row groups. pageRowStart
// locates this page's first row within its row group, and rowGroupLo
// locates the row group within that outer space, so page-local row r
// corresponds to outer coordinate rowGroupLo+pageRowStart+r; this is
// the translation used to test each rowsFilter entry against
// [rowLo, rowHi).
//
// When fillNulls is true, every row in [rowLo, rowHi) that is not
// selected by rowsFilter still produces a null placeholder, so the
// output has exactly rowHi-rowLo entries; when fillNulls is false,
// only selected rows produce output.
func DecodePage0Filtered(page *DataPage, pageRowStart, rowGroupLo, rowLo, rowHi int, rowsFilter []int64, fillNulls bool, sink Sink) error {
	if err := sink.Reserve(rowHi - rowLo); err != nil {
		return err
	}
	base := int64(rowGroupLo + pageRowStart)

	// translate the filter into page-local row indices within [rowLo, rowHi)
	loGlobal := base + int64(rowLo)
	hiGlobal := base + int64(rowHi)
	start := sort.Search(len(rowsFilter), func(i int) bool { return rowsFilter[i] >= loGlobal })

	hasDef := len(page.DefLevels) > 0

	// the slicer underlying sink is positioned at page-local value 0;
	// rows [0, rowLo) precede the requested window but, if non-null,
	// still occupy a slot in the value stream and must be consumed
	// before the window's own rows can be read correctly. These rows
	// are never in [rowLo, rowHi), so they never produce output
	// regardless of fillNulls (matching DecodePage0's "before" case).
	if rowLo > 0 {
		if !hasDef {
			if err := sink.Skip(rowLo); err != nil {
				return err
			}
		} else {
			var leadErr error
			runs(page.DefLevels, 0, rowLo, page.MaxDefLevel, func(s, e int, null bool) {
				if leadErr != nil || null {
					return
				}
				if err := sink.Skip(e - s); err != nil {
					leadErr = err
				}
			})
			if leadErr != nil {
				return leadErr
			}
		}
	}

	cursor := rowLo
	emitGap := func(gapLo, gapHi int) error {
		if gapLo >= gapHi {
			return nil
		}
		if !hasDef {
			// every row in the gap holds a real (non-null)
			// value, which always occupies a slot in the
			// stream and so must always be skipped; a
			// fill-nulls decode additionally emits a null
			// placeholder in its place.
			n := gapHi - gapLo
			if err := sink.Skip(n); err != nil {
				return err
			}
			if fillNulls {
				return sink.PushNulls(n)
			}
			return nil
		}
		var gapErr error
		runs(page.DefLevels, gapLo, gapHi, page.MaxDefLevel, func(s, e int, null bool) {
			if gapErr != nil {
				return
			}
			n := e - s
			if null {
				if fillNulls {
					if err := sink.PushNulls(n); err != nil {
						gapErr = err
					}
				}
				return
			}
			if err := sink.Skip(n); err != nil {
				gapErr = err
				return
			}
			if fillNulls {
				if err := sink.PushNulls(n); err != nil {
					gapErr = err
				}
			}
		})
		return gapErr
	}

	for i := start; i < len(rowsFilter) && rowsFilter[i] < hiGlobal; i++ {
		local := int(rowsFilter[i] - base)
		if err := emitGap(cursor, local); err != nil {
			return err
		}
		null := hasDef && isNull(page.DefLevels[local], page.MaxDefLevel)
		var err error
		if null {
			err = sink.PushNull()
		} else {
			err = sink.Push()
		}
		if err != nil {
			return err
		}
		cursor = local + 1
	}
	if err := emitGap(cursor, rowHi); err != nil {
		return err
	}
	return sink.Result()
}
