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

package ints

// Interval is a half-open interval [start, end)
// (start is always less than or equal to end)
type Interval struct {
	Start, End int
}

// Empty returns whether [in] is an empty
// interval.
func (in Interval) Empty() bool {
	return in.Start >= in.End
}

// Len returns the length of the interval.
func (in Interval) Len() int {
	if in.End <= in.Start {
		return 0
	}
	return in.End - in.Start
}

// Intersect returns the intersection of [in]
// and [x]. If there is no overlap, the returned
// interval is empty.
func (in Interval) Intersect(x Interval) Interval {
	if in.End <= x.Start || in.Start >= x.End {
		return Interval{0, 0}
	}
	out := Interval{in.Start, in.End}
	if x.Start > out.Start {
		out.Start = x.Start
	}
	if x.End < out.End {
		out.End = x.End
	}
	return out
}
