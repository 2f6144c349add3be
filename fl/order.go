// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fl

// FLOrder is the fixed 8-entry permutation that interleaves row groups
// within a batch. It is its own inverse: FLOrder[FLOrder[i]] == i.
var FLOrder = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// Idx maps a virtual (row, lane) position to its flat index within a
// 1024-element batch:
//
//	idx(row, lane) = FLOrder[row/8]*16 + (row%8)*128 + lane
//
// row ranges over [0, TBits[T]()) and lane over [0, Lanes[T]()); the
// formula itself has no dependence on T beyond the caller keeping row
// and lane within those ranges.
func Idx(row, lane int) int {
	return FLOrder[row/8]*16 + (row%8)*128 + lane
}

// InvIdx inverts Idx: given a flat index i in [0, BatchLen) and the
// element type's bit width, it recovers the (row, lane) pair such that
// Idx(row, lane) == i.
func InvIdx(tbits, i int) (row, lane int) {
	lanes := BatchLen / tbits
	lane = i % lanes
	s := i / 128
	f := (i - s*128 - lane) / 16
	o := FLOrder[f]
	row = o*8 + s
	return row, lane
}
