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

// Package delta implements the FastLanes delta encoder: per-lane
// successive differences under wrapping arithmetic, seeded by a
// per-lane base row, plus a kernel fusing undelta with bit-unpack
// (spec §4.4).
//
// Delta operates in the transposed domain: callers are expected to
// fl.Transpose their data first so elements processed along a lane come
// from monotonically adjacent positions of the original input.
package delta

import "github.com/ajroetker/go-fastlanes/fl"

// Encode computes, for each lane, the successive difference of input
// against base (wrapping): dst[idx(0,lane)] = input[idx(0,lane)] - base[lane],
// dst[idx(row,lane)] = input[idx(row,lane)] - input[idx(row-1,lane)] for row>0.
func Encode[T fl.Unsigned](src []T, base []T, dst []T) {
	BaseEncode(src, base, dst)
}

// Decode is the inverse of Encode.
func Decode[T fl.Unsigned](src []T, base []T, dst []T) {
	BaseDecode(src, base, dst)
}

// UndeltaUnpack fuses Decode with bitpack.Unpack in a single pass: dst
// is the result of decoding the delta-encoded, then w-bit-packed, batch
// packed holds. Equivalent to, but faster than,
//
//	tmp := make([]T, fl.BatchLen)
//	bitpack.Unpack(packed, w, tmp)
//	Decode(tmp, base, dst)
func UndeltaUnpack[T fl.Unsigned](packed []T, w int, base []T, dst []T) {
	BaseUndeltaUnpack(packed, w, base, dst)
}
