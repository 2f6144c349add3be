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

// Package bitpack implements the FastLanes bit-packing kernel: packing
// 1024 elements of an unsigned type T into a buffer of w bits per
// element, following the row/lane iteration order fl defines, and
// unpacking them back (spec §4.3).
package bitpack

import "github.com/ajroetker/go-fastlanes/fl"

// Pack packs src (1024 elements) into dst at w bits per element.
func Pack[T fl.Unsigned](src []T, w int, dst []T) {
	BasePack(src, w, dst)
}

// Unpack unpacks a w-bit-packed batch back into 1024 elements.
func Unpack[T fl.Unsigned](src []T, w int, dst []T) {
	BaseUnpack(src, w, dst)
}

// UnpackSingle decodes only the i-th element of a w-bit-packed batch.
func UnpackSingle[T fl.Unsigned](src []T, w, i int) T {
	return BaseUnpackSingle(src, w, i)
}

// Fits reports whether every element of src fits in w bits, i.e. whether
// Pack followed by Unpack would round-trip src exactly rather than
// silently masking high bits. Grounded on the debug_assert! guard present
// in several historical revisions of the original bitpacking.rs (see
// SPEC_FULL.md §5 item 1); Pack itself never calls this.
func Fits[T fl.Unsigned](src []T, w int) bool {
	mask := fl.Mask[T](w)
	for _, v := range src {
		if v&mask != v {
			return false
		}
	}
	return true
}
