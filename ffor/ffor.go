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

// Package ffor implements the FastLanes frame-of-reference encoder: a
// per-batch constant subtract fused with bit-packing (spec §4.5).
package ffor

import "github.com/ajroetker/go-fastlanes/fl"

// Encode produces, in a single fused pass, the same result as subtracting
// ref from every element of src (wrapping) and then bitpack.Pack-ing the
// difference at w bits per element.
func Encode[T fl.Unsigned](src []T, ref T, w int, dst []T) {
	BaseEncode(src, ref, w, dst)
}

// Decode is the inverse of Encode: the same result as bitpack.Unpack-ing
// src and adding ref back to every element (wrapping), fused into one pass.
func Decode[T fl.Unsigned](src []T, ref T, w int, dst []T) {
	BaseDecode(src, ref, w, dst)
}

// Fits reports whether every element of src, minus ref (wrapping), fits
// in w bits — i.e. whether Encode followed by Decode would round-trip
// src exactly. Grounded on the overflow checks present in several
// historical revisions of the original ffor.rs (see SPEC_FULL.md §5
// item 1); Encode itself never calls this.
func Fits[T fl.Unsigned](src []T, ref T, w int) bool {
	mask := fl.Mask[T](w)
	for _, v := range src {
		d := v - ref
		if d&mask != d {
			return false
		}
	}
	return true
}
