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

import "fmt"

// PackedLen returns the number of T-words a packed buffer holding
// BatchLen elements of w bits each occupies: 1024*w/TBits[T]().
//
// w must be in [0, TBits[T]()]; this is the one place spec §7 mode 3
// ("invalid W") is surfaced as a runtime panic, since Go has no
// compile-time width parameter to reject it earlier.
func PackedLen[T Unsigned](w int) int {
	tbits := TBits[T]()
	if w < 0 || w > tbits {
		panic(fmt.Errorf("fastlanes: width %d out of range [0,%d]", w, tbits))
	}
	return BatchLen * w / tbits
}

// BitWidth returns the minimum number of bits needed to represent every
// element of src, i.e. the smallest w such that every src[i] < 1<<w.
// Returns 0 for an empty slice or a slice containing only zeros.
//
// This is a non-core helper: spec §7 attributes the width-selection scan
// to the caller, and no Pack/Unpack/FFOR entrypoint calls it internally.
func BitWidth[T Unsigned](src []T) int {
	if len(src) == 0 {
		return 0
	}
	var max T
	for _, v := range src {
		if v > max {
			max = v
		}
	}
	bits := 0
	for max > 0 {
		bits++
		max >>= 1
	}
	return bits
}
