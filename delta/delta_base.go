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

package delta

import (
	"github.com/ajroetker/go-fastlanes/fl"
	"github.com/ajroetker/go-fastlanes/internal/assert"
	"github.com/ajroetker/go-fastlanes/internal/kernel"
)

// BaseEncode is the reference implementation backing Encode.
func BaseEncode[T fl.Unsigned](src []T, base []T, dst []T) {
	assert.BatchLen(len(src))
	assert.BatchLen(len(dst))
	lanes := fl.Lanes[T]()
	tbits := fl.TBits[T]()
	assert.PackedLen(len(base), lanes)

	for lane := 0; lane < lanes; lane++ {
		prev := base[lane]
		for row := 0; row < tbits; row++ {
			pos := fl.Idx(row, lane)
			next := src[pos]
			dst[pos] = next - prev
			prev = next
		}
	}
}

// BaseDecode is the reference implementation backing Decode.
func BaseDecode[T fl.Unsigned](src []T, base []T, dst []T) {
	assert.BatchLen(len(src))
	assert.BatchLen(len(dst))
	lanes := fl.Lanes[T]()
	tbits := fl.TBits[T]()
	assert.PackedLen(len(base), lanes)

	for lane := 0; lane < lanes; lane++ {
		prev := base[lane]
		for row := 0; row < tbits; row++ {
			pos := fl.Idx(row, lane)
			next := src[pos] + prev
			dst[pos] = next
			prev = next
		}
	}
}

// BaseUndeltaUnpack is the reference implementation backing
// UndeltaUnpack. It reuses the bit-unpack inner loop (internal/kernel)
// with the delta recurrence spliced into the sink, per spec §4.4.1 and
// §9's "parameterized iteration kernel" design note.
func BaseUndeltaUnpack[T fl.Unsigned](packed []T, w int, base []T, dst []T) {
	assert.BatchLen(len(dst))
	lanes := fl.Lanes[T]()
	assert.PackedLen(len(base), lanes)
	assert.PackedLen(len(packed), fl.PackedLen[T](w))

	// kernel.Unpack iterates lane outer, row inner, so a single running
	// (prevLane, prev) pair is enough to track each lane's predecessor
	// without allocating a per-lane buffer.
	prevLane := -1
	var prev T
	kernel.Unpack(packed, w, func(row, lane int, elem T) {
		if lane != prevLane {
			prev = base[lane]
			prevLane = lane
		}
		next := elem + prev
		prev = next
		dst[fl.Idx(row, lane)] = next
	})
}
