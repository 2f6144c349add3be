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

// Package kernel holds the parameterized row/lane iteration kernel that
// the bit-pack inner loop reduces to once its source and sink are made
// pluggable. spec.md §9 calls this out directly: "Delta and FFOR kernels
// re-use the bit-pack inner body... cleanest as a parameterized iteration
// kernel that takes a per-element source closure and a per-element sink
// closure. The bit-pack kernel is then one instantiation (source =
// identity, sink = nop), delta-fused unpack another (source = unpack-read,
// sink = delta-add + store)."
//
// bitpack's own Pack/Unpack stay hand-written straight-line loops (no
// closures) for the unfused hot path; delta.UndeltaUnpack and the ffor
// package build on this package instead, trading the closure-call
// overhead for not duplicating the row/lane boundary arithmetic a third
// and fourth time. See DESIGN.md for that tradeoff.
package kernel

import "github.com/ajroetker/go-fastlanes/fl"

// Pack runs the spec §4.3.1 inner loop over a full batch, reading each
// (row, lane) element through src instead of a fixed slice, and writing
// w-bit-packed words to dst (which must hold fl.PackedLen[T](w) elements).
func Pack[T fl.Unsigned](src func(row, lane int) T, w int, dst []T) {
	tbits := fl.TBits[T]()
	lanes := fl.Lanes[T]()

	if w == 0 {
		return
	}
	if w == tbits {
		for row := 0; row < tbits; row++ {
			for lane := 0; lane < lanes; lane++ {
				dst[lanes*row+lane] = src(row, lane)
			}
		}
		return
	}

	mask := fl.Mask[T](w)
	for lane := 0; lane < lanes; lane++ {
		var tmp T
		for row := 0; row < tbits; row++ {
			v := src(row, lane) & mask
			if row == 0 {
				tmp = v
			} else {
				tmp |= v << uint((row*w)%tbits)
			}

			curr := (row * w) / tbits
			next := ((row + 1) * w) / tbits
			if next > curr {
				dst[lanes*curr+lane] = tmp
				rem := ((row + 1) * w) % tbits
				tmp = v >> uint(w-rem)
			}
		}
	}
}

// Unpack runs the spec §4.3.2 inner loop over a full w-bit-packed batch
// (src must hold fl.PackedLen[T](w) elements), delivering each decoded
// (row, lane) element to sink instead of writing it to a fixed slice.
//
// sink is always called lane-outer, row-inner (all rows of lane 0, then
// all rows of lane 1, ...), for every w including the w==0 and w==tbits
// special cases: delta.BaseUndeltaUnpack relies on this order to track
// each lane's running predecessor with a single (prevLane, prev) pair.
func Unpack[T fl.Unsigned](src []T, w int, sink func(row, lane int, elem T)) {
	tbits := fl.TBits[T]()
	lanes := fl.Lanes[T]()

	if w == 0 {
		for lane := 0; lane < lanes; lane++ {
			for row := 0; row < tbits; row++ {
				sink(row, lane, 0)
			}
		}
		return
	}
	if w == tbits {
		for lane := 0; lane < lanes; lane++ {
			for row := 0; row < tbits; row++ {
				sink(row, lane, src[lanes*row+lane])
			}
		}
		return
	}

	mask := fl.Mask[T](w)
	for lane := 0; lane < lanes; lane++ {
		reg := src[lane]
		for row := 0; row < tbits; row++ {
			shift := (row * w) % tbits
			curr := (row * w) / tbits
			next := ((row + 1) * w) / tbits

			var elem T
			if next == curr {
				elem = (reg >> uint(shift)) & mask
			} else {
				rem := ((row + 1) * w) % tbits
				lowBits := w - rem
				elem = (reg >> uint(shift)) & fl.Mask[T](lowBits)
				if next < w {
					reg = src[lanes*next+lane]
					elem |= (reg & fl.Mask[T](rem)) << uint(lowBits)
				}
			}
			sink(row, lane, elem)
		}
	}
}
