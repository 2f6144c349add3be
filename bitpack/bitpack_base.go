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

package bitpack

import (
	"github.com/ajroetker/go-fastlanes/fl"
	"github.com/ajroetker/go-fastlanes/internal/assert"
)

// BasePack packs a 1024-element batch into dst at w bits per element,
// following the FastLanes row/lane order (spec §4.1, §4.3.1). Every
// input value that does not fit in w bits is silently masked; callers
// that need to know in advance should check Fits first.
//
// dst must have fl.PackedLen[T](w) elements. w must be in [0, TBits[T]()].
func BasePack[T fl.Unsigned](src []T, w int, dst []T) {
	assert.BatchLen(len(src))
	assert.PackedLen(len(dst), fl.PackedLen[T](w))
	tbits := fl.TBits[T]()
	lanes := fl.Lanes[T]()

	if w == 0 {
		return
	}
	if w == tbits {
		for row := 0; row < tbits; row++ {
			for lane := 0; lane < lanes; lane++ {
				dst[lanes*row+lane] = src[fl.Idx(row, lane)]
			}
		}
		return
	}

	mask := fl.Mask[T](w)
	for lane := 0; lane < lanes; lane++ {
		var tmp T
		for row := 0; row < tbits; row++ {
			v := src[fl.Idx(row, lane)] & mask
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

// BaseUnpack is the exact inverse of BasePack: dst receives the 1024
// decoded elements in natural order. src must hold fl.PackedLen[T](w)
// elements.
func BaseUnpack[T fl.Unsigned](src []T, w int, dst []T) {
	assert.BatchLen(len(dst))
	assert.PackedLen(len(src), fl.PackedLen[T](w))
	tbits := fl.TBits[T]()
	lanes := fl.Lanes[T]()

	if w == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if w == tbits {
		for row := 0; row < tbits; row++ {
			for lane := 0; lane < lanes; lane++ {
				dst[fl.Idx(row, lane)] = src[lanes*row+lane]
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
			dst[fl.Idx(row, lane)] = elem
		}
	}
}

// BaseUnpackSingle returns the i-th element of a w-bit-packed batch
// without decoding the rest of it (spec §4.3.3).
func BaseUnpackSingle[T fl.Unsigned](src []T, w, i int) T {
	if i < 0 || i >= fl.BatchLen {
		panic(indexOutOfRange(i))
	}
	_ = fl.PackedLen[T](w) // validates w is in range, panics otherwise
	tbits := fl.TBits[T]()
	lanes := fl.Lanes[T]()

	row, lane := fl.InvIdx(tbits, i)
	if w == 0 {
		return 0
	}
	if w == tbits {
		return src[lanes*row+lane]
	}

	startBit := row * w
	startWord := startBit / tbits
	loShift := startBit % tbits
	remaining := tbits - loShift

	lo := src[lanes*startWord+lane] >> uint(loShift)
	if remaining >= w {
		return lo & fl.Mask[T](w)
	}
	hi := src[lanes*(startWord+1)+lane] << uint(remaining)
	return (lo | hi) & fl.Mask[T](w)
}
