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

package ffor

import (
	"github.com/ajroetker/go-fastlanes/fl"
	"github.com/ajroetker/go-fastlanes/internal/assert"
	"github.com/ajroetker/go-fastlanes/internal/kernel"
)

// BaseEncode is the reference implementation backing Encode. It reuses
// the parameterized pack kernel (internal/kernel), sourcing each
// (row, lane) element as src[idx(row,lane)]-ref instead of the raw
// input, per spec §4.5 and §9's "parameterized iteration kernel" note.
func BaseEncode[T fl.Unsigned](src []T, ref T, w int, dst []T) {
	assert.BatchLen(len(src))
	assert.PackedLen(len(dst), fl.PackedLen[T](w))

	kernel.Pack(func(row, lane int) T {
		return src[fl.Idx(row, lane)] - ref
	}, w, dst)
}

// BaseDecode is the reference implementation backing Decode.
func BaseDecode[T fl.Unsigned](src []T, ref T, w int, dst []T) {
	assert.BatchLen(len(dst))
	assert.PackedLen(len(src), fl.PackedLen[T](w))

	kernel.Unpack(src, w, func(row, lane int, elem T) {
		dst[fl.Idx(row, lane)] = elem + ref
	})
}
