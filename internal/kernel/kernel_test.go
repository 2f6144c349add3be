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

package kernel

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fastlanes/fl"
)

// TestPackUnpackRoundtrip exercises the shared kernel with an identity
// source and a plain store sink, which is exactly what bitpack.Pack and
// bitpack.Unpack specialize into (spec §9's "source = identity, sink =
// nop" instantiation).
func TestPackUnpackRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tbits := fl.TBits[uint32]()

	for w := 0; w <= tbits; w++ {
		mask := fl.Mask[uint32](w)
		src := make([]uint32, fl.BatchLen)
		for i := range src {
			src[i] = uint32(rng.Uint64()) & mask
		}

		packed := make([]uint32, fl.PackedLen[uint32](w))
		Pack(func(row, lane int) uint32 {
			return src[fl.Idx(row, lane)]
		}, w, packed)

		got := make([]uint32, fl.BatchLen)
		Unpack(packed, w, func(row, lane int, elem uint32) {
			got[fl.Idx(row, lane)] = elem
		})

		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("w=%d: kernel roundtrip[%d] = %d, want %d", w, i, got[i], src[i])
			}
		}
	}
}
