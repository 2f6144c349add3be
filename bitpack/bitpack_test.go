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
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fastlanes/fl"
)

// randBatch fills a 1024-element batch with values that fit in w bits.
func randBatch[T fl.Unsigned](rng *rand.Rand, w int) []T {
	src := make([]T, fl.BatchLen)
	mask := fl.Mask[T](w)
	for i := range src {
		src[i] = T(rng.Uint64()) & mask
	}
	return src
}

// TestPackUnpackRoundtrip is P1: for every T and every valid w, unpacking
// a packed batch whose values fit in w bits reproduces it exactly.
func TestPackUnpackRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	t.Run("uint8", func(t *testing.T) { testRoundtrip[uint8](t, rng) })
	t.Run("uint16", func(t *testing.T) { testRoundtrip[uint16](t, rng) })
	t.Run("uint32", func(t *testing.T) { testRoundtrip[uint32](t, rng) })
	t.Run("uint64", func(t *testing.T) { testRoundtrip[uint64](t, rng) })
}

func testRoundtrip[T fl.Unsigned](t *testing.T, rng *rand.Rand) {
	tbits := fl.TBits[T]()
	for w := 0; w <= tbits; w++ {
		src := randBatch[T](rng, w)
		dst := make([]T, fl.PackedLen[T](w))
		Pack(src, w, dst)

		got := make([]T, fl.BatchLen)
		Unpack(dst, w, got)

		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("w=%d: Unpack(Pack(src))[%d] = %d, want %d", w, i, got[i], src[i])
			}
		}
	}
}

// TestUnpackSingleConsistency is P2.
func TestUnpackSingleConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tbits := fl.TBits[uint32]()
	for w := 0; w <= tbits; w++ {
		src := randBatch[uint32](rng, w)
		packed := make([]uint32, fl.PackedLen[uint32](w))
		Pack(src, w, packed)

		full := make([]uint32, fl.BatchLen)
		Unpack(packed, w, full)

		for i := 0; i < fl.BatchLen; i++ {
			if got := UnpackSingle(packed, w, i); got != full[i] {
				t.Fatalf("w=%d: UnpackSingle(%d) = %d, want %d", w, i, got, full[i])
			}
		}
	}
}

// TestWidthZero is P8.
func TestWidthZero(t *testing.T) {
	src := make([]uint32, fl.BatchLen)
	for i := range src {
		src[i] = 0
	}
	dst := make([]uint32, fl.PackedLen[uint32](0))
	Pack(src, 0, dst)
	if len(dst) != 0 {
		t.Fatalf("PackedLen[uint32](0) = %d, want 0", len(dst))
	}

	got := make([]uint32, fl.BatchLen)
	Unpack(nil, 0, got)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("Unpack(w=0)[%d] = %d, want 0", i, v)
		}
	}
}

// TestWidthIdentity is P9.
func TestWidthIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	tbits := fl.TBits[uint16]()
	lanes := fl.Lanes[uint16]()

	src := randBatch[uint16](rng, tbits)
	dst := make([]uint16, fl.PackedLen[uint16](tbits))
	Pack(src, tbits, dst)

	for row := 0; row < tbits; row++ {
		for lane := 0; lane < lanes; lane++ {
			want := src[fl.Idx(row, lane)]
			if got := dst[lanes*row+lane]; got != want {
				t.Fatalf("row=%d lane=%d: packed = %d, want %d", row, lane, got, want)
			}
		}
	}

	got := make([]uint16, fl.BatchLen)
	Unpack(dst, tbits, got)
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("Unpack(identity)[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

// TestScenarioS1: T=u16, W=3, X[i] = i mod 8.
func TestScenarioS1(t *testing.T) {
	src := make([]uint16, fl.BatchLen)
	for i := range src {
		src[i] = uint16(i % 8)
	}

	packed := make([]uint16, fl.PackedLen[uint16](3))
	if len(packed) != 192 {
		t.Fatalf("PackedLen[uint16](3) = %d, want 192", len(packed))
	}
	Pack(src, 3, packed)

	got := make([]uint16, fl.BatchLen)
	Unpack(packed, 3, got)
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("S1: Unpack(Pack(X))[%d] = %d, want %d", i, got[i], src[i])
		}
		if single := UnpackSingle(packed, 3, i); single != src[i] {
			t.Fatalf("S1: UnpackSingle(%d) = %d, want %d", i, single, src[i])
		}
	}
}

// TestScenarioS2: T=u32, W=10, X[i]=i, round-tripped through Pack/Unpack.
func TestScenarioS2(t *testing.T) {
	src := make([]uint32, fl.BatchLen)
	for i := range src {
		src[i] = uint32(i)
	}

	packed := make([]uint32, fl.PackedLen[uint32](10))
	Pack(src, 10, packed)

	got := make([]uint32, fl.BatchLen)
	Unpack(packed, 10, got)
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("S2: Unpack(Pack(X))[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

// TestScenarioS5: T=u8, W=0.
func TestScenarioS5(t *testing.T) {
	if got := fl.PackedLen[uint8](0); got != 0 {
		t.Fatalf("PackedLen[uint8](0) = %d, want 0", got)
	}
	got := make([]uint8, fl.BatchLen)
	Unpack[uint8](nil, 0, got)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("S5: Unpack(w=0)[%d] = %d, want 0", i, v)
		}
	}
}

// TestScenarioS6: T=u64, W=64 positional mapping.
func TestScenarioS6(t *testing.T) {
	rng := rand.New(rand.NewSource(64))
	src := randBatch[uint64](rng, 64)
	packed := make([]uint64, fl.PackedLen[uint64](64))
	Pack(src, 64, packed)

	lanes := fl.Lanes[uint64]()
	for row := 0; row < 64; row++ {
		for lane := 0; lane < lanes; lane++ {
			want := src[fl.Idx(row, lane)]
			if got := packed[lanes*row+lane]; got != want {
				t.Fatalf("S6: packed[%d] = %d, want %d", lanes*row+lane, got, want)
			}
		}
	}
}

func TestFits(t *testing.T) {
	src := []uint32{0, 1, 2, 15}
	if !Fits(src, 4) {
		t.Error("Fits(src, 4) = false, want true")
	}
	if Fits(src, 3) {
		t.Error("Fits(src, 3) = true, want false (15 needs 4 bits)")
	}
	if !Fits(src, 32) {
		t.Error("Fits(src, 32) = false, want true")
	}
}

func BenchmarkPack(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := randBatch[uint32](rng, 12)
	dst := make([]uint32, fl.PackedLen[uint32](12))

	b.ReportAllocs()
	b.SetBytes(fl.BatchLen * 4)
	for i := 0; i < b.N; i++ {
		Pack(src, 12, dst)
	}
}

func BenchmarkUnpack(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := randBatch[uint32](rng, 12)
	dst := make([]uint32, fl.PackedLen[uint32](12))
	Pack(src, 12, dst)
	out := make([]uint32, fl.BatchLen)

	b.ReportAllocs()
	b.SetBytes(fl.BatchLen * 4)
	for i := 0; i < b.N; i++ {
		Unpack(dst, 12, out)
	}
}
