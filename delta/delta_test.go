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
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fastlanes/bitpack"
	"github.com/ajroetker/go-fastlanes/fl"
)

// TestEncodeDecodeRoundtrip is P5.
func TestEncodeDecodeRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	testRoundtrip[uint8](t, rng)
	testRoundtrip[uint16](t, rng)
	testRoundtrip[uint32](t, rng)
	testRoundtrip[uint64](t, rng)
}

func testRoundtrip[T fl.Unsigned](t *testing.T, rng *rand.Rand) {
	lanes := fl.Lanes[T]()
	base := make([]T, lanes)
	for i := range base {
		base[i] = T(rng.Uint64())
	}
	src := make([]T, fl.BatchLen)
	for i := range src {
		src[i] = T(rng.Uint64())
	}

	encoded := make([]T, fl.BatchLen)
	Encode(src, base, encoded)

	decoded := make([]T, fl.BatchLen)
	Decode(encoded, base, decoded)

	for i := range src {
		if decoded[i] != src[i] {
			t.Fatalf("Decode(Encode(src))[%d] = %d, want %d", i, decoded[i], src[i])
		}
	}
}

// TestFusionEquivalence is P6: undelta_unpack(pack(delta_encode(X))) == X
// for X whose deltas fit in w bits.
func TestFusionEquivalence(t *testing.T) {
	const w = 9
	lanes := fl.Lanes[uint16]()
	base := make([]uint16, lanes)

	natural := make([]uint16, fl.BatchLen)
	for i := range natural {
		natural[i] = uint16(i / 4) // monotone; small deltas once transposed
	}
	src := make([]uint16, fl.BatchLen)
	fl.Transpose(natural, src)

	encoded := make([]uint16, fl.BatchLen)
	Encode(src, base, encoded)

	if !bitpack.Fits(encoded, w) {
		t.Fatalf("deltas do not fit in %d bits", w)
	}

	packed := make([]uint16, fl.PackedLen[uint16](w))
	bitpack.Pack(encoded, w, packed)

	got := make([]uint16, fl.BatchLen)
	UndeltaUnpack(packed, w, base, got)

	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("UndeltaUnpack(Pack(Encode(X)))[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

// TestFusionEquivalenceWidthTBits is P6 at W=TBITS, the identity width
// internal/kernel.Unpack special-cases (spec.md §4.3.4/P9). Deltas are
// unconstrained here since every width fits at W=TBITS.
func TestFusionEquivalenceWidthTBits(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const w = 32 // fl.TBits[uint32]()
	lanes := fl.Lanes[uint32]()
	base := make([]uint32, lanes)
	for i := range base {
		base[i] = rng.Uint32()
	}

	src := make([]uint32, fl.BatchLen)
	for i := range src {
		src[i] = rng.Uint32()
	}

	encoded := make([]uint32, fl.BatchLen)
	Encode(src, base, encoded)

	packed := make([]uint32, fl.PackedLen[uint32](w))
	bitpack.Pack(encoded, w, packed)

	got := make([]uint32, fl.BatchLen)
	UndeltaUnpack(packed, w, base, got)

	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("UndeltaUnpack(Pack(Encode(X)),W=TBITS)[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

// TestScenarioS3: T=u16, W=15, X[i]=i/8. Transpose -> delta encode (zero
// base) -> pack. The unfused path (unpack -> delta decode -> untranspose)
// and the fused path (undelta_unpack -> untranspose) must both reproduce
// X and must be byte-identical to each other.
func TestScenarioS3(t *testing.T) {
	const w = 15
	lanes := fl.Lanes[uint16]()
	zeroBase := make([]uint16, lanes)

	x := make([]uint16, fl.BatchLen)
	for i := range x {
		x[i] = uint16(i / 8)
	}

	transposed := make([]uint16, fl.BatchLen)
	fl.Transpose(x, transposed)

	encoded := make([]uint16, fl.BatchLen)
	Encode(transposed, zeroBase, encoded)

	packed := make([]uint16, fl.PackedLen[uint16](w))
	bitpack.Pack(encoded, w, packed)

	// Unfused path.
	unpacked := make([]uint16, fl.BatchLen)
	bitpack.Unpack(packed, w, unpacked)
	decoded := make([]uint16, fl.BatchLen)
	Decode(unpacked, zeroBase, decoded)
	unfused := make([]uint16, fl.BatchLen)
	fl.Untranspose(decoded, unfused)

	// Fused path.
	fusedDecoded := make([]uint16, fl.BatchLen)
	UndeltaUnpack(packed, w, zeroBase, fusedDecoded)
	fused := make([]uint16, fl.BatchLen)
	fl.Untranspose(fusedDecoded, fused)

	for i := range x {
		if unfused[i] != x[i] {
			t.Fatalf("S3 unfused[%d] = %d, want %d", i, unfused[i], x[i])
		}
		if fused[i] != x[i] {
			t.Fatalf("S3 fused[%d] = %d, want %d", i, fused[i], x[i])
		}
		if fused[i] != unfused[i] {
			t.Fatalf("S3: fused and unfused diverge at %d: %d vs %d", i, fused[i], unfused[i])
		}
	}
}

func BenchmarkUndeltaUnpack(b *testing.B) {
	const w = 12
	lanes := fl.Lanes[uint32]()
	base := make([]uint32, lanes)
	src := make([]uint32, fl.BatchLen)
	for i := range src {
		src[i] = uint32(i)
	}
	encoded := make([]uint32, fl.BatchLen)
	Encode(src, base, encoded)
	packed := make([]uint32, fl.PackedLen[uint32](w))
	bitpack.Pack(encoded, w, packed)
	dst := make([]uint32, fl.BatchLen)

	b.ReportAllocs()
	b.SetBytes(fl.BatchLen * 4)
	for i := 0; i < b.N; i++ {
		UndeltaUnpack(packed, w, base, dst)
	}
}
