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
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fastlanes/fl"
)

// TestRoundtrip is P7: unffor(ffor(X,R),R) == X for X with
// (X[i]-R) mod 2^TBITS < 2^W.
func TestRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	testRoundtrip[uint8](t, rng)
	testRoundtrip[uint16](t, rng)
	testRoundtrip[uint32](t, rng)
	testRoundtrip[uint64](t, rng)
}

func testRoundtrip[T fl.Unsigned](t *testing.T, rng *rand.Rand) {
	tbits := fl.TBits[T]()
	for w := 0; w <= tbits; w++ {
		ref := T(rng.Uint64())
		mask := fl.Mask[T](w)

		src := make([]T, fl.BatchLen)
		for i := range src {
			src[i] = ref + (T(rng.Uint64()) & mask)
		}

		if !Fits(src, ref, w) {
			t.Fatalf("w=%d: constructed src unexpectedly does not fit", w)
		}

		packed := make([]T, fl.PackedLen[T](w))
		Encode(src, ref, w, packed)

		got := make([]T, fl.BatchLen)
		Decode(packed, ref, w, got)

		for i := range src {
			if got[i] != src[i] {
				t.Fatalf("w=%d: Decode(Encode(src,ref),ref)[%d] = %d, want %d", w, i, got[i], src[i])
			}
		}
	}
}

// TestScenarioS4: T=u16, W=15, R=10, X[i] = R + (i mod 2^15), so every
// X[i]-R fits in W bits as the round trip requires.
func TestScenarioS4(t *testing.T) {
	const w = 15
	const ref = uint16(10)

	src := make([]uint16, fl.BatchLen)
	for i := range src {
		src[i] = ref + uint16(i)%(1<<15)
	}

	packed := make([]uint16, fl.PackedLen[uint16](w))
	Encode(src, ref, w, packed)

	got := make([]uint16, fl.BatchLen)
	Decode(packed, ref, w, got)

	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("S4: Decode(Encode(X,R),R)[%d] = %d, want %d", i, got[i], src[i])
		}
	}
}

func TestFits(t *testing.T) {
	src := []uint32{10, 20, 30}
	if !Fits(src, 10, 5) {
		t.Error("Fits(src, ref=10, w=5) = false, want true (deltas 0,10,20 fit in 5 bits)")
	}
	if Fits(src, 10, 2) {
		t.Error("Fits(src, ref=10, w=2) = true, want false (delta 20 needs 5 bits)")
	}
}

func BenchmarkEncode(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	const w = 12
	const ref = uint32(1000)
	src := make([]uint32, fl.BatchLen)
	mask := fl.Mask[uint32](w)
	for i := range src {
		src[i] = ref + (uint32(rng.Uint64()) & mask)
	}
	dst := make([]uint32, fl.PackedLen[uint32](w))

	b.ReportAllocs()
	b.SetBytes(fl.BatchLen * 4)
	for i := 0; i < b.N; i++ {
		Encode(src, ref, w, dst)
	}
}

func BenchmarkDecode(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	const w = 12
	const ref = uint32(1000)
	src := make([]uint32, fl.BatchLen)
	mask := fl.Mask[uint32](w)
	for i := range src {
		src[i] = ref + (uint32(rng.Uint64()) & mask)
	}
	packed := make([]uint32, fl.PackedLen[uint32](w))
	Encode(src, ref, w, packed)
	dst := make([]uint32, fl.BatchLen)

	b.ReportAllocs()
	b.SetBytes(fl.BatchLen * 4)
	for i := 0; i < b.N; i++ {
		Decode(packed, ref, w, dst)
	}
}
