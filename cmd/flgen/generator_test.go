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

package main

import "testing"

func TestComputeStepsMatchesKernelArithmetic(t *testing.T) {
	// Mirrors the curr/next/rem arithmetic in internal/kernel.Pack; if
	// these two ever disagree the generated code and the general loop
	// would pack different bitstreams for the same (T, W).
	for _, tbits := range []int{8, 16, 32, 64} {
		for w := 1; w < tbits; w++ {
			steps := computeSteps(tbits, w)
			if len(steps) != tbits {
				t.Fatalf("tbits=%d w=%d: got %d steps, want %d", tbits, w, len(steps), tbits)
			}
			for row, s := range steps {
				wantCurr := (row * w) / tbits
				wantNext := ((row + 1) * w) / tbits
				wantRem := ((row + 1) * w) % tbits
				if s.CurrWord != wantCurr || s.NextWord != wantNext || s.RemBits != wantRem {
					t.Fatalf("tbits=%d w=%d row=%d: got {curr=%d next=%d rem=%d}, want {curr=%d next=%d rem=%d}",
						tbits, w, row, s.CurrWord, s.NextWord, s.RemBits, wantCurr, wantNext, wantRem)
				}
				if s.Crosses != (wantNext > wantCurr) {
					t.Fatalf("tbits=%d w=%d row=%d: Crosses=%v, want %v", tbits, w, row, s.Crosses, wantNext > wantCurr)
				}
			}
		}
	}
}

func TestGeneratePackRejectsConstantWidths(t *testing.T) {
	if _, err := generatePack("uint32", 32, 0); err == nil {
		t.Error("generatePack(w=0) = nil error, want error (handled by BasePack's zero-width arm)")
	}
	if _, err := generatePack("uint32", 32, 32); err == nil {
		t.Error("generatePack(w=tbits) = nil error, want error (handled by BasePack's identity arm)")
	}
}

func TestGeneratePackProducesFuncName(t *testing.T) {
	src, err := generatePack("uint16", 16, 5)
	if err != nil {
		t.Fatalf("generatePack: %v", err)
	}
	const want = "func pack_uint16_w5("
	if !contains(src, want) {
		t.Errorf("generated source missing %q:\n%s", want, src)
	}
}

func TestGenerateUnpackProducesFuncName(t *testing.T) {
	src, err := generateUnpack("uint8", 8, 3)
	if err != nil {
		t.Fatalf("generateUnpack: %v", err)
	}
	const want = "func unpack_uint8_w3("
	if !contains(src, want) {
		t.Errorf("generated source missing %q:\n%s", want, src)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
