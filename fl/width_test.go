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

import "testing"

func TestPackedLen(t *testing.T) {
	tests := []struct {
		w    int
		want int
	}{
		{0, 0},
		{3, 192},  // S1: u16, w=3 -> 1024*3/16 = 192
		{15, 960}, // u16, w=15 -> 960
		{16, 1024},
	}
	for _, tt := range tests {
		if got := PackedLen[uint16](tt.w); got != tt.want {
			t.Errorf("PackedLen[uint16](%d) = %d, want %d", tt.w, got, tt.want)
		}
	}

	if got := PackedLen[uint32](10); got != 320 {
		t.Errorf("PackedLen[uint32](10) = %d, want 320", got)
	}
	if got := PackedLen[uint64](64); got != 1024 {
		t.Errorf("PackedLen[uint64](64) = %d, want 1024", got)
	}
}

func TestPackedLenInvalidWidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PackedLen did not panic on out-of-range width")
		}
	}()
	PackedLen[uint32](33)
}

func TestBitWidth(t *testing.T) {
	tests := []struct {
		src  []uint32
		want int
	}{
		{nil, 0},
		{[]uint32{0, 0, 0}, 0},
		{[]uint32{5, 12, 3, 15, 7, 2, 9, 11}, 4},
		{[]uint32{1 << 31, 100, 200}, 32},
	}
	for _, tt := range tests {
		if got := BitWidth(tt.src); got != tt.want {
			t.Errorf("BitWidth(%v) = %d, want %d", tt.src, got, tt.want)
		}
	}
}
