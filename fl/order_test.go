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

func TestFLOrderSelfInverse(t *testing.T) {
	for i := range FLOrder {
		if FLOrder[FLOrder[i]] != i {
			t.Errorf("FLOrder[FLOrder[%d]] = %d, want %d", i, FLOrder[FLOrder[i]], i)
		}
	}
}

func TestIdxInvIdxRoundtrip(t *testing.T) {
	for _, tbits := range []int{8, 16, 32, 64} {
		lanes := BatchLen / tbits
		seen := make([]bool, BatchLen)
		for row := 0; row < tbits; row++ {
			for lane := 0; lane < lanes; lane++ {
				i := Idx(row, lane)
				if i < 0 || i >= BatchLen {
					t.Fatalf("tbits=%d row=%d lane=%d: idx %d out of range", tbits, row, lane, i)
				}
				if seen[i] {
					t.Fatalf("tbits=%d: idx %d produced twice", tbits, i)
				}
				seen[i] = true

				gotRow, gotLane := InvIdx(tbits, i)
				if gotRow != row || gotLane != lane {
					t.Errorf("tbits=%d: InvIdx(%d)=(%d,%d), want (%d,%d)", tbits, i, gotRow, gotLane, row, lane)
				}
			}
		}
		for i, s := range seen {
			if !s {
				t.Errorf("tbits=%d: idx %d never produced (not a bijection)", tbits, i)
			}
		}
	}
}

func TestTBitsLanes(t *testing.T) {
	cases := []struct {
		tbits, lanes int
	}{
		{TBits[uint8](), Lanes[uint8]()},
		{TBits[uint16](), Lanes[uint16]()},
		{TBits[uint32](), Lanes[uint32]()},
		{TBits[uint64](), Lanes[uint64]()},
	}
	want := []struct{ tbits, lanes int }{
		{8, 128}, {16, 64}, {32, 32}, {64, 16},
	}
	for i, c := range cases {
		if c.tbits != want[i].tbits || c.lanes != want[i].lanes {
			t.Errorf("case %d: got tbits=%d lanes=%d, want tbits=%d lanes=%d", i, c.tbits, c.lanes, want[i].tbits, want[i].lanes)
		}
	}
}

func TestMask(t *testing.T) {
	if Mask[uint32](0) != 0 {
		t.Errorf("Mask[uint32](0) = %d, want 0", Mask[uint32](0))
	}
	if Mask[uint32](4) != 0xF {
		t.Errorf("Mask[uint32](4) = %#x, want 0xF", Mask[uint32](4))
	}
	if Mask[uint32](32) != 0xFFFFFFFF {
		t.Errorf("Mask[uint32](32) = %#x, want 0xFFFFFFFF", Mask[uint32](32))
	}
	if Mask[uint8](8) != 0xFF {
		t.Errorf("Mask[uint8](8) = %#x, want 0xFF", Mask[uint8](8))
	}
}
