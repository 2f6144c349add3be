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

import "github.com/ajroetker/go-fastlanes/internal/assert"

// permTable[i] and invPermTable[i] hold the value-reordering permutation
// used by Transpose/Untranspose, and its inverse. Both are built once at
// init so every call is a straight-line copy loop with no arithmetic.
var permTable [BatchLen]int
var invPermTable [BatchLen]int

func init() {
	for i := 0; i < BatchLen; i++ {
		lane := i % 16
		order := (i / 16) % 8
		row := i / 128
		permTable[i] = lane*64 + FLOrder[order]*8 + row
	}
	for i, p := range permTable {
		invPermTable[p] = i
	}
}

// Transpose reorders u into x so that elements processed along a lane in
// FastLanes order come from monotonically adjacent positions of u. It is
// pure data movement: no arithmetic is performed on element values.
func Transpose[T Unsigned](u, x []T) {
	assert.BatchLen(len(u))
	assert.BatchLen(len(x))
	for i := 0; i < BatchLen; i++ {
		x[i] = u[permTable[i]]
	}
}

// Untranspose is the inverse of Transpose: Untranspose(Transpose(u)) == u
// and Transpose(Untranspose(x)) == x.
func Untranspose[T Unsigned](x, u []T) {
	assert.BatchLen(len(x))
	assert.BatchLen(len(u))
	for i := 0; i < BatchLen; i++ {
		u[i] = x[invPermTable[i]]
	}
}
