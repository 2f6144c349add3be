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

//go:build flassert

package assert

import "fmt"

// Enabled reports whether length assertions are compiled in.
const Enabled = true

// BatchLen panics unless n is exactly fl.BatchLen.
func BatchLen(n int) {
	if n != 1024 {
		panic(fmt.Errorf("fastlanes: expected a 1024-element batch, got %d", n))
	}
}

// PackedLen panics unless got equals want.
func PackedLen(got, want int) {
	if got != want {
		panic(fmt.Errorf("fastlanes: expected a %d-element packed buffer, got %d", want, got))
	}
}
