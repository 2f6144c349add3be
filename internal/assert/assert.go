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

//go:build !flassert

// Package assert gates the core's length preconditions (spec §7, mode 2)
// behind the "flassert" build tag. Callers own buffer sizing; these checks
// exist only to catch mistakes during development and compile away to
// nothing otherwise, matching the teacher's own convention of gating
// expensive checks behind build constraints (hwy/dispatch_*.go gates CPU
// probing by GOARCH the same way).
package assert

// Enabled reports whether length assertions are compiled in.
const Enabled = false

// BatchLen is a no-op unless built with -tags flassert.
func BatchLen(n int) {}

// PackedLen is a no-op unless built with -tags flassert.
func PackedLen(got, want int) {}
