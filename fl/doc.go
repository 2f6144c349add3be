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

// Package fl holds the primitives shared by every FastLanes kernel package:
// the element type constraint, the FL_ORDER permutation and the index maps
// it induces, and the transpose permutation table.
//
// Nothing in this package allocates per call or retains state beyond the
// two precomputed 1024-entry tables built once at init.
package fl
