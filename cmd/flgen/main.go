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

// Command flgen generates a branch-free, fully-unrolled pack or unpack
// specialization for one (element type, bit width) pair.
//
// spec.md §9 frames the bit-pack kernel as "monomorphisation across a
// small product space" of 4 element types and up to 65 widths, and names
// code generation as one valid strategy for it. bitpack.BasePack and
// bitpack.BaseUnpack implement that space with one runtime-width loop
// per type instead — see DESIGN.md for why that's what's wired into the
// package. flgen exists for the case the general loop's per-row
// division and modulo aren't good enough: given a specific (T, W) a
// caller has profiled as hot, it emits the literal unrolled arm spec §9
// describes, with curr/next/shift baked in as constants so there is no
// division left at runtime.
//
// Usage:
//
//	flgen -type uint32 -width 12 -op pack
//	flgen -type uint32 -width 12 -op unpack -output z_unpack_u32_w12.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	typeName = flag.String("type", "", "element type: uint8, uint16, uint32, or uint64 (required)")
	width    = flag.Int("width", -1, "bit width W, 0 <= W <= TBits(type) (required)")
	op       = flag.String("op", "pack", "pack or unpack")
	output   = flag.String("output", "", "output file (default: stdout)")
)

func main() {
	flag.Parse()

	tbits, ok := bitsOf(*typeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "flgen: -type must be one of uint8, uint16, uint32, uint64, got %q\n", *typeName)
		os.Exit(1)
	}
	if *width < 0 || *width > tbits {
		fmt.Fprintf(os.Stderr, "flgen: -width must be in [0,%d] for %s, got %d\n", tbits, *typeName, *width)
		os.Exit(1)
	}

	var src string
	var err error
	switch *op {
	case "pack":
		src, err = generatePack(*typeName, tbits, *width)
	case "unpack":
		src, err = generateUnpack(*typeName, tbits, *width)
	default:
		fmt.Fprintf(os.Stderr, "flgen: -op must be pack or unpack, got %q\n", *op)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "flgen: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*output, []byte(src), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "flgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "flgen: wrote %s\n", *output)
}

func bitsOf(t string) (int, bool) {
	switch t {
	case "uint8":
		return 8, true
	case "uint16":
		return 16, true
	case "uint32":
		return 32, true
	case "uint64":
		return 64, true
	default:
		return 0, false
	}
}
