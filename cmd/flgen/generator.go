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

import (
	"bytes"
	"fmt"
	"text/template"
)

// step describes what happens at one row of the pack/unpack loop once W
// is a compile-time constant. It mirrors the curr/next/rem arithmetic
// internal/kernel.Pack and Unpack compute at runtime (see kernel.go),
// folded into per-row constants so the generated loop has none left.
type step struct {
	Row      int
	Shift    int
	Crosses  bool // word index changes after this row (next != curr)
	CurrWord int
	NextWord int
	LowBits  int // bits of this element already present in the current word
	RemBits  int // bits of this element carried into the next word
	ReadsNext bool // whether NextWord is a valid word index (< w)
	MaskLow  uint64
	MaskRem  uint64
}

func computeSteps(tbits, w int) []step {
	steps := make([]step, tbits)
	for row := 0; row < tbits; row++ {
		curr := (row * w) / tbits
		next := ((row + 1) * w) / tbits
		rem := ((row + 1) * w) % tbits
		lowBits := w - rem
		s := step{
			Row:      row,
			Shift:    (row * w) % tbits,
			Crosses:  next != curr,
			CurrWord: curr,
			NextWord: next,
			LowBits:  lowBits,
			RemBits:  rem,
		}
		s.ReadsNext = s.Crosses && next < w
		s.MaskLow = maskOf(lowBits)
		s.MaskRem = maskOf(rem)
		steps[row] = s
	}
	return steps
}

func maskOf(bits int) uint64 {
	if bits <= 0 {
		return 0
	}
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits) - 1
}

type tmplData struct {
	TypeName string
	TBits    int
	Width    int
	Lanes    int
	MaskFull uint64
	Steps    []step
	FuncName string
}

func newTmplData(typeName string, tbits, w int, op string) tmplData {
	return tmplData{
		TypeName: typeName,
		TBits:    tbits,
		Width:    w,
		Lanes:    1024 / tbits,
		MaskFull: maskOf(w),
		Steps:    computeSteps(tbits, w),
		FuncName: fmt.Sprintf("%s%s_%s_w%d", op[:1], op[1:], typeName, w),
	}
}

var packTmpl = template.Must(template.New("pack").Parse(`// Code generated by flgen -type {{.TypeName}} -width {{.Width}} -op pack; DO NOT EDIT.

package generated

// {{.FuncName}} packs one batch of {{.TypeName}} at a fixed width of {{.Width}}
// bits per element. src is expected to be called in FastLanes row/lane
// order (the caller typically wraps a slice already arranged with
// fl.Idx); dst must hold fl.PackedLen[{{.TypeName}}]({{.Width}}) elements.
func {{.FuncName}}(src func(row, lane int) {{.TypeName}}, dst []{{.TypeName}}) {
	const mask = {{.TypeName}}({{.MaskFull}})
	for lane := 0; lane < {{.Lanes}}; lane++ {
		var tmp {{.TypeName}}
{{range .Steps}}		v{{.Row}} := src({{.Row}}, lane) & mask
{{if eq .Row 0}}		tmp = v{{.Row}}
{{else}}		tmp |= v{{.Row}} << {{.Shift}}
{{end}}{{if .Crosses}}		dst[{{.CurrWord}}*{{$.Lanes}}+lane] = tmp
		tmp = v{{.Row}} >> {{.LowBits}}
{{end}}{{end}}	}
}
`))

var unpackTmpl = template.Must(template.New("unpack").Parse(`// Code generated by flgen -type {{.TypeName}} -width {{.Width}} -op unpack; DO NOT EDIT.

package generated

// {{.FuncName}} unpacks one batch of {{.TypeName}} that was packed at a
// fixed width of {{.Width}} bits per element (fl.PackedLen[{{.TypeName}}]({{.Width}})
// elements long). sink is called once per (row, lane) in packing order.
func {{.FuncName}}(src []{{.TypeName}}, sink func(row, lane int, elem {{.TypeName}})) {
	for lane := 0; lane < {{.Lanes}}; lane++ {
		reg := src[lane]
{{range .Steps}}{{if .Crosses}}		elem{{.Row}} := (reg >> {{.Shift}}) & {{$.TypeName}}({{.MaskLow}})
{{if .ReadsNext}}		reg = src[{{.NextWord}}*{{$.Lanes}}+lane]
		elem{{.Row}} |= (reg & {{$.TypeName}}({{.MaskRem}})) << {{.LowBits}}
{{end}}{{else}}		elem{{.Row}} := (reg >> {{.Shift}}) & {{$.TypeName}}({{$.MaskFull}})
{{end}}		sink({{.Row}}, lane, elem{{.Row}})
{{end}}	}
}
`))

func generatePack(typeName string, tbits, w int) (string, error) {
	if w == 0 || w == tbits {
		return "", fmt.Errorf("w=%d for %s is handled directly by bitpack.BasePack's constant-width arms, nothing to generate", w, typeName)
	}
	var buf bytes.Buffer
	if err := packTmpl.Execute(&buf, newTmplData(typeName, tbits, w, "pack")); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func generateUnpack(typeName string, tbits, w int) (string, error) {
	if w == 0 || w == tbits {
		return "", fmt.Errorf("w=%d for %s is handled directly by bitpack.BaseUnpack's constant-width arms, nothing to generate", w, typeName)
	}
	var buf bytes.Buffer
	if err := unpackTmpl.Execute(&buf, newTmplData(typeName, tbits, w, "unpack")); err != nil {
		return "", err
	}
	return buf.String(), nil
}
