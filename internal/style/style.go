/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package style carries the stroke and fill values the geometry core reads
// from its style collaborator. Only the line width influences geometry; the
// colours are used by preview exports.
package style

import (
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}
)

type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes how an outline is drawn.
type Stroke struct {
	Color colorful.Color
	Width float64
	Cap   LineCap
	Join  LineJoin
	Dash  []float64
}

// LineWidth implements shape.LineStyle.
func (s Stroke) LineWidth() float64 {
	if s.Width < 0 {
		return 0
	}
	return s.Width
}

type Fill struct {
	Color   colorful.Color
	Enabled bool
}

// DefaultStroke is a one unit black line.
func DefaultStroke() Stroke { return Stroke{Color: Black, Width: 1, Join: JoinMiter} }

// Palette returns n visually distinct colours in a fixed order so previews
// are reproducible.
func Palette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := range out {
		h := float64(i) * 360 / float64(n)
		out[i] = colorful.Hcl(h, 0.6, 0.55).Clamped()
	}
	return out
}

// Hex formats c as #rrggbb.
func Hex(c colorful.Color) string { return c.Clamped().Hex() }

// RGB255 returns the 8-bit channels of c.
func RGB255(c colorful.Color) (int, int, int) {
	r, g, b := c.Clamped().RGB255()
	return int(r), int(g), int(b)
}

// ParseHex parses #rrggbb, falling back to black for malformed input.
func ParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black
	}
	return c
}
