/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"math"

	"shapegeom/internal/geometry"
)

// Polyline is a flattened sub-figure.
type Polyline struct {
	Pts    []Pt
	Closed bool
}

// DefaultFlattenSegments is the number of line pieces used per bezier and per
// quarter of an arc when flattening.
const DefaultFlattenSegments = 16

// Flatten approximates the path by polylines, one per sub-figure. segments
// controls the resolution of curved pieces; values < 1 use the default.
func (p *Path) Flatten(segments int) []Polyline {
	if segments < 1 {
		segments = DefaultFlattenSegments
	}
	var out []Polyline
	var cur *Polyline
	for _, c := range p.Cmds {
		switch c.Op {
		case MoveTo:
			out = append(out, Polyline{Pts: []Pt{{X: c.Data[0], Y: c.Data[1]}}})
			cur = &out[len(out)-1]
		case LineTo:
			if cur == nil {
				continue
			}
			cur.Pts = append(cur.Pts, Pt{X: c.Data[0], Y: c.Data[1]})
		case CubicTo:
			if cur == nil {
				continue
			}
			p0 := cur.Pts[len(cur.Pts)-1]
			c1, c2 := Pt{X: c.Data[0], Y: c.Data[1]}, Pt{X: c.Data[2], Y: c.Data[3]}
			end := Pt{X: c.Data[4], Y: c.Data[5]}
			for i := 1; i <= segments; i++ {
				cur.Pts = append(cur.Pts, geometry.CubicPoint(p0, c1, c2, end, float64(i)/float64(segments)))
			}
		case ArcTo:
			if cur == nil {
				continue
			}
			box := geometry.R(c.Data[0], c.Data[1], c.Data[2], c.Data[3])
			start, sweep := c.Data[4], c.Data[5]
			n := int(math.Ceil(math.Abs(sweep)/90)) * segments
			if n < 1 {
				n = 1
			}
			for i := 1; i <= n; i++ {
				cur.Pts = append(cur.Pts, geometry.ArcPoint(box, start+sweep*float64(i)/float64(n)))
			}
		case Close:
			if cur != nil {
				cur.Closed = true
				if last := cur.Pts[len(cur.Pts)-1]; len(cur.Pts) > 1 && geometry.PtEqual(last, cur.Pts[0]) {
					cur.Pts = cur.Pts[:len(cur.Pts)-1]
				}
			}
			cur = nil
		}
	}
	return out
}

// Cubics returns a copy of the path with every arc replaced by cubic
// beziers of at most 90 degrees each. The result can be transformed by any
// affine matrix without loss.
func (p *Path) Cubics() Path {
	var out Path
	for s := range p.segmentsWithMoves() {
		switch s.Op {
		case MoveTo:
			out.MoveTo(s.From)
		case LineTo:
			out.LineTo(s.End())
		case CubicTo:
			out.CubicTo(Pt{X: s.Data[0], Y: s.Data[1]}, Pt{X: s.Data[2], Y: s.Data[3]}, s.End())
		case ArcTo:
			appendArcCubics(&out, s.ArcBox(), s.Data[4], s.Data[5])
		case Close:
			out.Close()
		}
	}
	return out
}

// Transform returns the path mapped through m. Arcs are converted to cubics
// first since a rotated ellipse cannot be described by an axis-aligned box.
func (p *Path) Transform(m geometry.Affine2D) Path {
	src := p.Cubics()
	var out Path
	for _, c := range src.Cmds {
		switch c.Op {
		case MoveTo:
			out.MoveTo(m.Apply(Pt{X: c.Data[0], Y: c.Data[1]}))
		case LineTo:
			out.LineTo(m.Apply(Pt{X: c.Data[0], Y: c.Data[1]}))
		case CubicTo:
			out.CubicTo(
				m.Apply(Pt{X: c.Data[0], Y: c.Data[1]}),
				m.Apply(Pt{X: c.Data[2], Y: c.Data[3]}),
				m.Apply(Pt{X: c.Data[4], Y: c.Data[5]}))
		case Close:
			out.Close()
		}
	}
	return out
}

// segmentsWithMoves is Segments plus the MoveTo and raw Close commands, used
// when a path has to be rebuilt command by command.
func (p *Path) segmentsWithMoves() func(func(Segment) bool) {
	return func(yield func(Segment) bool) {
		var cur Pt
		for _, c := range p.Cmds {
			s := Segment{Op: c.Op, From: cur, Data: c.Data}
			switch c.Op {
			case MoveTo:
				cur = Pt{X: c.Data[0], Y: c.Data[1]}
				s.From = cur
			case Close:
			default:
				cur = s.End()
			}
			if !yield(s) {
				return
			}
		}
	}
}

func appendArcCubics(out *Path, box Rect, start, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) / 90))
	if n < 1 {
		n = 1
	}
	c := box.Center()
	// unit circle arcs mapped onto the box's ellipse
	m := geometry.Translate(c.X, c.Y).Mul(geometry.Scale(box.W/2, box.H/2))
	step := geometry.DegToRad(sweep / float64(n))
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := geometry.DegToRad(start)
	for i := 0; i < n; i++ {
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		out.CubicTo(
			m.Apply(Pt{X: c0 - k*s0, Y: s0 + k*c0}),
			m.Apply(Pt{X: c1 + k*s1, Y: s1 - k*c1}),
			m.Apply(Pt{X: c1, Y: s1}),
		)
		a0 = a1
	}
}
