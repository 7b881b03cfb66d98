/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Path commands and shapes.

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"shapegeom/internal/geometry"
)

type Pt = geometry.Pt
type Rect = geometry.Rect

type PathOp uint8

const (
	MoveTo  PathOp = iota
	LineTo         // (x, y)
	ArcTo          // elliptical arc (boxX, boxY, boxW, boxH, startDeg, sweepDeg)
	CubicTo        // cubic bezier (cx1, cy1, cx2, cy2, x, y)
	Close
)

func (op PathOp) String() string {
	switch op {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case ArcTo:
		return "A"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	}
	return "?" + strconv.Itoa(int(op))
}

type PathCmd struct {
	Op   PathOp
	Data [6]float64 // enough for arc and cubic; unused slots are zero
}

// Path is an outline in shape-local coordinates. A path may hold several
// sub-figures, each started by MoveTo and optionally terminated by Close.
// Arcs connect to the current point with an implicit straight line, which
// ArcTo records as an explicit LineTo so consumers never have to infer it.
type Path struct {
	Cmds []PathCmd

	cur      Pt
	figStart Pt
	open     bool
}

func (p *Path) MoveTo(pt Pt) {
	p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Data: [6]float64{pt.X, pt.Y}})
	p.cur, p.figStart, p.open = pt, pt, true
}

func (p *Path) LineTo(pt Pt) {
	if !p.open {
		p.MoveTo(pt)
		return
	}
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Data: [6]float64{pt.X, pt.Y}})
	p.cur = pt
}

func (p *Path) CubicTo(c1, c2, end Pt) {
	if !p.open {
		p.MoveTo(p.cur)
	}
	p.Cmds = append(p.Cmds, PathCmd{Op: CubicTo, Data: [6]float64{c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y}})
	p.cur = end
}

// ArcTo appends the arc of the ellipse inscribed in box from start degrees
// over sweep degrees (clockwise on screen for positive sweep).
func (p *Path) ArcTo(box Rect, start, sweep float64) {
	s := geometry.ArcPoint(box, start)
	switch {
	case !p.open:
		p.MoveTo(s)
	case p.cur != s:
		p.LineTo(s)
	}
	p.Cmds = append(p.Cmds, PathCmd{Op: ArcTo, Data: [6]float64{box.X, box.Y, box.W, box.H, start, sweep}})
	p.cur = geometry.ArcPoint(box, start+sweep)
}

func (p *Path) Close() {
	if !p.open {
		return
	}
	p.Cmds = append(p.Cmds, PathCmd{Op: Close})
	p.cur = p.figStart
	p.open = false
}

// EndFigure leaves the current sub-figure open; the next drawing command
// starts a new one.
func (p *Path) EndFigure() { p.open = false }

// AddPolygon appends a closed polygon sub-figure.
func (p *Path) AddPolygon(pts ...Pt) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	p.Close()
}

// AddLine appends an open two-point sub-figure.
func (p *Path) AddLine(a, b Pt) {
	p.MoveTo(a)
	p.LineTo(b)
	p.open = false
}

// AddEllipse appends a closed full ellipse inscribed in box.
func (p *Path) AddEllipse(box Rect) {
	p.open = false
	p.ArcTo(box, 0, 360)
	p.Close()
}

func (p *Path) Empty() bool { return p == nil || len(p.Cmds) == 0 }

// Equal reports whether both paths hold the same command sequence.
func (p *Path) Equal(o *Path) bool { return slices.Equal(p.Cmds, o.Cmds) }

// Figures returns the number of sub-figures.
func (p *Path) Figures() int {
	n := 0
	for _, c := range p.Cmds {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

// Segment is one drawable piece of a path with its start point resolved.
// For Close, Data holds the figure start as the end point.
type Segment struct {
	Op   PathOp
	From Pt
	Data [6]float64
}

// End returns the end point of the segment.
func (s Segment) End() Pt {
	switch s.Op {
	case LineTo, Close:
		return Pt{X: s.Data[0], Y: s.Data[1]}
	case CubicTo:
		return Pt{X: s.Data[4], Y: s.Data[5]}
	case ArcTo:
		return geometry.ArcPoint(s.ArcBox(), s.Data[4]+s.Data[5])
	}
	return s.From
}

// ArcBox returns the bounding box of an arc segment's ellipse.
func (s Segment) ArcBox() Rect { return geometry.R(s.Data[0], s.Data[1], s.Data[2], s.Data[3]) }

// Segments walks the drawable segments. MoveTo is folded into the following
// segment's From; Close yields a closing line when the figure is not already
// back at its start.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var cur, start Pt
		for _, c := range p.Cmds {
			switch c.Op {
			case MoveTo:
				cur = Pt{X: c.Data[0], Y: c.Data[1]}
				start = cur
				continue
			case Close:
				if cur == start {
					continue
				}
				seg := Segment{Op: Close, From: cur, Data: [6]float64{start.X, start.Y}}
				cur = start
				if !yield(seg) {
					return
				}
				continue
			}
			seg := Segment{Op: c.Op, From: cur, Data: c.Data}
			cur = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

// Bounds returns the exact local bounding box of the path. An empty path
// yields geometry.InvalidRect.
func (p *Path) Bounds() Rect { return p.RotatedBounds(Pt{}, 0) }

// RotatedBounds returns the exact bounding box of the path after rotating it
// by angleDeg around pivot. Beziers are bounded through their rotated control
// polygon, arcs through the rotated ellipse extrema.
func (p *Path) RotatedBounds(pivot Pt, angleDeg float64) Rect {
	out := geometry.InvalidRect
	rot := func(q Pt) Pt { return geometry.RotatePoint(pivot, angleDeg, q) }
	for _, c := range p.Cmds {
		if c.Op == MoveTo {
			q := rot(Pt{X: c.Data[0], Y: c.Data[1]})
			out = out.Union(geometry.R(q.X, q.Y, 0, 0))
		}
	}
	for s := range p.Segments() {
		switch s.Op {
		case LineTo, Close:
			out = out.Union(geometry.EnvelopeOf(rot(s.From), rot(s.End())))
		case CubicTo:
			out = out.Union(geometry.CubicBounds(
				rot(s.From),
				rot(Pt{X: s.Data[0], Y: s.Data[1]}),
				rot(Pt{X: s.Data[2], Y: s.Data[3]}),
				rot(s.End())))
		case ArcTo:
			out = out.Union(geometry.RotatedArcBounds(s.ArcBox(), s.Data[4], s.Data[5], pivot, angleDeg))
		}
	}
	return out
}

// String renders the path in a compact SVG-like notation.
func (p *Path) String() string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Op.String())
		n := 0
		switch c.Op {
		case MoveTo, LineTo:
			n = 2
		case ArcTo, CubicTo:
			n = 6
		}
		for _, v := range c.Data[:n] {
			fmt.Fprintf(&b, " %g", v)
		}
	}
	return b.String()
}
