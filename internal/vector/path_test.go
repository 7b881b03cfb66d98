/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"testing"

	"shapegeom/internal/geometry"
)

func TestPath_PolygonBounds(t *testing.T) {
	var p Path
	p.AddPolygon(Pt{X: 0, Y: 0}, Pt{X: 10, Y: 0}, Pt{X: 0, Y: 10})

	b := p.Bounds()
	if b.X != 0 || b.Y != 0 || b.W != 10 || b.H != 10 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
	if p.Figures() != 1 {
		t.Fatalf("expected one figure, got %d", p.Figures())
	}
	n := 0
	for s := range p.Segments() {
		n++
		if n == 3 && (s.Op != Close || s.End() != (Pt{X: 0, Y: 0})) {
			t.Fatalf("third segment should close the triangle: %+v", s)
		}
	}
	if n != 3 {
		t.Fatalf("expected 3 segments, got %d", n)
	}
}

func TestPath_CubicBoundsAreExact(t *testing.T) {
	var p Path
	p.MoveTo(Pt{X: 0, Y: 0})
	p.CubicTo(Pt{X: 0, Y: 10}, Pt{X: 10, Y: 10}, Pt{X: 10, Y: 0})

	b := p.Bounds()
	if !geometry.RectEqual(b, geometry.FromLTRB(0, 0, 10, 7.5), 1e-9) {
		t.Fatalf("unexpected bounds: %+v", b)
	}
}

func TestPath_ArcToInsertsConnectingLine(t *testing.T) {
	var p Path
	p.MoveTo(Pt{X: -20, Y: 0})
	p.ArcTo(geometry.R(-10, -10, 20, 20), 0, 180)
	if len(p.Cmds) != 3 || p.Cmds[1].Op != LineTo {
		t.Fatalf("expected move, line, arc; got %s", p.String())
	}
	if got := p.Cmds[1].Data; got[0] != 10 || got[1] != 0 {
		t.Fatalf("connecting line should end at arc start, got %v", got[:2])
	}
}

func TestPath_EllipseBounds(t *testing.T) {
	var p Path
	p.AddEllipse(geometry.R(-50, -20, 100, 40))
	b := p.Bounds()
	if !geometry.RectEqual(b, geometry.FromLTRB(-50, -20, 50, 20), 1e-9) {
		t.Fatalf("unexpected ellipse bounds: %+v", b)
	}
	rb := p.RotatedBounds(Pt{}, 90)
	if !geometry.RectEqual(rb, geometry.FromLTRB(-20, -50, 20, 50), 1e-9) {
		t.Fatalf("unexpected rotated bounds: %+v", rb)
	}
}

func TestPath_MultipleFigures(t *testing.T) {
	var p Path
	p.AddPolygon(Pt{X: 0, Y: 0}, Pt{X: 10, Y: 0}, Pt{X: 10, Y: 10}, Pt{X: 0, Y: 10})
	p.AddLine(Pt{X: 0, Y: 3}, Pt{X: 10, Y: 3})
	if p.Figures() != 2 {
		t.Fatalf("expected 2 figures, got %d", p.Figures())
	}
	lines := p.Flatten(0)
	if len(lines) != 2 || !lines[0].Closed || lines[1].Closed {
		t.Fatalf("unexpected flatten result: %+v", lines)
	}
	if len(lines[0].Pts) != 4 {
		t.Fatalf("closed square should keep 4 vertices, got %d", len(lines[0].Pts))
	}
}

func TestPath_FlattenEllipseStaysOnCurve(t *testing.T) {
	var p Path
	p.AddEllipse(geometry.R(-10, -10, 20, 20))
	lines := p.Flatten(4)
	if len(lines) != 1 || !lines[0].Closed {
		t.Fatalf("expected one closed polyline: %+v", lines)
	}
	for _, q := range lines[0].Pts {
		if d := q.Dist(Pt{}); !geometry.EqualWithin(d, 10, 1e-9) {
			t.Fatalf("flattened point %+v off circle (%v)", q, d)
		}
	}
}

func TestPath_CubicsApproximateArc(t *testing.T) {
	var p Path
	p.AddEllipse(geometry.R(-10, -10, 20, 20))
	c := p.Cubics()
	for _, cmd := range c.Cmds {
		if cmd.Op == ArcTo {
			t.Fatalf("arc survived conversion")
		}
	}
	for _, pl := range c.Flatten(8) {
		for _, q := range pl.Pts {
			if d := q.Dist(Pt{}); !geometry.EqualWithin(d, 10, 0.01) {
				t.Fatalf("cubic approximation too far off: %+v (%v)", q, d)
			}
		}
	}
}

func TestPath_TransformTranslates(t *testing.T) {
	var p Path
	p.AddPolygon(Pt{X: 0, Y: 0}, Pt{X: 10, Y: 0}, Pt{X: 10, Y: 5})
	q := p.Transform(geometry.Translate(5, 5))
	b := q.Bounds()
	if b.X != 5 || b.Y != 5 || b.W != 10 || b.H != 5 {
		t.Fatalf("unexpected transformed bounds: %+v", b)
	}
}

func TestPath_EmptyBoundsInvalid(t *testing.T) {
	var p Path
	if !p.Empty() {
		t.Fatalf("zero path should be empty")
	}
	if p.Bounds().IsValid() {
		t.Fatalf("empty path bounds should be invalid")
	}
}
