/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"math"
	"testing"

	"shapegeom/internal/geometry"
	"shapegeom/internal/style"
	"shapegeom/internal/vector"
)

func TestBounds_Rectangle100x60(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	want := geometry.R(-50, -30, 100, 60)
	if got := s.LooseBounds(); got != want {
		t.Fatalf("loose: got %v want %v", got, want)
	}
	if got := s.TightBounds(); got != want {
		t.Fatalf("tight: got %v want %v", got, want)
	}
}

func TestBounds_QuarterTurnSwapsAxes(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	s.SetAngle(900)
	want := geometry.R(-30, -50, 60, 100)
	if got := s.LooseBounds(); got != want {
		t.Fatalf("loose: got %v want %v", got, want)
	}
	if got := s.TightBounds(); got != want {
		t.Fatalf("tight: got %v want %v", got, want)
	}
}

func TestBounds_InflatedByHalfLineWidth(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	s.MoveTo(10, 10)
	s.SetLineStyle(style.Stroke{Width: 4})
	want := geometry.R(-42, -22, 104, 64)
	if got := s.LooseBounds(); got != want {
		t.Fatalf("loose: got %v want %v", got, want)
	}
	if got := s.TightBounds(); got != want {
		t.Fatalf("tight: got %v want %v", got, want)
	}
	s.SetLineStyle(style.Stroke{Width: -3})
	if got := s.LooseBounds(); got != geometry.R(-40, -20, 100, 60) {
		t.Fatalf("negative width should count as zero, got %v", got)
	}
}

func TestBounds_TightWithinLooseForAllKindsAndAngles(t *testing.T) {
	for _, k := range Kinds() {
		s := New(k)
		s.MoveTo(-17, 33)
		s.SetLineStyle(style.Stroke{Width: 3})
		for a := 0; a < geometry.FullTurnTenths; a += 75 {
			s.SetAngle(a)
			loose, tight := s.LooseBounds(), s.TightBounds()
			if !tight.IsValid() || !loose.ContainsRect(tight, 1e-9) {
				t.Fatalf("%s at %d: tight %v not within loose %v", k, a, tight, loose)
			}
		}
	}
}

func TestBounds_QuarterTurnFastPathMatchesGeneral(t *testing.T) {
	for _, k := range Kinds() {
		s := New(k)
		s.MoveTo(12.5, -7.25)
		s.SetLineStyle(style.Stroke{Width: 2})
		for _, a := range []int{0, 900, 1800, 2700} {
			s.SetAngle(a)
			fast, general := s.TightBounds(), s.tightBoundsGeneral()
			if !geometry.RectEqual(fast, general, 1e-9) {
				t.Fatalf("%s at %d: fast %v general %v", k, a, fast, general)
			}
		}
	}
}

func TestBounds_TightMatchesFlattenedOutline(t *testing.T) {
	// Chords of the flattened outline lie inside the curves, so the envelope
	// of the flattened points approaches the tight bounds from inside.
	for _, k := range Kinds() {
		s := New(k)
		s.MoveTo(4, -9)
		for _, a := range []int{0, 300, 1275, 2222} {
			s.SetAngle(a)
			tight := s.TightBounds()
			m := s.Transform()
			env := geometry.InvalidRect
			local := s.Outline()
			for _, pl := range local.Flatten(512) {
				for _, p := range pl.Pts {
					q := m.Apply(p)
					env = env.Union(geometry.R(q.X, q.Y, 0, 0))
				}
			}
			if !tight.ContainsRect(env, 1e-6) {
				t.Fatalf("%s at %d: outline %v escapes tight %v", k, a, env, tight)
			}
			if !env.ContainsRect(tight.Inset(0.05, 0.05), 0) {
				t.Fatalf("%s at %d: tight %v is not tight around %v", k, a, tight, env)
			}
		}
	}
}

func TestBounds_CircleIgnoresRotation(t *testing.T) {
	s := NewSized(Circle, 80, 80)
	for _, a := range []int{0, 123, 450, 3001} {
		s.SetAngle(a)
		if got := s.TightBounds(); !geometry.RectEqual(got, geometry.R(-40, -40, 80, 80), 1e-9) {
			t.Fatalf("angle %d: got %v", a, got)
		}
	}
}

func TestBounds_RotatedRectangleTightEqualsLoose(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	s.SetAngle(450)
	if !geometry.RectEqual(s.TightBounds(), s.LooseBounds(), 1e-9) {
		t.Fatalf("polygon tight bounds should equal the rotated extent")
	}
	e := NewSized(Ellipse, 100, 60)
	e.SetAngle(450)
	tight, loose := e.TightBounds(), e.LooseBounds()
	half := math.Sqrt((50*50 + 30*30) / 2.0)
	if !geometry.RectEqual(tight, geometry.R(-half, -half, 2*half, 2*half), 1e-9) {
		t.Fatalf("rotated ellipse: got %v", tight)
	}
	if tight.W >= loose.W {
		t.Fatalf("rotated ellipse tight bounds should be smaller than loose")
	}
}

func TestBounds_TriangleUsesCentroidOrigin(t *testing.T) {
	s := NewSized(Triangle, 90, 60)
	if got := s.LooseBounds(); got != geometry.R(-45, -40, 90, 60) {
		t.Fatalf("got %v", got)
	}
	s.SetAngle(1800)
	if got := s.TightBounds(); !geometry.RectEqual(got, geometry.R(-45, -20, 90, 60), 1e-12) {
		t.Fatalf("half turn: got %v", got)
	}
}

func TestBuilders_DatabaseRingsStayAboveBottomCap(t *testing.T) {
	s := NewSized(Database, 60, 80)
	o := s.Outline()
	if n := o.Figures(); n != 2+DefaultRings {
		t.Fatalf("expected body, front arc and %d rings, got %d figures", DefaultRings, n)
	}
	s.SetRings(100)
	o = s.Outline()
	top, bottom := databaseCaps(s.d)
	rings := 0
	for seg := range o.Segments() {
		if seg.Op != vector.ArcTo {
			continue
		}
		box := seg.ArcBox()
		if box == top || box == bottom {
			continue
		}
		rings++
		if box.Bottom() >= bottom.Center().Y {
			t.Fatalf("ring %v reaches the bottom cap", box)
		}
	}
	if rings != 6 {
		t.Fatalf("expected 6 rings to fit, got %d", rings)
	}
}

func TestBuilders_RoundedBoxZeroRadiusIsPolygon(t *testing.T) {
	s := NewSized(RoundedBox, 100, 60)
	s.SetCornerRadiusFactor(0)
	o := s.Outline()
	r := NewSized(Rectangle, 100, 60).Outline()
	if !o.Equal(&r) {
		t.Fatalf("zero radius should build the rectangle polygon")
	}
	s.SetCornerRadiusFactor(0.9)
	if s.CornerRadiusFactor() != 0.5 {
		t.Fatalf("factor should clamp to 0.5, got %v", s.CornerRadiusFactor())
	}
}

func TestBuilders_TerminatorCapsFollowShortSide(t *testing.T) {
	wide := NewSized(Terminator, 100, 40)
	first, second := terminatorCaps(wide.d)
	if first != geometry.R(-50, -20, 40, 40) || second != geometry.R(10, -20, 40, 40) {
		t.Fatalf("wide caps: %v %v", first, second)
	}
	tall := NewSized(Terminator, 40, 100)
	first, second = terminatorCaps(tall.d)
	if first != geometry.R(-20, -50, 40, 40) || second != geometry.R(-20, 10, 40, 40) {
		t.Fatalf("tall caps: %v %v", first, second)
	}
	if b := tall.TightBounds(); !geometry.RectEqual(b, geometry.R(-20, -50, 40, 100), 1e-12) {
		t.Fatalf("tall bounds: %v", b)
	}
}

func TestBuilders_TableSeparators(t *testing.T) {
	s := NewSized(Table, 120, 80)
	s.SetColumns(3)
	o := s.Outline()
	if n := o.Figures(); n != 1+1+2 {
		t.Fatalf("expected frame, header and two column lines, got %d", n)
	}
	s.SetColumns(0)
	if s.Columns() != 1 {
		t.Fatalf("columns should clamp to 1")
	}
	o = s.Outline()
	if n := o.Figures(); n != 2 {
		t.Fatalf("single column table has frame and header only, got %d", n)
	}
}

func TestBuilders_DocumentWaveInsideExtent(t *testing.T) {
	s := NewSized(Document, 100, 80)
	o := s.Outline()
	b := o.Bounds()
	if b.Bottom() >= 40 || b.Top() != -40 || b.Left() != -50 || b.Right() != 50 {
		t.Fatalf("wave should stay inside the extent: %v", b)
	}
}
