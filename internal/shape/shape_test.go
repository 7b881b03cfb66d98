/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"errors"
	"testing"

	"shapegeom/internal/geometry"
)

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if k, err := ParseKind("  RoundedBox "); err != nil || k != RoundedBox {
		t.Fatalf("expected case-insensitive match, got %v, %v", k, err)
	}
	if _, err := ParseKind("blob"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown kind, got %v", err)
	}
}

func TestKinds_AllHaveDispatchEntries(t *testing.T) {
	if len(Kinds()) != len(kinds) {
		t.Fatalf("Kinds() lists %d kinds, table has %d", len(Kinds()), len(kinds))
	}
	for _, k := range Kinds() {
		sp := kinds[k]
		if sp.build == nil || len(sp.points) == 0 {
			t.Fatalf("%s: incomplete dispatch entry", k)
		}
		s := New(k)
		if s.Width() <= 0 || s.Height() <= 0 {
			t.Fatalf("%s: default size must be positive, got %vx%v", k, s.Width(), s.Height())
		}
		if sp.regular && s.Width() != s.Height() {
			t.Fatalf("%s: regular kind with unequal sides", k)
		}
	}
}

func TestCapability_String(t *testing.T) {
	if got := (Resize | Connect).String(); got != "resize|connect" {
		t.Fatalf("unexpected %q", got)
	}
	if got := NoCapability.String(); got != "none" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestControlPoint_CapabilityQueries(t *testing.T) {
	s := New(Ellipse)
	ok, err := s.HasControlPointCapability(TopLeft, Resize)
	if err != nil || !ok {
		t.Fatalf("ellipse corner should resize: %v %v", ok, err)
	}
	ok, err = s.HasControlPointCapability(TopLeft, Connect)
	if err != nil || ok {
		t.Fatalf("ellipse corner lies off the outline and must not connect: %v %v", ok, err)
	}
	ok, _ = s.HasControlPointCapability(MiddleCenter, Resize)
	if ok {
		t.Fatalf("reference point must never resize")
	}
	ok, _ = s.HasControlPointCapability(MiddleCenter, Rotate|Reference)
	if !ok {
		t.Fatalf("reference point should rotate")
	}
	ok, _ = s.HasControlPointCapability(OutlinePoint2, Connect)
	if !ok {
		t.Fatalf("outline point should connect")
	}
}

func TestControlPoint_UnknownIDIsInvalidArgument(t *testing.T) {
	s := New(Rectangle)
	_, err := s.HasControlPointCapability(99, Connect)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	var cpe *ControlPointError
	if !errors.As(err, &cpe) || cpe.ID != 99 || cpe.Kind != Rectangle {
		t.Fatalf("expected *ControlPointError for id 99, got %#v", err)
	}
	if _, err := s.ControlPointPosition(OutlinePoint1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("rectangle defines no outline points, got %v", err)
	}
	// ids removed from the base table are unknown as well
	tri := New(Triangle)
	if _, err := tri.HasControlPointCapability(TopLeft, Resize); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("triangle has no top-left point, got %v", err)
	}
}

func TestControlPoint_ConnectionToggle(t *testing.T) {
	s := New(Rectangle)
	if err := s.SetConnectionEnabled(TopLeft, false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ok, _ := s.HasControlPointCapability(TopLeft, Connect); ok {
		t.Fatalf("disabled point must not connect")
	}
	if ok, _ := s.HasControlPointCapability(TopLeft, Resize); !ok {
		t.Fatalf("disabling connections must keep resize")
	}
	if on, _ := s.ConnectionEnabled(TopLeft); on {
		t.Fatalf("expected toggle off")
	}
	_ = s.SetConnectionEnabled(TopLeft, true)
	if ok, _ := s.HasControlPointCapability(TopLeft, Connect); !ok {
		t.Fatalf("re-enabled point should connect")
	}
	// enabling never grants a capability the table lacks
	e := New(Ellipse)
	_ = e.SetConnectionEnabled(TopLeft, true)
	if ok, _ := e.HasControlPointCapability(TopLeft, Connect); ok {
		t.Fatalf("toggle must not add connect")
	}
	if err := s.SetConnectionEnabled(42, false); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestControlPoint_IndexLookup(t *testing.T) {
	for _, k := range Kinds() {
		s := New(k)
		ids := s.ControlPointIDs()
		if len(ids) != s.ControlPointCount() {
			t.Fatalf("%s: count mismatch", k)
		}
		seen := map[ControlPointID]bool{}
		for i, id := range ids {
			if seen[id] {
				t.Fatalf("%s: duplicate id %d", k, id)
			}
			seen[id] = true
			got, err := s.ControlPointIDAt(i)
			if err != nil || got != id {
				t.Fatalf("%s: IDAt(%d) = %d, %v", k, i, got, err)
			}
			idx, err := s.ControlPointIndex(id)
			if err != nil || idx != i {
				t.Fatalf("%s: Index(%d) = %d, %v", k, id, idx, err)
			}
		}
		if _, err := s.ControlPointIDAt(len(ids)); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: expected index error, got %v", k, err)
		}
	}
}

func TestControlPoint_PositionsRectangle(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	want := map[ControlPointID]geometry.Pt{
		TopLeft:      {X: -50, Y: -30},
		TopCenter:    {X: 0, Y: -30},
		MiddleRight:  {X: 50, Y: 0},
		BottomRight:  {X: 50, Y: 30},
		MiddleCenter: {X: 0, Y: 0},
	}
	for id, w := range want {
		got, err := s.ControlPointPosition(id)
		if err != nil || got != w {
			t.Fatalf("point %d: got %v (%v), want %v", id, got, err, w)
		}
	}
	s.MoveTo(10, 20)
	s.SetAngle(900)
	got, _ := s.ControlPointWorldPosition(TopLeft)
	if got != (geometry.Pt{X: 40, Y: -30}) {
		t.Fatalf("rotated world position: got %v", got)
	}
}

func TestControlPoint_TriangleCentroid(t *testing.T) {
	s := NewSized(Triangle, 90, 60)
	apex, _ := s.ControlPointPosition(TopCenter)
	if !geometry.PtEqual(apex, geometry.Pt{X: 0, Y: -40}) {
		t.Fatalf("apex at -2H/3 expected, got %v", apex)
	}
	ref, _ := s.ControlPointPosition(MiddleCenter)
	if ref != (geometry.Pt{}) {
		t.Fatalf("reference point should be the centroid, got %v", ref)
	}
	left, _ := s.ControlPointPosition(MiddleLeft)
	if !geometry.PtEqual(left, geometry.Pt{X: -22.5, Y: -10}) {
		t.Fatalf("left side midpoint expected, got %v", left)
	}
}

func TestControlPoint_ConnectPointsLieOnOutline(t *testing.T) {
	Configure(Options{FlattenSegments: 256})
	t.Cleanup(func() { Configure(Options{}) })
	for _, k := range Kinds() {
		s := New(k)
		for _, id := range s.ControlPointIDs() {
			if ok, _ := s.HasControlPointCapability(id, Connect); !ok || id == MiddleCenter || id == LedgerEnd {
				continue
			}
			p, _ := s.ControlPointPosition(id)
			if !s.Contains(p.Scale(0.98)) || s.Contains(p.Scale(1.02)) {
				t.Fatalf("%s: connection point %d at %v is not on the outline", k, id, p)
			}
		}
	}
}

func TestShape_DirtyRebuildsOnce(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	if !s.Dirty() {
		t.Fatalf("new shape should be dirty")
	}
	_ = s.Outline()
	n := s.Rebuilds()
	if n != 1 {
		t.Fatalf("expected one rebuild, got %d", n)
	}
	s.SetWidth(120)
	if !s.Dirty() {
		t.Fatalf("width change must mark the shape dirty")
	}
	o1 := s.Outline()
	o2 := s.Outline()
	if s.Rebuilds() != n+1 {
		t.Fatalf("expected exactly one rebuild after the change, got %d", s.Rebuilds()-n)
	}
	if !o1.Equal(&o2) {
		t.Fatalf("repeated reads differ")
	}
	if b := o1.Bounds(); !geometry.RectEqual(b, geometry.R(-60, -30, 120, 60), 1e-12) {
		t.Fatalf("outline does not reflect the new width: %v", b)
	}
	s.SetWidth(120)
	if s.Dirty() {
		t.Fatalf("setting the same width must not invalidate")
	}
	s.SetAngle(450)
	s.MoveTo(5, 5)
	if s.Dirty() {
		t.Fatalf("pose changes must not invalidate the local outline")
	}
	s.SetCornerRadiusFactor(0.3)
	if !s.Dirty() {
		t.Fatalf("derived parameter change must invalidate")
	}
	s.Recompute()
	if s.Dirty() {
		t.Fatalf("Recompute should clean the shape")
	}
	before := s.Rebuilds()
	s.Recompute()
	if s.Rebuilds() != before {
		t.Fatalf("Recompute on a clean shape must not rebuild")
	}
}

func TestShape_AnyReadCleansBothCaches(t *testing.T) {
	reads := map[string]func(s *Shape){
		"outline":  func(s *Shape) { _ = s.Outline() },
		"points":   func(s *Shape) { _, _ = s.ControlPointPosition(TopLeft) },
		"loose":    func(s *Shape) { _ = s.LooseBounds() },
		"tight":    func(s *Shape) { _ = s.TightBounds() },
		"contains": func(s *Shape) { _ = s.Contains(geometry.Pt{}) },
	}
	for name, read := range reads {
		s := NewSized(RoundedBox, 100, 60)
		read(s)
		if s.Dirty() {
			t.Fatalf("%s: shape still dirty after the first read", name)
		}
		if s.Rebuilds() != 1 {
			t.Fatalf("%s: expected one rebuild, got %d", name, s.Rebuilds())
		}
		s.SetHeight(80)
		_ = s.Outline()
		_, _ = s.ControlPointPosition(BottomRight)
		_ = s.TightBounds()
		if s.Rebuilds() != 2 {
			t.Fatalf("%s: expected one rebuild per change, got %d", name, s.Rebuilds())
		}
	}
}

func TestShape_OutlineIsACopy(t *testing.T) {
	s := New(Rectangle)
	o := s.Outline()
	o.Cmds[0].Data[0] = 1e6
	again := s.Outline()
	if again.Cmds[0].Data[0] == 1e6 {
		t.Fatalf("caller mutation leaked into the cache")
	}
}

func TestShape_BuildersAreDeterministic(t *testing.T) {
	for _, k := range Kinds() {
		a, b := New(k), New(k)
		pa, pb := a.Outline(), b.Outline()
		if !pa.Equal(&pb) || pa.Empty() {
			t.Fatalf("%s: builder not deterministic or empty", k)
		}
		a.SetWidth(a.Width() + 1)
		a.SetWidth(a.Width() - 1)
		pc := a.Outline()
		if !pa.Equal(&pc) {
			t.Fatalf("%s: rebuild after a round trip changed the outline", k)
		}
	}
}

func TestShape_NegativeSizeClamps(t *testing.T) {
	s := NewSized(Rectangle, -10, 30)
	if s.Width() != 0 || s.Height() != 30 {
		t.Fatalf("expected clamp to zero, got %vx%v", s.Width(), s.Height())
	}
	c := NewSized(Circle, 80, 50)
	if c.Width() != 50 || c.Height() != 50 {
		t.Fatalf("regular kind should take the smaller side, got %vx%v", c.Width(), c.Height())
	}
	c.SetHeight(70)
	if c.Width() != 70 {
		t.Fatalf("regular kind should keep sides equal, got %v", c.Width())
	}
}

func TestShape_DegenerateDimensions(t *testing.T) {
	for _, k := range Kinds() {
		s := NewSized(k, 0, 60)
		s.MoveTo(3, 4)
		if o := s.Outline(); !o.Empty() {
			t.Fatalf("%s: expected empty outline", k)
		}
		if s.LooseBounds() != geometry.InvalidRect || s.TightBounds() != geometry.InvalidRect {
			t.Fatalf("%s: expected InvalidRect", k)
		}
		if f := s.ConnectionFoot(geometry.Pt{X: 100, Y: 100}); f != (geometry.Pt{X: 3, Y: 4}) {
			t.Fatalf("%s: degenerate foot should be the reference point, got %v", k, f)
		}
		if s.Contains(geometry.Pt{X: 3, Y: 4}) {
			t.Fatalf("%s: degenerate shape must not hit", k)
		}
	}
	tbl := NewSized(Table, 100, 20)
	if o := tbl.Outline(); !o.Empty() {
		t.Fatalf("table no taller than its header must be degenerate")
	}
}

func TestShape_RotateAroundPoint(t *testing.T) {
	s := NewSized(Rectangle, 100, 60)
	s.MoveTo(100, 0)
	s.Rotate(900, 0, 0)
	if s.Angle() != 900 || s.Position() != (geometry.Pt{X: 0, Y: 100}) {
		t.Fatalf("got angle %d at %v", s.Angle(), s.Position())
	}
	s.Rotate(-900, 0, 0)
	if s.Angle() != 0 || s.Position() != (geometry.Pt{X: 100, Y: 0}) {
		t.Fatalf("round trip failed: angle %d at %v", s.Angle(), s.Position())
	}
	s.Rotate(123, 7, -3)
	s.Rotate(-123, 7, -3)
	if s.Angle() != 0 || !geometry.PtEqual(s.Position(), geometry.Pt{X: 100, Y: 0}) {
		t.Fatalf("general round trip failed: angle %d at %v", s.Angle(), s.Position())
	}
}

func TestShape_AngleNormalized(t *testing.T) {
	s := New(Rectangle)
	for in, want := range map[int]int{-900: 2700, 3600: 0, 7250: 50, -1: 3599} {
		s.SetAngle(in)
		if s.Angle() != want {
			t.Fatalf("SetAngle(%d) = %d, want %d", in, s.Angle(), want)
		}
	}
}

func TestShape_ContainsUnionOfFigures(t *testing.T) {
	tr := New(Transformer)
	tr.MoveTo(50, 50)
	primary, secondary := transformerCircles(tr.d)
	for _, c := range []geometry.Pt{primary.Center(), secondary.Center(), {}} {
		if !tr.Contains(c.Add(tr.Position())) {
			t.Fatalf("expected hit at %v", c)
		}
	}
	if tr.Contains(geometry.Pt{X: 50 + tr.Width()/2 - 0.5, Y: 50 - tr.Height()/2 + 0.5}) {
		t.Fatalf("corner of the extent lies outside both windings")
	}
}

func TestAssertions_StrictPanics(t *testing.T) {
	Configure(Options{StrictAssertions: true})
	t.Cleanup(func() { Configure(Options{}) })
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic in strict mode")
		}
	}()
	quarterTurn(geometry.R(0, 0, 1, 1), 45)
}

func TestAssertions_ReleaseFallsBack(t *testing.T) {
	if debugBuild {
		t.Skip("geomdebug builds are always strict")
	}
	r := geometry.R(1, 2, 3, 4)
	if got := quarterTurn(r, 45); got != r {
		t.Fatalf("expected fallback to the input rect, got %v", got)
	}
	if s := New(Kind(99)); s.Kind() != Rectangle {
		t.Fatalf("invalid kind should fall back to rectangle, got %s", s.Kind())
	}
}

func TestShape_DerivedCountsAreBounded(t *testing.T) {
	s := New(Table)
	s.SetColumns(1 << 30)
	if s.Columns() != maxColumns {
		t.Fatalf("columns not clamped: %d", s.Columns())
	}
	if n := len(columnXs(s.d)); n != maxColumns-1 {
		t.Fatalf("expected %d separators, got %d", maxColumns-1, n)
	}
	db := New(Database)
	db.SetRings(1 << 30)
	if db.Rings() != maxRings {
		t.Fatalf("rings not clamped: %d", db.Rings())
	}
	db.SetRings(-3)
	if db.Rings() != 0 {
		t.Fatalf("negative rings should clamp to 0, got %d", db.Rings())
	}
}
