/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package shape models diagram shapes as parametric outlines in shape-local
// coordinates. A Shape owns its kind, size, world position and rotation, a
// memoized outline path and a table of named control points. The world
// transform is applied on demand: bounding rectangles, connection feet and
// hit tests combine the cached local outline with position and angle.
//
// Local coordinates are y-down with the origin at the shape's reference
// point. Angles are stored in tenths of a degree and rotate clockwise on
// screen.
//
// A Shape is not safe for concurrent mutation; callers serialise access.
package shape

import (
	"log/slog"
	"math"
	"slices"

	"shapegeom/internal/geometry"
	applog "shapegeom/internal/log"
	"shapegeom/internal/vector"
)

// LineStyle is the only style property the geometry core reads: the stroke
// width, used to inflate bounding rectangles.
type LineStyle interface {
	LineWidth() float64
}

const (
	DefaultCornerRadiusFactor = 0.2
	DefaultSlantFactor        = 0.25
	DefaultRings              = 2
	DefaultHeaderHeight       = 20.0
	DefaultColumns            = 2

	maxCornerRadiusFactor = 0.5
	maxSlantFactor        = 0.95
	maxRings              = 64
	maxColumns            = 64
)

// dims is the full set of size parameters a builder sees.
type dims struct {
	w, h         float64
	cornerFactor float64
	slantFactor  float64
	rings        int
	header       float64
	columns      int
}

func (d dims) radius() float64 { return d.cornerFactor * math.Min(d.w, d.h) }
func (d dims) slant() float64  { return d.slantFactor * d.w }

// cached is a memoized value with its validity flag.
type cached[T any] struct {
	val   T
	valid bool
}

// Shape is one shape instance.
type Shape struct {
	kind  Kind
	x, y  float64
	angle int
	d     dims
	line  LineStyle

	connOff map[ControlPointID]bool

	outline  cached[vector.Path]
	points   cached[[]geometry.Pt]
	rebuilds int
}

// New creates a shape of the given kind with the kind's default size at the
// world origin.
func New(kind Kind) *Shape {
	if !kind.Valid() {
		unreachable("shape factory called with %s", kind)
		kind = Rectangle
	}
	sp := kinds[kind]
	return &Shape{
		kind: kind,
		d: dims{
			w: sp.defW, h: sp.defH,
			cornerFactor: DefaultCornerRadiusFactor,
			slantFactor:  DefaultSlantFactor,
			rings:        DefaultRings,
			header:       DefaultHeaderHeight,
			columns:      DefaultColumns,
		},
	}
}

// NewSized is New followed by SetSize.
func NewSized(kind Kind, w, h float64) *Shape {
	s := New(kind)
	s.SetSize(w, h)
	return s
}

func logger() *slog.Logger { return applog.WithComponent("shape") }

func (s *Shape) info() *kindInfo { return s.kind.info() }

func (s *Shape) Kind() Kind { return s.kind }

// Position

func (s *Shape) X() float64            { return s.x }
func (s *Shape) Y() float64            { return s.y }
func (s *Shape) Position() geometry.Pt { return geometry.Pt{X: s.x, Y: s.y} }

// MoveTo places the reference point at (x, y).
func (s *Shape) MoveTo(x, y float64) { s.x, s.y = x, y }

// MoveBy offsets the shape by (dx, dy).
func (s *Shape) MoveBy(dx, dy float64) { s.x, s.y = s.x+dx, s.y+dy }

// Rotation

// Angle returns the rotation in tenths of a degree, in [0, 3600).
func (s *Shape) Angle() int { return s.angle }

// AngleDegrees returns the rotation in degrees.
func (s *Shape) AngleDegrees() float64 { return geometry.TenthsToDegrees(s.angle) }

// SetAngle sets the rotation in tenths of a degree; any value is accepted
// and normalized.
func (s *Shape) SetAngle(tenths int) { s.angle = geometry.NormalizeTenths(tenths) }

// Rotate turns the shape by delta tenths of a degree around the world point
// (cx, cy), moving the reference point along.
func (s *Shape) Rotate(delta int, cx, cy float64) {
	p := geometry.RotatePoint(geometry.Pt{X: cx, Y: cy}, geometry.TenthsToDegrees(delta), s.Position())
	s.x, s.y = p.X, p.Y
	s.SetAngle(s.angle + delta)
}

// Size

func (s *Shape) Width() float64    { return s.d.w }
func (s *Shape) Height() float64   { return s.d.h }
func (s *Shape) Diameter() float64 { return s.d.w }

// SetWidth sets the width. Regular kinds keep width and height equal.
func (s *Shape) SetWidth(w float64) {
	if s.info().regular {
		s.SetDiameter(w)
		return
	}
	s.SetSize(w, s.d.h)
}

// SetHeight sets the height. Regular kinds keep width and height equal.
func (s *Shape) SetHeight(h float64) {
	if s.info().regular {
		s.SetDiameter(h)
		return
	}
	s.SetSize(s.d.w, h)
}

// SetSize sets both dimensions; negative values clamp to zero. Regular kinds
// take the smaller of the two.
func (s *Shape) SetSize(w, h float64) {
	w, h = math.Max(w, 0), math.Max(h, 0)
	if s.info().regular {
		w = math.Min(w, h)
		h = w
	}
	s.update(func(d *dims) { d.w, d.h = w, h })
}

// SetDiameter sets the size of a regular kind (or both sides of any other).
func (s *Shape) SetDiameter(v float64) {
	v = math.Max(v, 0)
	s.update(func(d *dims) { d.w, d.h = v, v })
}

// Kind specific parameters

func (s *Shape) CornerRadiusFactor() float64 { return s.d.cornerFactor }

// SetCornerRadiusFactor sets the rounded corner radius as a fraction of
// min(W, H), clamped to [0, 0.5].
func (s *Shape) SetCornerRadiusFactor(f float64) {
	f = math.Min(math.Max(f, 0), maxCornerRadiusFactor)
	s.update(func(d *dims) { d.cornerFactor = f })
}

func (s *Shape) SlantFactor() float64 { return s.d.slantFactor }

// SetSlantFactor sets the parallelogram slant as a fraction of W, clamped to
// [0, 0.95].
func (s *Shape) SetSlantFactor(f float64) {
	f = math.Min(math.Max(f, 0), maxSlantFactor)
	s.update(func(d *dims) { d.slantFactor = f })
}

func (s *Shape) Rings() int { return s.d.rings }

// SetRings sets the number of stacked arcs drawn on a database cylinder,
// clamped to [0, 64].
func (s *Shape) SetRings(n int) {
	n = min(max(n, 0), maxRings)
	s.update(func(d *dims) { d.rings = n })
}

func (s *Shape) HeaderHeight() float64 { return s.d.header }

func (s *Shape) SetHeaderHeight(h float64) {
	h = math.Max(h, 0)
	s.update(func(d *dims) { d.header = h })
}

func (s *Shape) Columns() int { return s.d.columns }

// SetColumns sets the number of table body columns, clamped to [1, 64].
func (s *Shape) SetColumns(n int) {
	n = min(max(n, 1), maxColumns)
	s.update(func(d *dims) { d.columns = n })
}

// Style

// SetLineStyle attaches the stroke whose width inflates the bounds. nil
// means a zero width line.
func (s *Shape) SetLineStyle(ls LineStyle) { s.line = ls }

func (s *Shape) LineStyle() LineStyle { return s.line }

func (s *Shape) halfLine() float64 {
	if s.line == nil {
		return 0
	}
	return math.Max(s.line.LineWidth(), 0) / 2
}

// Cache management

func (s *Shape) update(fn func(*dims)) {
	before := s.d
	fn(&s.d)
	if s.d != before {
		s.invalidate()
	}
}

func (s *Shape) invalidate() {
	s.outline.valid = false
	s.points.valid = false
}

// Dirty reports whether the memoized outline or control points are stale.
func (s *Shape) Dirty() bool { return !s.outline.valid || !s.points.valid }

// Recompute brings every memoized value up to date. It does nothing when the
// shape is clean.
func (s *Shape) Recompute() { s.refresh() }

// refresh rebuilds the outline and the control points in one step, so a read
// of either leaves the shape clean.
func (s *Shape) refresh() {
	if s.outline.valid && s.points.valid {
		return
	}
	s.rebuildOutline()
	s.rebuildPoints()
}

// Rebuilds returns how often the shape has been rebuilt.
func (s *Shape) Rebuilds() int { return s.rebuilds }

// degenerate reports dimensions that yield no outline.
func (s *Shape) degenerate() bool {
	if !(s.d.w > 0 && s.d.h > 0) {
		return true
	}
	sp := s.info()
	return sp.degenerate != nil && sp.degenerate(s.d)
}

func (s *Shape) rebuildOutline() {
	s.rebuilds++
	if s.degenerate() {
		logger().Debug("degenerate dimensions",
			slog.String("kind", s.kind.String()), slog.Float64("w", s.d.w), slog.Float64("h", s.d.h))
		s.outline = cached[vector.Path]{valid: true}
		return
	}
	s.outline = cached[vector.Path]{val: s.info().build(s.d), valid: true}
	logger().Debug("outline rebuilt",
		slog.String("kind", s.kind.String()), slog.Int("cmds", len(s.outline.val.Cmds)))
}

func (s *Shape) rebuildPoints() {
	sp := s.info()
	e := sp.localExtent(s.d)
	pts := make([]geometry.Pt, len(sp.points))
	for i, def := range sp.points {
		pts[i] = def.pos(s.d, e)
	}
	s.points = cached[[]geometry.Pt]{val: pts, valid: true}
}

func (s *Shape) localOutline() *vector.Path {
	s.refresh()
	return &s.outline.val
}

func (s *Shape) localPoints() []geometry.Pt {
	s.refresh()
	return s.points.val
}

// Outline returns the local outline path, rebuilding it first when stale.
// Degenerate dimensions give an empty path.
func (s *Shape) Outline() vector.Path {
	return vector.Path{Cmds: slices.Clone(s.localOutline().Cmds)}
}

// Transform returns the local to world transform.
func (s *Shape) Transform() geometry.Affine2D {
	return geometry.Translate(s.x, s.y).Mul(geometry.Rotate(s.AngleDegrees()))
}

// WorldOutline returns the outline in world coordinates with arcs converted
// to cubic beziers.
func (s *Shape) WorldOutline() vector.Path {
	return s.localOutline().Transform(s.Transform())
}

// toWorld maps a local point into world coordinates.
func (s *Shape) toWorld(p geometry.Pt) geometry.Pt {
	return geometry.RotatePoint(geometry.Pt{}, s.AngleDegrees(), p).Add(s.Position())
}

// toLocal maps a world point into local coordinates.
func (s *Shape) toLocal(p geometry.Pt) geometry.Pt { return s.Transform().Invert().Apply(p) }
