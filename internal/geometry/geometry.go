/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geometry holds the stateless 2D helpers shared by every shape kind:
// points, rectangles, affine transforms, rotation, intersections and the
// closed-form bounds of rotated curves.
//
// Coordinates follow the screen convention (y grows downwards), so a positive
// angle turns clockwise on screen. Values are float64; callers that need
// integer device coordinates round at the edge.
package geometry

import "math"

// Pt is a 2D point.
type Pt struct{ X, Y float64 }

func P(x, y float64) Pt { return Pt{X: x, Y: y} }

func (p Pt) Add(q Pt) Pt        { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) Sub(q Pt) Pt        { return Pt{p.X - q.X, p.Y - q.Y} }
func (p Pt) Scale(f float64) Pt { return Pt{p.X * f, p.Y * f} }
func (p Pt) Dot(q Pt) float64   { return p.X*q.X + p.Y*q.Y }
func (p Pt) Cross(q Pt) float64 { return p.X*q.Y - p.Y*q.X }
func (p Pt) Dist(q Pt) float64  { return math.Hypot(q.X-p.X, q.Y-p.Y) }

func (p Pt) DistSq(q Pt) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return dx*dx + dy*dy
}

func (p Pt) Lerp(q Pt, t float64) Pt { return Pt{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t} }

// Size is a width/height pair.
type Size struct{ W, H float64 }

// Rect is an axis-aligned rectangle defined by min corner and size.
// A rectangle with negative width or height is invalid; see InvalidRect.
type Rect struct {
	X, Y float64
	W, H float64
}

// InvalidRect marks a bounding rectangle that could not be computed, typically
// because a shape has a degenerate size. Union skips it.
var InvalidRect = Rect{W: -1, H: -1}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// FromLTRB builds a rectangle from its edges.
func FromLTRB(l, t, r, b float64) Rect { return Rect{X: l, Y: t, W: r - l, H: b - t} }

// IsValid reports whether r is a real rectangle (zero area allowed).
func (r Rect) IsValid() bool {
	if math.IsNaN(r.X) || math.IsNaN(r.Y) || math.IsNaN(r.W) || math.IsNaN(r.H) {
		return false
	}
	return r.W >= 0 && r.H >= 0
}

func (r Rect) Min() Pt         { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt         { return Pt{r.X + r.W, r.Y + r.H} }
func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Center() Pt      { return Pt{r.X + r.W/2, r.Y + r.H/2} }

func (r Rect) Corners() [4]Pt {
	return [4]Pt{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
}

func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// ContainsRect reports whether o lies inside r, allowing tol of slack on
// every side to absorb floating round-off.
func (r Rect) ContainsRect(o Rect, tol float64) bool {
	if !r.IsValid() || !o.IsValid() {
		return false
	}
	return o.X >= r.X-tol && o.Y >= r.Y-tol && o.Right() <= r.Right()+tol && o.Bottom() <= r.Bottom()+tol
}

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Inflate grows r by d on every side. Invalid rectangles stay invalid.
func (r Rect) Inflate(d float64) Rect {
	if !r.IsValid() {
		return r
	}
	return r.Inset(-d, -d)
}

// Offset moves r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the minimal rect containing both. Invalid operands are
// ignored so sub-bounds of degenerate features drop out.
func (r Rect) Union(o Rect) Rect {
	if !r.IsValid() {
		return o
	}
	if !o.IsValid() {
		return r
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// UnionRects folds Union over rs; the result is InvalidRect when no operand is valid.
func UnionRects(rs ...Rect) Rect {
	out := InvalidRect
	for _, r := range rs {
		out = out.Union(r)
	}
	return out
}

// EnvelopeOf returns the axis-aligned envelope of pts.
func EnvelopeOf(pts ...Pt) Rect {
	if len(pts) == 0 {
		return InvalidRect
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return FromLTRB(minX, minY, maxX, maxY)
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
// stored as [a b c d e f].
type Affine2D struct{ A, B, C, D, E, F float64 }

var Identity = Affine2D{A: 1, D: 1}

func (m Affine2D) Mul(n Affine2D) Affine2D {
	return Affine2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert computes the inverse of m. A singular matrix yields Identity.
func (m Affine2D) Invert() Affine2D {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity
	}
	invDet := 1 / det
	return Affine2D{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}
}

func Translate(tx, ty float64) Affine2D { return Affine2D{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float64) Affine2D     { return Affine2D{A: sx, D: sy} }

// Rotate returns a rotation by angleDeg degrees around the origin. Quarter
// turns produce exact 0/±1 coefficients.
func Rotate(angleDeg float64) Affine2D {
	c, s := cosSin(angleDeg)
	return Affine2D{A: c, B: s, C: -s, D: c}
}
