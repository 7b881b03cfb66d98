/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"slices"

	"shapegeom/internal/geometry"
)

type featureKind uint8

const (
	polygonFeature featureKind = iota + 1
	ellipseFeature
)

// feature is one piece of a tight bounds decomposition: a point set bounded
// by its rotated vertices, or an axis-aligned ellipse bounded in closed form.
type feature struct {
	kind featureKind
	pts  []pt
	box  geometry.Rect
}

func polygonOf(pts ...pt) feature         { return feature{kind: polygonFeature, pts: pts} }
func ellipseOf(box geometry.Rect) feature { return feature{kind: ellipseFeature, box: box} }

// bounds returns the feature's bounds after rotating it by angleDeg around
// the local origin.
func (f feature) bounds(angleDeg float64) geometry.Rect {
	switch f.kind {
	case polygonFeature:
		rot := geometry.RotatePoints(pt{}, angleDeg, slices.Clone(f.pts))
		return geometry.EnvelopeOf(rot...)
	case ellipseFeature:
		c := geometry.RotatePoint(pt{}, angleDeg, f.box.Center())
		return geometry.RotatedEllipseBounds(c, f.box.W, f.box.H, angleDeg)
	}
	unreachable("feature kind %d", f.kind)
	return geometry.InvalidRect
}

// LooseBounds returns the world envelope of the rotated local extent,
// inflated by half the line width. Degenerate shapes return
// geometry.InvalidRect.
func (s *Shape) LooseBounds() geometry.Rect {
	s.refresh()
	if s.degenerate() {
		return geometry.InvalidRect
	}
	c := s.info().localExtent(s.d).Corners()
	for i := range c {
		c[i] = s.toWorld(c[i])
	}
	return geometry.EnvelopeOf(c[:]...).Inflate(s.halfLine())
}

// TightBounds returns the smallest world rectangle around the rotated
// outline, inflated by half the line width. It is always contained in
// LooseBounds. Quarter turns reuse the unrotated bounds with the axes
// swapped.
func (s *Shape) TightBounds() geometry.Rect {
	s.refresh()
	if s.degenerate() {
		return geometry.InvalidRect
	}
	deg := s.AngleDegrees()
	if !geometry.IsQuarterTurn(deg) {
		return s.tightBoundsGeneral()
	}
	return quarterTurn(s.rotatedTight(0), deg).Offset(s.x, s.y).Inflate(s.halfLine())
}

// tightBoundsGeneral computes TightBounds without the quarter turn shortcut.
func (s *Shape) tightBoundsGeneral() geometry.Rect {
	if s.degenerate() {
		return geometry.InvalidRect
	}
	return s.rotatedTight(s.AngleDegrees()).Offset(s.x, s.y).Inflate(s.halfLine())
}

// rotatedTight bounds the local outline rotated around the origin.
func (s *Shape) rotatedTight(deg float64) geometry.Rect {
	sp := s.info()
	if sp.features == nil {
		return s.localOutline().RotatedBounds(pt{}, deg)
	}
	fs := sp.features(s.d)
	rs := make([]geometry.Rect, len(fs))
	for i, f := range fs {
		rs[i] = f.bounds(deg)
	}
	return geometry.UnionRects(rs...)
}

// quarterTurn maps a rectangle through a rotation by a multiple of 90
// degrees around the origin.
func quarterTurn(r geometry.Rect, deg float64) geometry.Rect {
	switch geometry.NormalizeDegrees(deg) {
	case 0:
		return r
	case 90:
		return geometry.FromLTRB(-r.Bottom(), r.Left(), -r.Top(), r.Right())
	case 180:
		return geometry.FromLTRB(-r.Right(), -r.Bottom(), -r.Left(), -r.Top())
	case 270:
		return geometry.FromLTRB(r.Top(), -r.Right(), r.Bottom(), -r.Left())
	}
	unreachable("quarter turn shortcut taken for %v degrees", deg)
	return r
}
