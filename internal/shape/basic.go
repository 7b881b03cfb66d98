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
	"slices"

	"shapegeom/internal/geometry"
	"shapegeom/internal/vector"
)

type pt = geometry.Pt

// Polygonal kinds. Every outline is a single closed polygon centered on the
// origin, except the triangle whose origin is its centroid.

func rectPoly(d dims) []pt {
	c := centeredExtent(d).Corners()
	return c[:]
}

func diamondPoly(d dims) []pt {
	return []pt{{X: 0, Y: -d.h / 2}, {X: d.w / 2, Y: 0}, {X: 0, Y: d.h / 2}, {X: -d.w / 2, Y: 0}}
}

func triangleExtent(d dims) geometry.Rect { return geometry.R(-d.w/2, -2*d.h/3, d.w, d.h) }

func trianglePoly(d dims) []pt {
	return []pt{{X: 0, Y: -2 * d.h / 3}, {X: d.w / 2, Y: d.h / 3}, {X: -d.w / 2, Y: d.h / 3}}
}

// hexagonInset is the horizontal distance from the bounding box corner to
// the nearest vertex.
func hexagonInset(d dims) float64 { return math.Min(d.w/4, d.h/2) }

func hexagonPoly(d dims) []pt {
	i := hexagonInset(d)
	w, h := d.w/2, d.h/2
	return []pt{{X: -w, Y: 0}, {X: -w + i, Y: -h}, {X: w - i, Y: -h}, {X: w, Y: 0}, {X: w - i, Y: h}, {X: -w + i, Y: h}}
}

func parallelogramPoly(d dims) []pt {
	s := d.slant()
	w, h := d.w/2, d.h/2
	return []pt{{X: -w + s, Y: -h}, {X: w, Y: -h}, {X: w - s, Y: h}, {X: -w, Y: h}}
}

func polygonBuilder(poly func(dims) []pt) func(dims) vector.Path {
	return func(d dims) vector.Path {
		var p vector.Path
		p.AddPolygon(poly(d)...)
		return p
	}
}

func polygonFeatures(poly func(dims) []pt) func(dims) []feature {
	return func(d dims) []feature { return []feature{polygonOf(poly(d)...)} }
}

func polygonFoot(poly func(dims) []pt) func(dims, pt, pt) []pt {
	return func(d dims, a, b pt) []pt {
		return slices.Collect(geometry.IntersectPolygonWithSegment(poly(d), a, b))
	}
}

var (
	buildRect    = polygonBuilder(rectPoly)
	rectFeatures = polygonFeatures(rectPoly)
	rectFoot     = polygonFoot(rectPoly)
)

func buildEllipse(d dims) vector.Path {
	var p vector.Path
	p.AddEllipse(centeredExtent(d))
	return p
}

func ellipseFeatures(d dims) []feature { return []feature{ellipseOf(centeredExtent(d))} }

func ellipseFoot(d dims, a, b pt) []pt {
	return geometry.IntersectLineWithEllipse(a, b, pt{}, d.w, d.h, 0)
}

// arcAt places a point on the ellipse inscribed in the extent.
func arcAt(deg float64) posFunc {
	return func(_ dims, e geometry.Rect) pt { return geometry.ArcPoint(e, deg) }
}

var ellipsePoints = derive(boxTable, cornersNotOnOutline, []pointRule{
	{id: OutlinePoint1, add: Connect, pos: arcAt(225)},
	{id: OutlinePoint2, add: Connect, pos: arcAt(315)},
	{id: OutlinePoint3, add: Connect, pos: arcAt(135)},
	{id: OutlinePoint4, add: Connect, pos: arcAt(45)},
})

var diamondPoints = derive(boxTable, cornersNotOnOutline)

var trianglePoints = derive(boxTable, []pointRule{
	{id: TopLeft, remove: true},
	{id: TopRight, remove: true},
	{id: MiddleLeft, pos: at(0.25, 0.5)},
	{id: MiddleRight, pos: at(0.75, 0.5)},
})

var hexagonPoints = derive(boxTable, cornersNotOnOutline)

var parallelogramPoints = derive(boxTable, []pointRule{
	{id: TopLeft, drop: Connect},
	{id: BottomRight, drop: Connect},
	{id: TopCenter, pos: func(d dims, e geometry.Rect) pt { return pt{X: d.slant() / 2, Y: e.Y} }},
	{id: BottomCenter, pos: func(d dims, e geometry.Rect) pt { return pt{X: -d.slant() / 2, Y: e.Bottom()} }},
	{id: MiddleLeft, pos: func(d dims, e geometry.Rect) pt { return pt{X: e.X + d.slant()/2, Y: 0} }},
	{id: MiddleRight, pos: func(d dims, e geometry.Rect) pt { return pt{X: e.Right() - d.slant()/2, Y: 0} }},
})
