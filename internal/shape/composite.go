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

	"shapegeom/internal/geometry"
	"shapegeom/internal/vector"
)

// Transformer: two overlapping windings stacked vertically.

func transformerCircles(d dims) (primary, secondary geometry.Rect) {
	c := math.Min(d.w, 2*d.h/3)
	return geometry.R(-c/2, -d.h/2, c, c), geometry.R(-c/2, d.h/2-c, c, c)
}

func buildTransformer(d dims) vector.Path {
	primary, secondary := transformerCircles(d)
	var p vector.Path
	p.AddEllipse(primary)
	p.AddEllipse(secondary)
	return p
}

func transformerFeatures(d dims) []feature {
	primary, secondary := transformerCircles(d)
	return []feature{ellipseOf(primary), ellipseOf(secondary)}
}

func transformerFoot(d dims, a, b pt) []pt {
	primary, secondary := transformerCircles(d)
	out := geometry.IntersectLineWithEllipse(a, b, primary.Center(), primary.W, primary.H, 0)
	return append(out, geometry.IntersectLineWithEllipse(a, b, secondary.Center(), secondary.W, secondary.H, 0)...)
}

func winding(secondary bool, side float64) posFunc {
	return func(d dims, _ geometry.Rect) pt {
		c, s := transformerCircles(d)
		if secondary {
			c = s
		}
		return pt{X: side * c.W / 2, Y: c.Center().Y}
	}
}

var transformerPoints = derive(boxTable, cornersNotOnOutline, []pointRule{
	{id: MiddleLeft, pos: winding(false, -1)},
	{id: MiddleRight, pos: winding(false, 1)},
	{id: OutlinePoint1, add: Connect, pos: winding(true, -1)},
	{id: OutlinePoint2, add: Connect, pos: winding(true, 1)},
})

// Table: a rectangle with a header band and evenly spaced body columns.

func headerLine(d dims) (pt, pt) {
	y := -d.h/2 + d.header
	return pt{X: -d.w / 2, Y: y}, pt{X: d.w / 2, Y: y}
}

func buildTable(d dims) vector.Path {
	var p vector.Path
	p.AddPolygon(rectPoly(d)...)
	l, r := headerLine(d)
	p.AddLine(l, r)
	for _, x := range columnXs(d) {
		p.AddLine(pt{X: x, Y: l.Y}, pt{X: x, Y: d.h / 2})
	}
	return p
}

// columnXs returns the x positions of the column separators.
func columnXs(d dims) []float64 {
	var xs []float64
	for i := 1; i < d.columns; i++ {
		xs = append(xs, -d.w/2+d.w*float64(i)/float64(d.columns))
	}
	return xs
}

func headerLeft(d dims, _ geometry.Rect) pt {
	l, _ := headerLine(d)
	return l
}

func headerRight(d dims, _ geometry.Rect) pt {
	_, r := headerLine(d)
	return r
}

var tablePoints = derive(boxTable, []pointRule{
	{id: OutlinePoint1, add: Connect, pos: headerLeft},
	{id: OutlinePoint2, add: Connect, pos: headerRight},
})
