/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"iter"
	"math"
)

// Intersections take the infinite line through a and b unless the name says
// segment. Degenerate input (coincident a and b, zero radius) yields no
// intersection rather than an error.

// IntersectLineWithCircle returns up to two points where the line through a
// and b meets the circle, ordered along a→b.
func IntersectLineWithCircle(a, b, center Pt, radius float64) []Pt {
	if radius <= 0 {
		return nil
	}
	d := b.Sub(a)
	qa := d.Dot(d)
	if qa == 0 {
		return nil
	}
	f := a.Sub(center)
	qb := 2 * d.Dot(f)
	qc := f.Dot(f) - radius*radius
	disc := qb*qb - 4*qa*qc
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []Pt{a.Add(d.Scale(-qb / (2 * qa)))}
	}
	sq := math.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)
	return []Pt{a.Add(d.Scale(t1)), a.Add(d.Scale(t2))}
}

// IntersectLineWithEllipse intersects the line through a and b with the
// ellipse of full width w and height h centred at center and rotated by
// angleDeg. Results are ordered along a→b.
func IntersectLineWithEllipse(a, b, center Pt, w, h, angleDeg float64) []Pt {
	if w <= 0 || h <= 0 || a == b {
		return nil
	}
	rx, ry := w/2, h/2
	// Work in the ellipse frame where it is the unit circle.
	la := RotatePoint(center, -angleDeg, a).Sub(center)
	lb := RotatePoint(center, -angleDeg, b).Sub(center)
	ua := Pt{la.X / rx, la.Y / ry}
	ub := Pt{lb.X / rx, lb.Y / ry}
	hits := IntersectLineWithCircle(ua, ub, Pt{}, 1)
	for i, p := range hits {
		local := Pt{p.X * rx, p.Y * ry}.Add(center)
		hits[i] = RotatePoint(center, angleDeg, local)
	}
	return hits
}

// LineParam returns t such that p = a + t*(b-a) for the projection of p onto
// the line through a and b. A zero-length line returns 0.
func LineParam(a, b, p Pt) float64 {
	d := b.Sub(a)
	l := d.Dot(d)
	if l == 0 {
		return 0
	}
	return p.Sub(a).Dot(d) / l
}

// IntersectPolygonWithLine yields one point per polygon edge crossed by the
// line through a and b. The polygon is implicitly closed.
func IntersectPolygonWithLine(poly []Pt, a, b Pt) iter.Seq[Pt] {
	return polygonCrossings(poly, a, b, false)
}

// IntersectPolygonWithSegment is IntersectPolygonWithLine restricted to the
// segment a-b.
func IntersectPolygonWithSegment(poly []Pt, a, b Pt) iter.Seq[Pt] {
	return polygonCrossings(poly, a, b, true)
}

func polygonCrossings(poly []Pt, a, b Pt, segment bool) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		if len(poly) < 2 || a == b {
			return
		}
		n := len(poly)
		for i := range n {
			p, q := poly[i], poly[(i+1)%n]
			if n == 2 && i == 1 {
				return
			}
			x, ta, tq, ok := lineLine(a, b, p, q)
			if !ok || !inUnit(tq) {
				continue
			}
			if segment && !inUnit(ta) {
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}

// PointInPolygon is an even-odd containment test.
func PointInPolygon(poly []Pt, p Pt) bool {
	in := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

// lineLine solves a1 + ta*(a2-a1) = b1 + tb*(b2-b1).
func lineLine(a1, a2, b1, b2 Pt) (Pt, float64, float64, bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	den := da.Cross(db)
	if den == 0 {
		return Pt{}, 0, 0, false
	}
	w := b1.Sub(a1)
	ta := w.Cross(db) / den
	tb := w.Cross(da) / den
	return a1.Add(da.Scale(ta)), ta, tb, true
}

const paramSlack = 1e-9

func inUnit(t float64) bool { return t >= -paramSlack && t <= 1+paramSlack }
