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
)

// footSlack widens the segment parameter range so crossings at the segment
// ends survive round-off.
const footSlack = 1e-9

// ConnectionFoot returns the point where the segment from the world point p
// to the shape's reference point first crosses the outline, that is the
// crossing nearest p. When no crossing exists (p inside the shape or a
// degenerate outline) the reference point is returned.
func (s *Shape) ConnectionFoot(p geometry.Pt) geometry.Pt {
	ref := s.Position()
	if s.degenerate() {
		return ref
	}
	a := s.toLocal(p)
	var cands []geometry.Pt
	if foot := s.info().foot; foot != nil {
		cands = foot(s.d, a, pt{})
	} else {
		cands = s.flattenedFoot(a, pt{})
	}
	q, ok := nearestOnSegment(a, pt{}, cands)
	if !ok {
		return ref
	}
	return s.toWorld(q)
}

// flattenedFoot intersects the segment with every closed sub-figure of the
// flattened outline.
func (s *Shape) flattenedFoot(a, b pt) []pt {
	var out []pt
	for _, pl := range s.localOutline().Flatten(flattenSegments()) {
		if !pl.Closed {
			continue
		}
		out = slices.AppendSeq(out, geometry.IntersectPolygonWithSegment(pl.Pts, a, b))
	}
	return out
}

// nearestOnSegment picks the candidate closest to a among those lying on the
// segment a-b. Ties keep the first candidate.
func nearestOnSegment(a, b pt, cands []pt) (pt, bool) {
	best, bestD, found := pt{}, math.Inf(1), false
	for _, q := range cands {
		t := geometry.LineParam(a, b, q)
		if t < -footSlack || t > 1+footSlack {
			continue
		}
		if d := a.DistSq(q); d < bestD {
			best, bestD, found = q, d, true
		}
	}
	return best, found
}

// twoStage resolves a crossing against the straight-edge polygon first. When
// that crossing lies in a curved region, zoneOf names the ellipse owning the
// region and the crossing is recomputed against it, keeping only hits inside
// the same region. A start point inside the polygon never crosses it; when
// such a point sits in a curved region it may still be outside the outline,
// so the region's ellipse is intersected directly.
func twoStage(poly []pt, a, b pt, zoneOf func(pt) (geometry.Rect, bool)) []pt {
	c, crossed := nearestOnSegment(a, b, slices.Collect(geometry.IntersectPolygonWithSegment(poly, a, b)))
	if !crossed {
		c = a
	}
	box, curved := zoneOf(c)
	if !curved {
		if crossed {
			return []pt{c}
		}
		return nil
	}
	var out []pt
	for _, q := range geometry.IntersectLineWithEllipse(a, b, box.Center(), box.W, box.H, 0) {
		if qb, ok := zoneOf(q); ok && qb == box {
			out = append(out, q)
		}
	}
	if len(out) == 0 && crossed {
		return []pt{c}
	}
	return out
}
