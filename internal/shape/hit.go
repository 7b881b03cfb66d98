/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "shapegeom/internal/geometry"

// Contains reports whether the world point p lies inside one of the closed
// sub-figures of the flattened outline. Each figure is tested even-odd;
// overlapping figures count as a union. Open decorative lines never hit.
func (s *Shape) Contains(p geometry.Pt) bool {
	if s.degenerate() {
		return false
	}
	l := s.toLocal(p)
	if !s.info().localExtent(s.d).Inflate(geometry.Tolerance).Contains(l) {
		return false
	}
	for _, pl := range s.localOutline().Flatten(flattenSegments()) {
		if pl.Closed && geometry.PointInPolygon(pl.Pts, l) {
			return true
		}
	}
	return false
}
