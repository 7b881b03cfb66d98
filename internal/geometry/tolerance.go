/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "gonum.org/v1/gonum/floats/scalar"

// Tolerance used by geometry comparisons. Shape coordinates are in display
// units, so a nano-unit is far below anything observable.
const Tolerance = 1e-9

// Equal compares two coordinates with absolute and relative slack.
func Equal(a, b float64) bool { return scalar.EqualWithinAbsOrRel(a, b, Tolerance, Tolerance) }

// EqualWithin compares with a caller supplied absolute tolerance.
func EqualWithin(a, b, tol float64) bool { return scalar.EqualWithinAbs(a, b, tol) }

func PtEqual(p, q Pt) bool { return Equal(p.X, q.X) && Equal(p.Y, q.Y) }

// RectEqual compares two rectangles within tol. Two invalid rectangles are equal.
func RectEqual(a, b Rect, tol float64) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	return EqualWithin(a.X, b.X, tol) && EqualWithin(a.Y, b.Y, tol) &&
		EqualWithin(a.W, b.W, tol) && EqualWithin(a.H, b.H, tol)
}
