/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// FullTurnTenths is a full turn in the fixed-point angle unit used by shapes
// (tenths of a degree).
const FullTurnTenths = 3600

// NormalizeTenths maps any fixed-point angle into [0, 3600).
func NormalizeTenths(a int) int {
	a %= FullTurnTenths
	if a < 0 {
		a += FullTurnTenths
	}
	return a
}

// TenthsToDegrees converts a fixed-point angle to degrees.
func TenthsToDegrees(a int) float64 { return float64(a) / 10 }

// DegreesToTenths rounds a degree value to the nearest tenth and normalizes it.
func DegreesToTenths(deg float64) int {
	return NormalizeTenths(int(math.Round(deg * 10)))
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		return 0
	}
	return deg
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// IsQuarterTurn reports whether deg is a multiple of 90 degrees.
func IsQuarterTurn(deg float64) bool {
	switch NormalizeDegrees(deg) {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// cosSin returns exact values for quarter turns so that axis-aligned
// orientations never pick up round-off.
func cosSin(deg float64) (float64, float64) {
	switch NormalizeDegrees(deg) {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	s, c := math.Sincos(DegToRad(deg))
	return c, s
}

// RotatePoint rotates p around center by angleDeg degrees (clockwise on
// screen). Quarter turns are computed by coordinate swaps and are exact.
func RotatePoint(center Pt, angleDeg float64, p Pt) Pt {
	a := NormalizeDegrees(angleDeg)
	dx, dy := p.X-center.X, p.Y-center.Y
	switch a {
	case 0:
		return p
	case 90:
		return Pt{center.X - dy, center.Y + dx}
	case 180:
		return Pt{center.X - dx, center.Y - dy}
	case 270:
		return Pt{center.X + dy, center.Y - dx}
	}
	rot := r2.NewRotation(DegToRad(a), r2.Vec{X: center.X, Y: center.Y})
	v := rot.Rotate(r2.Vec{X: p.X, Y: p.Y})
	return Pt{v.X, v.Y}
}

// RotatePoints rotates every point of pts in place and returns pts.
func RotatePoints(center Pt, angleDeg float64, pts []Pt) []Pt {
	for i, p := range pts {
		pts[i] = RotatePoint(center, angleDeg, p)
	}
	return pts
}

// Angle returns the direction from a to b in degrees in [0, 360).
func Angle(a, b Pt) float64 {
	return NormalizeDegrees(RadToDeg(math.Atan2(b.Y-a.Y, b.X-a.X)))
}
