/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// RotatedEllipseBounds returns the closed-form bounding box of an ellipse of
// full width w and height h centred at center and rotated by angleDeg. Zero
// sizes give a zero-area rectangle; negative sizes give InvalidRect.
func RotatedEllipseBounds(center Pt, w, h, angleDeg float64) Rect {
	if w < 0 || h < 0 {
		return InvalidRect
	}
	rx, ry := w/2, h/2
	var hw, hh float64
	switch NormalizeDegrees(angleDeg) {
	case 0, 180:
		hw, hh = rx, ry
	case 90, 270:
		hw, hh = ry, rx
	default:
		c, s := cosSin(angleDeg)
		hw = math.Sqrt(rx*rx*c*c + ry*ry*s*s)
		hh = math.Sqrt(rx*rx*s*s + ry*ry*c*c)
	}
	return FromLTRB(center.X-hw, center.Y-hh, center.X+hw, center.Y+hh)
}

// CubicPoint evaluates a cubic bezier at t.
func CubicPoint(p0, p1, p2, p3 Pt, t float64) Pt {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Pt{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// CubicBounds returns the exact bounding box of a cubic bezier by adding the
// curve's axis extrema to its end points.
func CubicBounds(p0, p1, p2, p3 Pt) Rect {
	pts := []Pt{p0, p3}
	for _, t := range cubicExtrema(p0.X, p1.X, p2.X, p3.X) {
		pts = append(pts, CubicPoint(p0, p1, p2, p3, t))
	}
	for _, t := range cubicExtrema(p0.Y, p1.Y, p2.Y, p3.Y) {
		pts = append(pts, CubicPoint(p0, p1, p2, p3, t))
	}
	return EnvelopeOf(pts...)
}

// cubicExtrema returns the t in (0,1) where the derivative of a 1D cubic
// bezier vanishes.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0
	var ts []float64
	add := func(t float64) {
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	if math.Abs(a) < 1e-12 {
		if b != 0 {
			add(-c / b)
		}
		return ts
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return ts
}

// ArcPoint returns the point at parametric angle deg on the ellipse inscribed
// in box. Angles run clockwise on screen from the positive x axis.
func ArcPoint(box Rect, deg float64) Pt {
	c, s := cosSin(deg)
	return Pt{
		X: box.X + box.W/2 + box.W/2*c,
		Y: box.Y + box.H/2 + box.H/2*s,
	}
}

// RotatedArcBounds returns the exact bounds of the elliptical arc inscribed in
// box, starting at start degrees and sweeping sweep degrees, after rotating it
// by angleDeg around pivot.
func RotatedArcBounds(box Rect, start, sweep float64, pivot Pt, angleDeg float64) Rect {
	if !box.IsValid() {
		return InvalidRect
	}
	pt := func(deg float64) Pt { return RotatePoint(pivot, angleDeg, ArcPoint(box, deg)) }
	pts := []Pt{pt(start), pt(start + sweep)}
	rx, ry := box.W/2, box.H/2
	c, s := cosSin(angleDeg)
	// Parametric angles where dx/dt = 0 and dy/dt = 0 in the rotated frame.
	tx := RadToDeg(math.Atan2(-ry*s, rx*c))
	ty := RadToDeg(math.Atan2(ry*c, rx*s))
	for _, t := range []float64{tx, tx + 180, ty, ty + 180} {
		if AngleInSweep(t, start, sweep) {
			pts = append(pts, pt(t))
		}
	}
	return EnvelopeOf(pts...)
}

// AngleInSweep reports whether deg lies on the arc from start covering sweep
// degrees (negative sweep runs counter-clockwise).
func AngleInSweep(deg, start, sweep float64) bool {
	if math.Abs(sweep) >= 360 {
		return true
	}
	if sweep >= 0 {
		return NormalizeDegrees(deg-start) <= sweep
	}
	return NormalizeDegrees(start-deg) <= -sweep
}
